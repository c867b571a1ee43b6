package layouts

// CalculateTitle joins a page title with the studio name.
func CalculateTitle(studio, title string) string {
	if title != "" {
		return title + " - " + studio
	}
	return studio
}
