package contact

// Kind is the phase of the submission lifecycle.
type Kind int

const (
	Idle Kind = iota
	Submitting
	Succeeded
	Failed
)

func (k Kind) String() string {
	switch k {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Status is the single transient message shown next to the form.
type Status struct {
	Kind    Kind
	Message string
}

// Visible reports whether the status carries a message for the visitor.
func (s Status) Visible() bool {
	return s.Message != ""
}

// messages holds the visitor-facing wording of one form variant.
type messages struct {
	success      string
	spam         string
	waitFormat   string
	inFlight     string
	invalid      string
	invalidEmail string
	failed       string
	failedReason string
}

var strictMessages = messages{
	success:      "Message sent successfully! We'll get back to you soon.",
	spam:         "Submission blocked: spam detected.",
	waitFormat:   "Please wait %d seconds before sending another message.",
	inFlight:     "Your message is already on its way.",
	invalid:      "Please fill in every field before sending.",
	invalidEmail: "Please enter a valid email address.",
	failed:       "Failed to send message. Please try again later.",
	failedReason: "Failed to send message: %s",
}

var basicMessages = messages{
	success:      "Thank you! Your message was sent successfully.",
	spam:         "Spam submission blocked.",
	waitFormat:   "Please wait %d seconds before submitting again.",
	inFlight:     "Still sending your previous message.",
	invalid:      "Name, email and message are required.",
	invalidEmail: "Name, email and message are required.",
	failed:       "Something went wrong. Please try again.",
	failedReason: "Something went wrong: %s",
}
