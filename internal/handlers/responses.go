package handlers

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports liveness and a few gauges.
type HealthResponse struct {
	Status              string `json:"status"`
	Version             string `json:"version"`
	CarouselConnections int    `json:"carousel_connections"`
	ContactControllers  int    `json:"contact_controllers"`
}
