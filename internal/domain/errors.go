package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the contact form outcomes and content lookups.
var (
	// ErrSpamBlocked is returned when the honeypot field was filled in.
	ErrSpamBlocked = errors.New("submission blocked as spam")
	// ErrRateLimited is returned while the client's cooldown is still running.
	ErrRateLimited = errors.New("submission rate limited")
	// ErrValidation is returned when a required field is empty or malformed.
	ErrValidation = errors.New("submission failed validation")
	// ErrDeliveryFailed wraps any error surfaced by the email delivery collaborator.
	ErrDeliveryFailed = errors.New("message delivery failed")
	// ErrInFlight is returned when a submission is attempted while another one is pending.
	ErrInFlight = errors.New("submission already in progress")
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("requested resource not found")
)

// DeliveryError is returned by email delivery collaborators. Reason carries
// the provider's human-readable explanation when one was supplied.
type DeliveryError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Reason != "":
		return "delivery failed: " + e.Reason
	case e.Err != nil:
		return "delivery failed: " + e.Err.Error()
	default:
		return ErrDeliveryFailed.Error()
	}
}

// Unwrap lets errors.Is match both ErrDeliveryFailed and the transport error.
func (e *DeliveryError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDeliveryFailed, e.Err}
	}
	return []error{ErrDeliveryFailed}
}
