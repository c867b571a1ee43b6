package contact

import (
	"time"

	"github.com/nfrund/studiosite/internal/domain"
	"github.com/nfrund/studiosite/internal/pubsub"
)

// Rejection describes a submission that never reached, or failed in, delivery.
type Rejection struct {
	ClientID string    `json:"client_id"`
	Reason   string    `json:"reason"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Rejection reasons carried by RejectedEvent.
const (
	ReasonSpam           = "spam"
	ReasonRateLimited    = "rate_limited"
	ReasonInFlight       = "in_flight"
	ReasonInvalid        = "invalid"
	ReasonDeliveryFailed = "delivery_failed"
)

var (
	// SubmittedEvent is published after the deliverer accepted a message.
	SubmittedEvent = pubsub.NewEvent[domain.Submission]("contact.submitted", "A contact message was delivered")
	// RejectedEvent is published for blocked, throttled, invalid and failed submissions.
	RejectedEvent = pubsub.NewEvent[Rejection]("contact.rejected", "A contact submission was refused or failed")
)
