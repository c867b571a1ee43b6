package domain

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance caches struct information across calls.
var validatorInstance = validator.New()

// Variant selects which contact form layout and validation rules apply.
type Variant string

const (
	// VariantStrict has a subject field and requires a well-formed email address.
	VariantStrict Variant = "strict"
	// VariantBasic has no subject field and only requires non-empty fields.
	VariantBasic Variant = "basic"
)

// ParseVariant maps a configuration value to a Variant, defaulting to strict.
func ParseVariant(s string) Variant {
	if strings.EqualFold(strings.TrimSpace(s), string(VariantBasic)) {
		return VariantBasic
	}
	return VariantStrict
}

// FormState holds the contact form fields as the visitor typed them.
// Honeypot is rendered hidden and must stay empty for a human visitor.
type FormState struct {
	FullName string `form:"full_name" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Subject  string `form:"subject" json:"subject,omitempty"`
	Content  string `form:"content" json:"content"`
	Honeypot string `form:"website" json:"-"`
}

// Empty reports whether every field of the form is blank.
func (f FormState) Empty() bool {
	return f == FormState{}
}

// strictForm and basicForm carry the validation rules for each variant.
type strictForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Subject  string `validate:"omitempty,max=200"`
	Content  string `validate:"required"`
}

type basicForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
	Content  string `validate:"required"`
}

// Validate checks the visible fields of the form against the variant rules.
// It returns the validator's error, or nil if the form may be submitted.
func (f FormState) Validate(v Variant) error {
	trim := strings.TrimSpace
	if v == VariantBasic {
		return validatorInstance.Struct(basicForm{
			FullName: trim(f.FullName),
			Email:    trim(f.Email),
			Content:  trim(f.Content),
		})
	}
	return validatorInstance.Struct(strictForm{
		FullName: trim(f.FullName),
		Email:    trim(f.Email),
		Subject:  trim(f.Subject),
		Content:  trim(f.Content),
	})
}

// Fields returns the non-honeypot fields sent to the delivery collaborator.
func (f FormState) Fields() MessageFields {
	return MessageFields{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Subject:  strings.TrimSpace(f.Subject),
		Content:  strings.TrimSpace(f.Content),
	}
}

// MessageFields is the payload handed to the email delivery collaborator.
type MessageFields struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Subject  string `json:"subject,omitempty"`
	Content  string `json:"content"`
}

// Deliverer sends a contact message to the studio inbox. Implementations
// make at most one attempt per call and never retry.
type Deliverer interface {
	Deliver(ctx context.Context, fields MessageFields) error
}

// Submission is an archived, successfully delivered contact message.
type Submission struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	Fields      MessageFields `json:"fields"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// SubmissionArchive stores delivered contact messages for later review.
type SubmissionArchive interface {
	Save(ctx context.Context, s Submission) error
	List(ctx context.Context, limit int) ([]Submission, error)
	Close() error
}
