package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/studiosite/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// GameFilterRequest is the query of the catalogue dropdowns.
type GameFilterRequest struct {
	Genre    string `query:"genre" validate:"max=64"`
	Platform string `query:"platform" validate:"max=64"`
}

// Filter converts the request into a catalogue filter.
func (r GameFilterRequest) Filter() domain.GameFilter {
	return domain.GameFilter{Genre: r.Genre, Platform: r.Platform}
}

// GameRequest addresses one game.
type GameRequest struct {
	Slug string `param:"slug" validate:"required,max=80"`
}

// ContactRequest is the posted contact form. Field names match the rendered inputs.
type ContactRequest struct {
	FullName string `form:"full_name" query:"full_name"`
	Email    string `form:"email" query:"email"`
	Subject  string `form:"subject" query:"subject"`
	Content  string `form:"content" query:"content"`
	Website  string `form:"website" query:"website"`
}

// FormState converts the request into the controller's form.
func (r ContactRequest) FormState() domain.FormState {
	return domain.FormState{
		FullName: r.FullName,
		Email:    r.Email,
		Subject:  r.Subject,
		Content:  r.Content,
		Honeypot: r.Website,
	}
}
