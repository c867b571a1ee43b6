package email

import (
	"fmt"

	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/domain"
)

// NewDeliverer creates and returns a contact message deliverer based on the configuration.
func NewDeliverer(cfg config.Provider) (domain.Deliverer, error) {
	switch cfg.GetEmailProvider() {
	case "log":
		return NewLogDeliverer(cfg.GetEmailRecipient()), nil
	case "emailjs":
		if cfg.GetEmailJSServiceID() == "" || cfg.GetEmailJSTemplateID() == "" || cfg.GetEmailJSPublicKey() == "" {
			return nil, fmt.Errorf("email provider is 'emailjs' but EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID or EMAILJS_PUBLIC_KEY is not set")
		}
		return NewEmailJSDeliverer(
			cfg.GetEmailJSEndpoint(),
			cfg.GetEmailJSServiceID(),
			cfg.GetEmailJSTemplateID(),
			cfg.GetEmailJSPublicKey(),
			nil,
		), nil
	case "resend":
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return NewResendDeliverer(cfg.GetEmailAPIKey(), cfg.GetEmailSender(), cfg.GetEmailRecipient(), nil), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
