package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nfrund/studiosite/internal/domain"
)

const (
	defaultTimeout    = 15 * time.Second
	maxReasonLength   = 200
	emailJSEndpoint   = "https://api.emailjs.com/api/v1.0/email/send"
	resendEndpoint    = "https://api.resend.com/emails"
	defaultResendFrom = "Studio <onboarding@resend.dev>"
)

// --- LogDeliverer (for development) ---

// LogDeliverer prints contact messages to the log instead of sending them.
type LogDeliverer struct {
	recipient string
}

// NewLogDeliverer creates a LogDeliverer addressed to recipient.
func NewLogDeliverer(recipient string) *LogDeliverer {
	return &LogDeliverer{recipient: recipient}
}

// Deliver logs the message fields.
func (d *LogDeliverer) Deliver(ctx context.Context, fields domain.MessageFields) error {
	slog.InfoContext(ctx, "Contact message delivered (logged)",
		"to", d.recipient,
		"from_name", fields.FullName,
		"from_email", fields.Email,
		"subject", fields.Subject,
		"content", fields.Content,
	)
	return nil
}

// --- EmailJSDeliverer ---

// EmailJSDeliverer sends messages through the EmailJS REST API. The service,
// template and public key identify the studio's EmailJS account; the fields
// become the template parameters.
type EmailJSDeliverer struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSDeliverer creates a deliverer for the given EmailJS account.
// An empty endpoint selects the public EmailJS API.
func NewEmailJSDeliverer(endpoint, serviceID, templateID, publicKey string, client *http.Client) *EmailJSDeliverer {
	if endpoint == "" {
		endpoint = emailJSEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &EmailJSDeliverer{
		endpoint:   endpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		client:     client,
	}
}

// Deliver posts the message to EmailJS. EmailJS answers errors with a plain
// text explanation, which becomes the DeliveryError reason.
func (d *EmailJSDeliverer) Deliver(ctx context.Context, fields domain.MessageFields) error {
	params := map[string]string{
		"from_name":  fields.FullName,
		"from_email": fields.Email,
		"reply_to":   fields.Email,
		"message":    fields.Content,
	}
	if fields.Subject != "" {
		params["subject"] = fields.Subject
	}

	payload := emailJSPayload{
		ServiceID:      d.serviceID,
		TemplateID:     d.templateID,
		UserID:         d.publicKey,
		TemplateParams: params,
	}

	if err := postJSON(ctx, d.client, d.endpoint, nil, payload, plainReason); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Successfully sent contact message via EmailJS", "from_email", fields.Email)
	return nil
}

// --- ResendDeliverer ---

// ResendDeliverer sends messages using the Resend API.
type ResendDeliverer struct {
	endpoint      string
	apiKey        string
	senderAddress string
	recipient     string
	client        *http.Client
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewResendDeliverer creates a deliverer that mails recipient via Resend.
func NewResendDeliverer(apiKey, senderAddress, recipient string, client *http.Client) *ResendDeliverer {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &ResendDeliverer{
		endpoint:      resendEndpoint,
		apiKey:        apiKey,
		senderAddress: senderAddress,
		recipient:     recipient,
		client:        client,
	}
}

// Deliver dispatches the message using the Resend API.
func (d *ResendDeliverer) Deliver(ctx context.Context, fields domain.MessageFields) error {
	sender := d.senderAddress
	if sender == "" {
		sender = defaultResendFrom
	}

	subject := fields.Subject
	if subject == "" {
		subject = "New message from " + fields.FullName
	}

	payload := resendPayload{
		From:    sender,
		To:      d.recipient,
		ReplyTo: fields.Email,
		Subject: subject,
		HTML: fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt; wrote:</p><p>%s</p>",
			html.EscapeString(fields.FullName),
			html.EscapeString(fields.Email),
			strings.ReplaceAll(html.EscapeString(fields.Content), "\n", "<br>"),
		),
	}

	headers := map[string]string{"Authorization": "Bearer " + d.apiKey}
	if err := postJSON(ctx, d.client, d.endpoint, headers, payload, resendReason); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Successfully sent contact message via Resend", "to", d.recipient, "subject", subject)
	return nil
}

// postJSON sends payload and turns any transport error or 4xx/5xx response
// into a *domain.DeliveryError.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any, reason func([]byte) string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.DeliveryError{Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.DeliveryError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &domain.DeliveryError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.DeliveryError{
			StatusCode: resp.StatusCode,
			Reason:     truncate(reason(raw)),
			Err:        fmt.Errorf("provider returned status %d", resp.StatusCode),
		}
	}
	return nil
}

func plainReason(raw []byte) string {
	return strings.TrimSpace(string(raw))
}

// resendReason extracts the message field of a Resend error document.
func resendReason(raw []byte) string {
	var doc struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Message)
}

func truncate(s string) string {
	if len(s) <= maxReasonLength {
		return s
	}
	cut := maxReasonLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
