package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface so tests can stub it.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string

	GetLogFormat() string
	GetLogLevel() string

	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetEmailRecipient() string
	GetEmailJSServiceID() string
	GetEmailJSTemplateID() string
	GetEmailJSPublicKey() string
	GetEmailJSEndpoint() string

	GetContactVariant() string
	GetContactCooldown() time.Duration
	GetContactStatusTTL() time.Duration
	GetContactIdleTTL() time.Duration
	GetCarouselInterval() time.Duration

	GetArchiveBackend() string
	GetArchiveSQLitePath() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string

	GetContentDir() string
	GetContentWatch() bool
	GetStaticDir() string

	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string `env:"APP_ADDR" envDefault:":8080"`
	AppBaseURL    string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-me-in-production-please!"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`

	EmailProvider     string `env:"EMAIL_PROVIDER" envDefault:"log"`
	EmailAPIKey       string `env:"EMAIL_API_KEY"`
	EmailSender       string `env:"EMAIL_SENDER"`
	EmailRecipient    string `env:"EMAIL_RECIPIENT" envDefault:"hello@localhost"`
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`

	ContactVariant   string        `env:"CONTACT_VARIANT" envDefault:"strict"`
	ContactCooldown  time.Duration `env:"CONTACT_COOLDOWN" envDefault:"30s"`
	ContactStatusTTL time.Duration `env:"CONTACT_STATUS_TTL" envDefault:"5s"`
	ContactIdleTTL   time.Duration `env:"CONTACT_IDLE_TTL" envDefault:"30m"`
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`

	ArchiveBackend    string `env:"ARCHIVE_BACKEND" envDefault:"memory"`
	ArchiveSQLitePath string `env:"ARCHIVE_SQLITE_PATH" envDefault:"data/inbox.db"`
	DBUrl             string `env:"SURREAL_URL"`
	DBNs              string `env:"SURREAL_NS"`
	DBDb              string `env:"SURREAL_DB"`
	DBUser            string `env:"SURREAL_USER"`
	DBPass            string `env:"SURREAL_PASS"`

	ContentDir   string `env:"CONTENT_DIR"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`
	StaticDir    string `env:"STATIC_DIR"`

	TracingEnabled     bool   `env:"PUBSUB_TRACING_ENABLED" envDefault:"false"`
	TracingServiceName string `env:"PUBSUB_TRACING_SERVICE_NAME" envDefault:"studiosite"`
	TracingZipkinURL   string `env:"PUBSUB_TRACING_ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
// It exits the process when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Parse reads the environment into a Config and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express.
func (c *Config) Validate() error {
	switch strings.ToLower(c.EmailProvider) {
	case "log", "emailjs", "resend":
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}

	switch strings.ToLower(c.ArchiveBackend) {
	case "memory", "sqlite":
	case "surreal":
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			return fmt.Errorf("archive backend 'surreal' requires SURREAL_URL, SURREAL_NS and SURREAL_DB")
		}
	default:
		return fmt.Errorf("unknown ARCHIVE_BACKEND %q", c.ArchiveBackend)
	}

	if c.ContactCooldown < 0 {
		return fmt.Errorf("CONTACT_COOLDOWN must not be negative")
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	return nil
}

func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }

func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string  { return c.LogLevel }

func (c *Config) GetEmailProvider() string     { return strings.ToLower(c.EmailProvider) }
func (c *Config) GetEmailAPIKey() string       { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string       { return c.EmailSender }
func (c *Config) GetEmailRecipient() string    { return c.EmailRecipient }
func (c *Config) GetEmailJSServiceID() string  { return c.EmailJSServiceID }
func (c *Config) GetEmailJSTemplateID() string { return c.EmailJSTemplateID }
func (c *Config) GetEmailJSPublicKey() string  { return c.EmailJSPublicKey }
func (c *Config) GetEmailJSEndpoint() string   { return c.EmailJSEndpoint }

func (c *Config) GetContactVariant() string          { return c.ContactVariant }
func (c *Config) GetContactCooldown() time.Duration  { return c.ContactCooldown }
func (c *Config) GetContactStatusTTL() time.Duration { return c.ContactStatusTTL }
func (c *Config) GetContactIdleTTL() time.Duration   { return c.ContactIdleTTL }
func (c *Config) GetCarouselInterval() time.Duration { return c.CarouselInterval }

func (c *Config) GetArchiveBackend() string    { return strings.ToLower(c.ArchiveBackend) }
func (c *Config) GetArchiveSQLitePath() string { return c.ArchiveSQLitePath }
func (c *Config) GetDBURL() string             { return c.DBUrl }
func (c *Config) GetDBNs() string              { return c.DBNs }
func (c *Config) GetDBDb() string              { return c.DBDb }
func (c *Config) GetDBUser() string            { return c.DBUser }
func (c *Config) GetDBPass() string            { return c.DBPass }

func (c *Config) GetContentDir() string { return c.ContentDir }
func (c *Config) GetContentWatch() bool { return c.ContentWatch }
func (c *Config) GetStaticDir() string  { return c.StaticDir }

func (c *Config) GetTracingEnabled() bool       { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string   { return c.TracingZipkinURL }
