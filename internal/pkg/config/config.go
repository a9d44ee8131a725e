package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.), security settings
// - default: Values common across all environments (timeouts, retry counts), standard settings
//
// ANCHOR_API_KEY is deliberately NOT required here: when it is absent the
// booking routes must answer 503 per request instead of the process failing
// to boot, so the check lives in the anchor client.
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Anchor  AnchorConfig
	Contact ContactConfig
	Pages   PagesConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AnchorConfig points the gateway at the external reservations API.
type AnchorConfig struct {
	APIKey         string        `envconfig:"ANCHOR_API_KEY"`
	BaseURL        string        `envconfig:"ANCHOR_API_BASE_URL" default:"https://management.orangejelly.co.uk/api"`
	Timeout        time.Duration `envconfig:"ANCHOR_API_TIMEOUT" default:"15s"`
	MaxAttempts    int           `envconfig:"ANCHOR_API_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"ANCHOR_API_RETRY_BASE_DELAY" default:"1s"`
}

// ContactConfig is the human fallback offered whenever the gateway cannot
// complete a booking online.
type ContactConfig struct {
	Phone string `envconfig:"CONTACT_PHONE" default:"01753 682707"`
}

// PagesConfig holds the redirect targets for non-JavaScript form submissions.
type PagesConfig struct {
	ConfirmationPath string `envconfig:"PAGE_CONFIRMATION_PATH" default:"/booking-confirmation"`
	BookingFormPath  string `envconfig:"PAGE_BOOKING_FORM_PATH" default:"/book-table"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Anchor: AnchorConfig{
			APIKey:         "test-key",
			BaseURL:        "http://localhost:18080/api",
			Timeout:        5 * time.Second,
			MaxAttempts:    3,
			RetryBaseDelay: time.Millisecond,
		},
		Contact: ContactConfig{
			Phone: "01753 682707",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Idempotency-Key"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Pages: PagesConfig{
			ConfirmationPath: "/booking-confirmation",
			BookingFormPath:  "/book-table",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
