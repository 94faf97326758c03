// Package config reads the service configuration from the environment. A
// .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/delivery"
)

const (
	BackendSMTP  = "smtp"
	BackendInbox = "inbox"
)

// DefaultInboxPath is the inbox database used when INBOX_DB is unset.
const DefaultInboxPath = "inbox.db"

type Config struct {
	Port           string
	ContentFile    string
	StaticDir      string
	ImagesDir      string
	Backend        string
	InboxPath      string
	SMTP           delivery.SMTPConfig
	SessionTTL     time.Duration
	SuccessDisplay time.Duration
	// ContactRate is the sustained number of submissions allowed per
	// session per minute.
	ContactRate float64
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// Load builds the configuration from environment variables with defaults
// suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Getenv("PORT", "8080"),
		ContentFile: os.Getenv("CONTENT_FILE"),
		StaticDir:   Getenv("STATIC_DIR", "./static"),
		ImagesDir:   Getenv("IMAGES_DIR", "./images"),
		Backend:     Getenv("DELIVERY_BACKEND", BackendSMTP),
		InboxPath:   Getenv("INBOX_DB", DefaultInboxPath),
		SMTP: delivery.SMTPConfig{
			Host: Getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: Getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
	}

	var err error
	if cfg.SessionTTL, err = duration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SuccessDisplay, err = duration("SUCCESS_DISPLAY", contact.SuccessDisplay); err != nil {
		return nil, err
	}

	cfg.ContactRate = 3
	if v := os.Getenv("CONTACT_RATE"); v != "" {
		cfg.ContactRate, err = strconv.ParseFloat(v, 64)
		if err != nil || cfg.ContactRate <= 0 {
			return nil, fmt.Errorf("CONTACT_RATE: invalid rate %q", v)
		}
	}

	switch cfg.Backend {
	case BackendSMTP:
		if cfg.SMTP.User == "" || cfg.SMTP.Pass == "" {
			slog.Warn("SMTP credentials not set, contact submissions will fail", "hint", "set SMTP_USER and SMTP_PASS or DELIVERY_BACKEND=inbox")
		}
		if cfg.SMTP.To == "" {
			cfg.SMTP.To = cfg.SMTP.User
		}
	case BackendInbox:
	default:
		return nil, fmt.Errorf("DELIVERY_BACKEND: unknown backend %q", cfg.Backend)
	}

	return cfg, nil
}
