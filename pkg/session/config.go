package session

import "time"

// Config holds session settings.
type Config struct {
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"pagekit_sid"`
	IdleTimeout     time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	SecureCookies   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		CookieName:      "pagekit_sid",
		IdleTimeout:     30 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}
