package main

import (
	"github.com/dmitrymomot/pagekit/pkg/httpserver"
	"github.com/dmitrymomot/pagekit/pkg/ratelimiter"
	"github.com/dmitrymomot/pagekit/pkg/session"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Name        string `env:"APP_NAME" envDefault:"pagekit"`
	DefaultLang string `env:"APP_DEFAULT_LANG" envDefault:"en"`
	// LogLevel overrides the environment's level when set.
	LogLevel string `env:"LOG_LEVEL"`

	// TrustedIPHeaders are proxy headers read for the client IP, in order.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	Session   session.Config
	RateLimit ratelimiter.Config
}
