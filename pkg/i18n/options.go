package i18n

import (
	"log/slog"
	"strings"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language. Its catalog must exist.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger sets the translator's logger. A discard logger is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}
