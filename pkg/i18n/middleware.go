package i18n

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LangExtractor picks a language for the request; empty means "no opinion".
type LangExtractor func(r *http.Request) string

// maxLangParamLength bounds cookie and query values (RFC 5646 recommends 35).
const maxLangParamLength = 35

// Extractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header, resolving each against the
// translator's catalogs.
func (t *Translator) Extractor() LangExtractor {
	return func(r *http.Request) string {
		if c, err := r.Cookie("lang"); err == nil {
			if lang := t.explicit(c.Value); lang != "" {
				return lang
			}
		}
		if lang := t.explicit(r.URL.Query().Get("lang")); lang != "" {
			return lang
		}
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			return t.Match(accept)
		}
		return ""
	}
}

func (t *Translator) explicit(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxLangParamLength {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return ""
	}
	return t.langs[idx]
}

// Middleware stores the extracted language in the request context,
// falling back to DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// LoggerExtractor adds the request locale to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		locale, ok := ctx.Value(localeContextKey{}).(string)
		if !ok || locale == "" {
			return slog.Attr{}, false
		}
		return slog.String("locale", locale), true
	}
}
