package i18n

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"slices"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or negotiated.
const DefaultLanguage = "en"

// Translator looks messages up in loaded catalogs. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	messages       map[string]map[string]string
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the catalogs in dir and builds a translator.
func NewTranslator(ctx context.Context, fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	messages, err := LoadCatalogs(fsys, dir)
	if err != nil {
		return nil, err
	}
	if _, ok := messages[t.defaultLang]; !ok {
		return nil, ErrDefaultLangMissing
	}
	t.messages = messages

	// The matcher falls back to its first tag, so the default goes first.
	t.langs = []string{t.defaultLang}
	for lang := range messages {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the catalog languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match resolves an Accept-Language header or a single language tag to a
// supported catalog language.
func (t *Translator) Match(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether lang's own catalog contains key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.messages[lang][key]
	return ok
}

// T translates key into lang. Missing keys fall back to the default
// language and then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td is T with an explicit fallback used when no catalog has the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if msg, ok := t.lookup(lang, key); ok {
		return namedSprintf(msg, args)
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return namedSprintf(defaultValue, args)
}

// Tc translates key into the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if msg, ok := t.messages[lang][key]; ok {
		return msg, true
	}
	msg, ok := t.messages[t.defaultLang][key]
	return msg, ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf fills %{name} placeholders from key/value pairs. Unknown
// placeholders are kept; an odd trailing argument is ignored.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
