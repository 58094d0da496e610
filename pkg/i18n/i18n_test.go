package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	fsys, dir := i18n.Catalogs()
	tr, err := i18n.NewTranslator(context.Background(), fsys, dir)
	require.NoError(t, err)
	return tr
}

func TestTranslator(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "Name is required.", tr.T("en", "signup.name.empty"))
	assert.Equal(t, "El nombre es obligatorio.", tr.T("es", "signup.name.empty"))
	assert.Equal(t, "Password must be at least 6 characters.", tr.T("en", "signup.password.too_short", "min", "6"))

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "Passwords do not match.", tr.T("fr", "signup.confirm-password.mismatch"))
	})

	t.Run("missing key returns key or default", func(t *testing.T) {
		assert.Equal(t, "nope.key", tr.T("en", "nope.key"))
		assert.Equal(t, "fallback 3", tr.Td("en", "nope.key", "fallback %{n}", "n", "3"))
	})

	t.Run("unknown placeholder kept", func(t *testing.T) {
		assert.Equal(t, "at least %{min} chars", tr.Td("en", "missing", "at least %{min} chars", "max", "9"))
	})

	t.Run("context locale", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "es")
		assert.Equal(t, "Las contraseñas no coinciden.", tr.Tc(ctx, "signup.confirm-password.mismatch"))
		assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		accept string
		want   string
	}{
		{"es-MX,es;q=0.9", "es"},
		{"fr-FR,es;q=0.5", "es"},
		{"en-GB", "en"},
		{"de", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.accept))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	var got string
	h := i18n.Middleware(tr.Extractor())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "es", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
	req.Header.Set("Accept-Language", "en")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "es", got)

	req = httptest.NewRequest(http.MethodGet, "/?lang=xx-invalid-tag-value", nil)
	req.Header.Set("Accept-Language", "es-AR")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "es", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", got)
}

func TestLoadCatalogs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"l/en.yml":   {Data: []byte("en:\n  a:\n    b: one\n  n: 3\n")},
		"l/notes.md": {Data: []byte("ignored")},
	}
	got, err := i18n.LoadCatalogs(fsys, "l")
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{"en": {"a.b": "one", "n": "3"}}, got)

	_, err = i18n.LoadCatalogs(fstest.MapFS{"l/x.yaml": {Data: []byte("en: [1, 2]")}}, "l")
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	_, err = i18n.LoadCatalogs(fstest.MapFS{"l/x.txt": {Data: []byte("")}}, "l")
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.NewTranslator(context.Background(), fsys, "l", i18n.WithDefaultLanguage("es"))
	assert.ErrorIs(t, err, i18n.ErrDefaultLangMissing)
}
