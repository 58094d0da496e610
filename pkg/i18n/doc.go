// Package i18n provides message catalogs and locale negotiation.
//
// Catalogs are YAML files, one per language, nested under the language code:
//
//	en:
//	  signup:
//	    name:
//	      empty: "Name is required."
//
// Nested keys are flattened with dots ("signup.name.empty"). Messages may
// contain named placeholders in the form %{name}, filled from key/value
// argument pairs:
//
//	tr.T("en", "greeting", "name", "Ada") // "Hello, %{name}!" -> "Hello, Ada!"
//
// Locale negotiation uses golang.org/x/text/language, so "es-MX" resolves to
// a catalog named "es". Unsupported languages fall back to the default
// language, and missing keys fall back to the default language's catalog
// and then to the key itself (or to the caller's default with Td).
//
// The package embeds the application catalogs; use Catalogs with
// NewTranslator to load them.
package i18n
