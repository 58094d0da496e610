package views

import (
	"context"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/page"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
)

// PageViews bundles the components used by the page service.
func PageViews() page.Views {
	return page.Views{
		Page:         Page,
		EventMessage: EventMessage,
		ThemeToggle:  ThemeToggle,
		Counter:      Counter,
		FAQItem:      FAQItem,
		Dropdown:     Dropdown,
		Tabs:         Tabs,
		SignupForm:   SignupForm,
		FieldError:   FieldError,
		FormFeedback: FormFeedback,
	}
}

// ErrorViews configures the adaptive error handler. Error messages come
// from tr's "errors" catalog section; a nil tr shows status texts.
func ErrorViews(tr *i18n.Translator) handler.ErrorHandlerConfig {
	cfg := handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
	if tr != nil {
		cfg.Translate = func(ctx context.Context, key string) (string, bool) {
			if !tr.HasTranslation(tr.DefaultLanguage(), key) {
				return "", false
			}
			return tr.Tc(ctx, key), true
		}
	}
	return cfg
}
