package page

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
	"github.com/dmitrymomot/pagekit/pkg/binder"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
	"github.com/dmitrymomot/pagekit/pkg/logger"
	"github.com/dmitrymomot/pagekit/pkg/session"
)

type Service struct {
	translator   *i18n.Translator
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// NewService builds the page service. A nil translator keeps English text;
// a nil logger discards.
func NewService(
	translator *i18n.Translator,
	views Views,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}
	return &Service{
		translator:   translator,
		views:        views,
		errorHandler: errorHandler,
		log:          log,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	path := binder.Path(chi.URLParam)

	r.Get("/", wrap(s, "page", s.index))

	r.Post("/event/{action}", wrap(s, "event", s.event, path))
	r.Post("/theme/toggle", wrap(s, "theme", s.simple(widgets.ThemeToggle)))
	r.Post("/counter/{action}", wrap(s, "counter", s.counter, path))
	r.Post("/faq/{id}/toggle", wrap(s, "faq", s.faq, path))

	r.Route("/dropdown", func(r chi.Router) {
		r.Post("/toggle", wrap(s, "dropdown_toggle", s.simple(widgets.DropdownToggle)))
		r.Post("/outside", wrap(s, "dropdown_outside", s.simple(widgets.DropdownOutside)))
		r.Post("/select/{option}", wrap(s, "dropdown_select", s.dropdownSelect, path))
		r.Post("/key/{option}", wrap(s, "dropdown_key", s.dropdownKey, path, binder.Query()))
	})

	r.Post("/tabs/{id}", wrap(s, "tabs", s.tabs, path))

	r.Route("/signup", func(r chi.Router) {
		r.Post("/", wrap(s, "signup_submit", s.signupSubmit, binder.Form()))
		r.Post("/input", wrap(s, "signup_input", s.signupInput, binder.Query(), binder.Form()))
		r.Post("/reset", wrap(s, "signup_reset", s.simple(widgets.SignupReset)))
	})

	r.Post("/api/signup/validate", handler.Wrap(s.apiValidate,
		handler.WithBinders[handler.Context, signup.Values](binder.JSON()),
		handler.WithErrorHandler[handler.Context, signup.Values](jsonErrorHandler),
		handler.WithDecorators(handler.Logged[handler.Context, signup.Values](s.log, "api_signup_validate")),
	))

	return r
}

func wrap[R any](s *Service, name string, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
		handler.WithDecorators(handler.Logged[handler.Context, R](s.log, name)),
	)
}

func jsonErrorHandler(ctx handler.Context, err error) {
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// localizer translates signup messages into the request locale.
func (s *Service) localizer(ctx context.Context) signup.Localizer {
	if s.translator == nil {
		return nil
	}
	lang := i18n.GetLocale(ctx)
	return func(key, fallback string, args ...string) string {
		return s.translator.Td(lang, key, fallback, args...)
	}
}

func (s *Service) meta(ctx context.Context) Meta {
	m := Meta{Lang: i18n.GetLocale(ctx), Title: "Interactive page", SignupHeading: "Create an account"}
	if s.translator != nil {
		m.Title = s.translator.Td(m.Lang, "page.title", m.Title)
		m.SignupHeading = s.translator.Td(m.Lang, "page.signup_heading", m.SignupHeading)
	}
	return m
}

func pageFrom(ctx context.Context) (*widgets.Page, error) {
	sess, ok := session.FromContext[*widgets.Page](ctx)
	if !ok || sess.State == nil {
		return nil, ErrNoPage
	}
	return sess.State, nil
}
