package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/pagekit/handler"
	"github.com/dmitrymomot/pagekit/modules/page"
	"github.com/dmitrymomot/pagekit/modules/widgets"
	"github.com/dmitrymomot/pagekit/pkg/clientip"
	"github.com/dmitrymomot/pagekit/pkg/environment"
	"github.com/dmitrymomot/pagekit/pkg/httpserver"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
	"github.com/dmitrymomot/pagekit/pkg/ratelimiter"
	"github.com/dmitrymomot/pagekit/pkg/requestid"
	"github.com/dmitrymomot/pagekit/pkg/session"
	"github.com/dmitrymomot/pagekit/views"
)

type routerDeps struct {
	env        environment.Environment
	log        *slog.Logger
	translator *i18n.Translator
	sessions   *session.Manager[*widgets.Page]
	limiter    *ratelimiter.Bucket
	ips        *clientip.Resolver
	gatherer   prometheus.Gatherer
}

func newRouter(d routerDeps) http.Handler {
	errorHandler := handler.NewErrorHandler(d.log, views.ErrorViews(d.translator))

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		d.ips.Middleware,
		environment.Middleware(d.env),
		i18n.Middleware(d.translator.Extractor()),
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(d.log))
	r.Handle("/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(views.Static())))

	svc := page.NewService(d.translator, views.PageViews(), errorHandler, d.log)

	r.Group(func(r chi.Router) {
		r.Use(ratelimiter.Middleware(d.limiter, interactionKey,
			ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
				errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
			}),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				errorHandler(handler.NewContext(w, r), err)
			}),
		))
		r.Use(d.sessions.Middleware)
		r.Mount("/", svc.Handle())
	})

	return r
}

// interactionKey limits state-changing requests per client IP.
func interactionKey(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return ""
	}
	return clientip.FromContext(r.Context())
}
