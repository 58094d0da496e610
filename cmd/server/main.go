// Command server runs the interactive page.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/pagekit/modules/signup"
	"github.com/dmitrymomot/pagekit/modules/widgets"
	"github.com/dmitrymomot/pagekit/pkg/clientip"
	"github.com/dmitrymomot/pagekit/pkg/config"
	"github.com/dmitrymomot/pagekit/pkg/environment"
	"github.com/dmitrymomot/pagekit/pkg/httpserver"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
	"github.com/dmitrymomot/pagekit/pkg/logger"
	"github.com/dmitrymomot/pagekit/pkg/ratelimiter"
	"github.com/dmitrymomot/pagekit/pkg/requestid"
	"github.com/dmitrymomot/pagekit/pkg/session"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

// run starts the server. envFiles are loaded into the environment first;
// variables that are already set keep their values.
func run(ctx context.Context, envFiles []string) error {
	if len(envFiles) > 0 {
		if err := config.LoadEnvFiles(envFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(slog.String("version", version)),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			i18n.LoggerExtractor(),
			session.LoggerExtractor[*widgets.Page](),
		),
	)

	fsys, dir := i18n.Catalogs()
	translator, err := i18n.NewTranslator(ctx, fsys, dir,
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!env.IsProduction()),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := signup.NewMetrics(reg)

	sessions := session.New(
		func() *widgets.Page { return widgets.NewPage(widgets.WithSignupMetrics(metrics)) },
		session.WithConfig[*widgets.Page](cfg.Session),
		session.WithLogger[*widgets.Page](log),
	)
	defer func() { _ = sessions.Close() }()

	limitStore := ratelimiter.NewMemoryStore()
	defer func() { _ = limitStore.Close() }()
	limiter, err := ratelimiter.NewBucket(limitStore, cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	router := newRouter(routerDeps{
		env:        env,
		log:        log,
		translator: translator,
		sessions:   sessions,
		limiter:    limiter,
		ips:        clientip.New(cfg.TrustedIPHeaders...),
		gatherer:   reg,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
