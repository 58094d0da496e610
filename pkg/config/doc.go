// Package config fills typed configuration structs from environment
// variables. Struct fields use github.com/caarlos0/env tags; a .env file in
// the working directory is loaded once before the first parse, and
// LoadEnvFiles adds explicit files.
//
//	type Session struct {
//		CookieName  string        `env:"SESSION_COOKIE_NAME" envDefault:"pagekit_sid"`
//		IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
//	}
//
//	var cfg Session
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches the parsed value per type; Parse always reads the environment.
package config
