package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/environment"
	"github.com/dmitrymomot/pagekit/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithLevelName("loud")).Info("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("level name overrides environment preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf),
			logger.WithEnvironment(environment.Production, "pagekit"),
			logger.WithLevelName("debug"),
		)
		log.Debug("shown")
		assert.Equal(t, "shown", decode(t, buf)["msg"])
	})

	t.Run("static attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("version", "v1.2.3"))).Info("hello")
		assert.Equal(t, "v1.2.3", decode(t, buf)["version"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production is json info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Production, "pagekit"))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "pagekit", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development is text debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithEnvironment(environment.Development, "pagekit")).Debug("shown")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=pagekit")
	})
}

func TestContextExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(ctxKey{}).(string)
			return slog.String("visitor", v), ok
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "v-1")
	log.With(logger.Component("test")).InfoContext(ctx, "with value")
	entry := decode(t, buf)
	assert.Equal(t, "v-1", entry["visitor"])
	assert.Equal(t, "test", entry["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "without value")
	assert.NotContains(t, decode(t, buf), "visitor")
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	assert.Equal(t, "email", logger.Field("email").Value.String())
	assert.Equal(t, "failure", logger.Outcome("failure").Value.String())
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing happens")
}
