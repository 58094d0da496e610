package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/pagekit/pkg/binder"
	"github.com/dmitrymomot/pagekit/pkg/logger"
	"github.com/dmitrymomot/pagekit/pkg/requestid"
)

// ErrorPageParams feeds the full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams feeds the toast shown for DataStar requests.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning" or "info"
	RequestID string
}

type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode

	// Translate resolves "errors.<key>" for the request's locale. When it is
	// nil or reports no match the status text is shown.
	Translate func(ctx context.Context, key string) (string, bool)
}

// ErrorInfo is the classification of an error for responses and logs.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	valErr, isValidation := asValidationError(err)
	switch {
	case isValidation:
		info.StatusCode = http.StatusUnprocessableEntity
		info.Key = "validation_error"
		info.Message = formatValidationErrors(valErr)
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Key = ErrUnsupportedMediaType.Key
		info.Message = http.StatusText(info.StatusCode)
	case errors.Is(err, binder.ErrInvalidForm), errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidQuery), errors.Is(err, binder.ErrInvalidPath):
		info.StatusCode = ErrBadRequest.Code
		info.Key = ErrBadRequest.Key
		info.Message = http.StatusText(info.StatusCode)
	}

	switch {
	case isClientError(info.StatusCode):
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelInfo
	}
	return info
}

func formatValidationErrors(e ValidationError) string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, e[field]...)
	}
	if len(messages) == 0 {
		return "Validation failed"
	}
	return strings.Join(messages, " ")
}

// NewErrorHandler builds the adaptive error handler: a toast patch for
// DataStar requests, an error page (or plain text) for everything else.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		if cfg.Translate != nil && info.Key != "validation_error" {
			if msg, ok := cfg.Translate(r.Context(), "errors."+info.Key); ok {
				info.Message = msg
			}
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) {
			renderToast(ctx, cfg, info, reqID, log)
			return
		}
		renderPage(ctx, cfg, info, reqID, log)
	}
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.WarnContext(ctx, "no error toast component configured", logger.Component("error_handler"))
		return
	}
	// SSE responses keep status 200 so the client applies the patch.
	toast := cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: reqID})
	resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error toast", logger.Error(err), logger.Event("render_error_toast"))
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}
	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  reqID,
		RetryURL:   "/",
	})
	if err := renderHTML(w, ctx.Request(), page, info.StatusCode); err != nil {
		log.ErrorContext(ctx, "failed to render error page", logger.Error(err), logger.Event("render_error_page"))
	}
}
