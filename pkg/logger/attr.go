package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, so it can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

func Handler(name string) slog.Attr { return slog.String("handler", name) }

// Field names the form field a record is about.
func Field(name string) slog.Attr { return slog.String("field", name) }

// Outcome is "success" or "failure" for a validation pass.
func Outcome(outcome string) slog.Attr { return slog.String("outcome", outcome) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Regions lists the page regions an interaction patched.
func Regions(ids []string) slog.Attr { return slog.Any("regions", ids) }
