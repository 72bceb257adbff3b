package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyParameter   = "parameter"
	KeyStage       = "stage"
	KeyInitializer = "initializer"
	KeyFinalizer   = "finalizer"
	KeyCategory    = "category"
	KeyDurationMS  = "duration_ms"
	KeyTemplate    = "template"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Parameter(name string) slog.Attr   { return slog.String(KeyParameter, name) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func Initializer(name string) slog.Attr { return slog.String(KeyInitializer, name) }
func Finalizer(name string) slog.Attr   { return slog.String(KeyFinalizer, name) }
func Category(c string) slog.Attr       { return slog.String(KeyCategory, c) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Template(name string) slog.Attr    { return slog.String(KeyTemplate, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
