package deprecations

// Logger receives deprecation notices when the registry is configured with
// EnableWithLogger. Notices are emitted at debug severity with the formatted
// message and alternating key/value context (file, line, package, since,
// link).
//
// The interface intentionally mirrors slog's Debug signature, so a
// *slog.Logger can be used directly without an adapter.
//
// Implementations must be safe for concurrent use; the registry is shared
// process-wide and Trigger may be called from any goroutine.
type Logger interface {
	Debug(msg string, args ...any)
}
