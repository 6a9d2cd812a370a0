package deprecations

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/DavidPrevot/deprecations/internal/sets"
)

// ErrBadFormat reports a message template whose verbs do not match the
// supplied arguments. This is a caller programming error and is never
// swallowed, regardless of sink mode.
var ErrBadFormat = errors.New("deprecations: format arguments do not match template")

// Registry holds the dedup table, the ignore rules and the active sink.
// All methods are safe for concurrent use.
//
// Most applications use the package-level functions against the process
// default registry; an explicit Registry exists for tests and for hosts
// that embed several isolated components.
type Registry struct {
	mu        sync.Mutex
	sink      sink
	triggered map[string]int // link -> occurrence count; never shrinks
	ignored   sets.Set[string]
}

// NewRegistry returns a disabled registry with empty dedup and ignore state.
func NewRegistry() *Registry {
	return &Registry{
		triggered: make(map[string]int),
		ignored:   sets.New[string](),
	}
}

// Trigger announces one deprecated code path. link is the notice identity
// (typically an issue URL) and is the sole dedup key; pkg, version and the
// formatted message are metadata.
//
// Only the first occurrence of a link is formatted and dispatched; every
// later occurrence increments the count and returns immediately. The
// occurrence is recorded even when the registry is disabled or the package
// is ignored, so enabling a sink later does not replay old notices.
//
// The returned error is non-nil only for a template/argument mismatch or,
// in warning-channel mode, a failed write.
func (r *Registry) Trigger(pkg, version, link, format string, args ...any) error {
	file, line := callerFrame(1)
	return r.trigger(file, line, pkg, version, link, format, args)
}

// TriggerIfCalledFromOutside behaves like Trigger, except the notice is
// dropped entirely (not even counted) when the deprecated function's direct
// caller belongs to pkg itself. A frame is considered inside pkg when its
// fully qualified function name contains pkg. This lets a library deprecate
// a function its own internals still call without flagging itself.
func (r *Registry) TriggerIfCalledFromOutside(pkg, version, link, format string, args ...any) error {
	file, line := callerFrame(1)
	if name, ok := callerName(2); ok && strings.Contains(name, pkg) {
		return nil
	}
	return r.trigger(file, line, pkg, version, link, format, args)
}

func (r *Registry) trigger(file string, line int, pkg, version, link, format string, args []any) error {
	r.mu.Lock()
	if n, seen := r.triggered[link]; seen {
		r.triggered[link] = n + 1
		r.mu.Unlock()
		return nil
	}
	r.triggered[link] = 1
	s := r.sink
	ignored := r.ignored.Has(pkg)
	r.mu.Unlock()

	// Only the goroutine that performed the first insert reaches this
	// point, so dispatch can run unlocked and sinks may reenter Trigger.
	if s == nil || ignored {
		return nil
	}

	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "%!") {
		return fmt.Errorf("%w: template %q with %d arg(s)", ErrBadFormat, format, len(args))
	}
	return s.emit(notice{
		Message: msg,
		File:    file,
		Line:    line,
		Package: pkg,
		Version: version,
		Link:    link,
	})
}

// EnableWithWarningChannel routes notices to w as human-readable lines with
// a call-site trailer. Write failures propagate from Trigger. A nil w means
// os.Stderr.
func (r *Registry) EnableWithWarningChannel(w io.Writer) {
	r.setSink(warningSink{w: orStderr(w)})
}

// EnableWithSuppressedWarningChannel is EnableWithWarningChannel with
// best-effort delivery: write failures are swallowed.
func (r *Registry) EnableWithSuppressedWarningChannel(w io.Writer) {
	r.setSink(suppressedWarningSink{w: orStderr(w)})
}

// EnableWithLogger routes notices to l at debug severity. The registry only
// holds the reference; it never manages the logger's lifecycle.
func (r *Registry) EnableWithLogger(l Logger) {
	r.setSink(loggerSink{l: l})
}

// Disable stops all dispatch and drops any held logger reference. The dedup
// table and ignore sets are untouched; they persist across reconfiguration.
func (r *Registry) Disable() {
	r.setSink(nil)
}

func (r *Registry) setSink(s sink) {
	r.mu.Lock()
	r.sink = s
	r.mu.Unlock()
}

// IgnorePackages suppresses dispatch for all notices attributed to the named
// packages. Occurrences are still recorded and counted. Set semantics;
// applies only to subsequent Trigger calls.
func (r *Registry) IgnorePackages(names ...string) {
	r.mu.Lock()
	for _, name := range names {
		r.ignored.Add(name)
	}
	r.mu.Unlock()
}

// IgnoreDeprecations pre-seeds the dedup table with the given links at count
// zero, permanently silencing them before they ever fire. A link that is
// already present keeps its count; seeding never resets history.
func (r *Registry) IgnoreDeprecations(links ...string) {
	r.mu.Lock()
	for _, link := range links {
		if _, seen := r.triggered[link]; !seen {
			r.triggered[link] = 0
		}
	}
	r.mu.Unlock()
}

// UniqueTriggeredCount returns the number of distinct notices observed or
// pre-registered, including zero-count seeded links. It is non-decreasing
// over the process lifetime.
func (r *Registry) UniqueTriggeredCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.triggered)
}

// TriggeredDeprecations returns a snapshot of the dedup table (link to
// occurrence count). Later registry activity does not modify the returned
// map.
func (r *Registry) TriggeredDeprecations() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.triggered)
}

// Reset restores the registry to its initial state: disabled, empty dedup
// table, empty ignore set. Intended for test isolation; Disable is the call
// that matches production reconfiguration semantics.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.sink = nil
	r.triggered = make(map[string]int)
	r.ignored = sets.New[string]()
	r.mu.Unlock()
}

func orStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// callerFrame returns the file and line of the frame skip levels above the
// caller of callerFrame.
func callerFrame(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "?", 0
	}
	return file, line
}

// callerName returns the fully qualified function name of the frame skip
// levels above the caller of callerName.
func callerName(skip int) (string, bool) {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", false
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "", false
	}
	return f.Name(), true
}
