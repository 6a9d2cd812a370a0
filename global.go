package deprecations

import (
	"io"
	"strings"
	"sync/atomic"
)

// std is the process default registry behind the package-level API.
var std atomic.Pointer[Registry]

func init() {
	std.Store(NewRegistry())
}

// Default returns the process default registry.
func Default() *Registry {
	return std.Load()
}

// SetDefault replaces the process default registry. A nil r is ignored.
// Mainly useful in tests that need a pristine registry.
func SetDefault(r *Registry) {
	if r != nil {
		std.Store(r)
	}
}

// Trigger announces a deprecated code path on the default registry.
// See [Registry.Trigger].
func Trigger(pkg, version, link, format string, args ...any) error {
	file, line := callerFrame(1)
	return Default().trigger(file, line, pkg, version, link, format, args)
}

// TriggerIfCalledFromOutside announces a deprecated code path on the default
// registry unless the deprecated function's direct caller belongs to pkg.
// See [Registry.TriggerIfCalledFromOutside].
func TriggerIfCalledFromOutside(pkg, version, link, format string, args ...any) error {
	file, line := callerFrame(1)
	if name, ok := callerName(2); ok && strings.Contains(name, pkg) {
		return nil
	}
	return Default().trigger(file, line, pkg, version, link, format, args)
}

// EnableWithWarningChannel configures the default registry.
// See [Registry.EnableWithWarningChannel].
func EnableWithWarningChannel(w io.Writer) { Default().EnableWithWarningChannel(w) }

// EnableWithSuppressedWarningChannel configures the default registry.
// See [Registry.EnableWithSuppressedWarningChannel].
func EnableWithSuppressedWarningChannel(w io.Writer) {
	Default().EnableWithSuppressedWarningChannel(w)
}

// EnableWithLogger configures the default registry.
// See [Registry.EnableWithLogger].
func EnableWithLogger(l Logger) { Default().EnableWithLogger(l) }

// Disable stops dispatch on the default registry. See [Registry.Disable].
func Disable() { Default().Disable() }

// IgnorePackages adds package names to the default registry's ignore set.
func IgnorePackages(names ...string) { Default().IgnorePackages(names...) }

// IgnoreDeprecations pre-seeds links on the default registry.
func IgnoreDeprecations(links ...string) { Default().IgnoreDeprecations(links...) }

// UniqueTriggeredCount reports distinct notices on the default registry.
func UniqueTriggeredCount() int { return Default().UniqueTriggeredCount() }

// TriggeredDeprecations snapshots the default registry's dedup table.
func TriggeredDeprecations() map[string]int { return Default().TriggeredDeprecations() }
