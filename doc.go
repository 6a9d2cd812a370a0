// Package deprecations is a process-wide registry for deprecation notices.
//
// Library code announces a deprecated code path by calling [Trigger] (or
// [Registry.Trigger] on an explicit registry). The host application decides
// how those announcements surface: written to a warning channel, handed to a
// structured logger at debug level, or dropped entirely. The registry
// deduplicates by link, so each distinct notice is fully reported at most
// once per process while every occurrence is still counted.
//
// The zero configuration is fully disabled: a Trigger call against a
// disabled registry only records the occurrence, which keeps the call cheap
// enough for hot paths.
package deprecations
