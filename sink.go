package deprecations

import (
	"fmt"
	"io"
	"path/filepath"
)

// notice carries one deprecation occurrence to a sink.
type notice struct {
	Message string
	File    string
	Line    int
	Package string
	Version string
	Link    string
}

// sink is the destination for first-occurrence notices. A nil sink means
// reporting is disabled.
type sink interface {
	emit(n notice) error
}

// warningSink writes human-readable notices to a writer and propagates write
// failures to the Trigger caller.
type warningSink struct {
	w io.Writer
}

func (s warningSink) emit(n notice) error {
	return writeWarning(s.w, n)
}

// suppressedWarningSink is warningSink with best-effort delivery: write
// failures are swallowed.
type suppressedWarningSink struct {
	w io.Writer
}

func (s suppressedWarningSink) emit(n notice) error {
	_ = writeWarning(s.w, n)
	return nil
}

func writeWarning(w io.Writer, n notice) error {
	_, err := fmt.Fprintf(w, "%s (%s:%d, %s, since %s %s)\n",
		n.Message, filepath.Base(n.File), n.Line, n.Link, n.Package, n.Version)
	return err
}

// loggerSink hands the raw message plus structured context to a Logger.
// Failure handling is the logger's own contract; nothing is wrapped here.
type loggerSink struct {
	l Logger
}

func (s loggerSink) emit(n notice) error {
	s.l.Debug(n.Message,
		"file", n.File,
		"line", n.Line,
		"package", n.Package,
		"since", n.Version,
		"link", n.Link,
	)
	return nil
}
