package cli

import (
	"fmt"
	"io"
)

// StatusReporter prints run notifications as status lines, one per
// notification. It satisfies runner.Reporter.
type StatusReporter struct {
	out io.Writer
}

// NewStatusReporter creates a reporter writing to out.
func NewStatusReporter(out io.Writer) *StatusReporter {
	return &StatusReporter{out: out}
}

// Progress prints a progress notification.
func (r *StatusReporter) Progress(message string) {
	fmt.Fprintln(r.out, message)
}

// Error prints an error notification.
func (r *StatusReporter) Error(message string) {
	fmt.Fprintln(r.out, message)
}

// Finished prints the final line every run ends with.
func (r *StatusReporter) Finished() {
	fmt.Fprintln(r.out, "Done!")
}
