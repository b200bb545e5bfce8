// Package log carries progress detail for verbose check runs.
package log

import (
	"fmt"
	"io"
)

// Logger gates progress messages behind a verbosity switch. The zero
// value is silent.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes one progress line to W. It is a no-op when verbosity
// is off or no writer is configured.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
