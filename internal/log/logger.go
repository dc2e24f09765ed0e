package log

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
type Logger struct {
	Enabled bool
	W       io.Writer

	once sync.Once
	out  *charmlog.Logger
}

// Printf writes a formatted debug message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.logger().Debugf(format, args...)
}

// Warnf writes a formatted warning to W when Enabled is true.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.logger().Warnf(format, args...)
}

func (l *Logger) logger() *charmlog.Logger {
	l.once.Do(func() {
		w := l.W
		if w == nil {
			w = os.Stderr
		}
		l.out = charmlog.NewWithOptions(w, charmlog.Options{
			Level:  charmlog.DebugLevel,
			Prefix: "lintcoach",
		})
	})
	return l.out
}
