package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns the diagnostic logger. Debug entries (one per stage and
// copied file) are only shown with --verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
