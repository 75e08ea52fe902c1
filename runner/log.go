package runner

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// levels maps a verbosity to the least severe level logged.
var levels = [...]logrus.Level{logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel}

// NewLogger returns a text logger writing to w at the level for verbosity.
func NewLogger(verbosity int, w io.Writer) (*logrus.Logger, error) {
	if verbosity < 0 || verbosity >= len(levels) {
		return nil, fmt.Errorf("%w: %d", ErrVerbosity, verbosity)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(levels[verbosity])

	return log, nil
}
