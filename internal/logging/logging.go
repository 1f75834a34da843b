package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rpgo/wealth-planner/internal/config"
)

// New builds a logrus logger from settings. Unknown levels fall back to info; any format
// other than "text" is JSON.
func New(settings config.LogSettings) *logrus.Logger {
	return NewWithOutput(settings, os.Stderr)
}

// NewWithOutput is New writing to out.
func NewWithOutput(settings config.LogSettings, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if strings.EqualFold(settings.Format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// Adapter lets a logrus entry back the engine's Logger interface.
type Adapter struct {
	Entry logrus.FieldLogger
}

// NewAdapter tags every line with the component name.
func NewAdapter(logger logrus.FieldLogger, component string) *Adapter {
	return &Adapter{Entry: logger.WithField("component", component)}
}

func (a *Adapter) Debugf(format string, args ...any) { a.Entry.Debugf(format, args...) }
func (a *Adapter) Infof(format string, args ...any)  { a.Entry.Infof(format, args...) }
func (a *Adapter) Warnf(format string, args ...any)  { a.Entry.Warnf(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.Entry.Errorf(format, args...) }
