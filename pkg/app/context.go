package app

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Output formats understood by the formatters
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Diagnostics go to the logger, results go to Out
	Logger *logrus.Logger
	Out    io.Writer
}

// NewContext creates a new application context writing results to stdout
// and diagnostics to stderr
func NewContext() *Context {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	return &Context{
		Context:      context.Background(),
		OutputFormat: OutputText,
		Logger:       logger,
		Out:          os.Stdout,
	}
}

// ApplyVerbosity maps the verbose/quiet flags onto the logger level
func (c *Context) ApplyVerbosity() {
	switch {
	case c.Quiet:
		c.Logger.SetLevel(logrus.ErrorLevel)
	case c.Verbose:
		c.Logger.SetLevel(logrus.DebugLevel)
	default:
		c.Logger.SetLevel(logrus.WarnLevel)
	}
}

// Log outputs a debug message, shown only with verbose output
func (c *Context) Log(message string) {
	c.Logger.Debug(message)
}

// WithField returns a log entry carrying a single field
func (c *Context) WithField(key string, value interface{}) *logrus.Entry {
	return c.Logger.WithField(key, value)
}
