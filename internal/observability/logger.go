// Package observability builds the logrus logger and the Prometheus metrics
// shared by the CLI and the HTTP server.
package observability

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/sonarlab/internal/formula"
)

// NewLogger returns a logger writing to stderr at level with a text or
// JSON formatter.
func NewLogger(level, format string) (*logrus.Logger, error) {
	return NewLoggerTo(os.Stderr, level, format)
}

func NewLoggerTo(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	default:
		return nil, fmt.Errorf("log format: unknown %q", format)
	}
	return logger, nil
}

// LogDiagnostics writes each diagnostic as a warning.
func LogDiagnostics(log logrus.FieldLogger, diags []formula.Diagnostic) {
	for _, d := range diags {
		fields := logrus.Fields{
			"formula": d.Formula,
			"kind":    d.Kind.String(),
		}
		if d.Param != "" {
			fields["param"] = d.Param
			fields["value"] = d.Value
		}
		if d.Range != nil {
			fields["range"] = d.Range.String()
		}
		log.WithFields(fields).Warn(d.Message)
	}
}
