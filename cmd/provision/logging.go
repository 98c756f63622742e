package main

import (
	"context"
	"io"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
)

// withLogger installs a logrus-backed dlog logger writing to w.
// Only warnings and errors are shown unless verbose is set.
func withLogger(ctx context.Context, w io.Writer, verbose bool) context.Context {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return dlog.WithLogger(ctx, dlog.WrapLogrus(logger))
}
