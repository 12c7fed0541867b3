package context

import (
	"context"
	"io"
	"os"

	"github.com/go-kit/log"
)

type contextKey int

const (
	loggerKey contextKey = iota
	outputKey
)

var defaultLogger = log.NewLogfmtLogger(os.Stderr)

func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func Logger(ctx context.Context) log.Logger {
	if logger, ok := ctx.Value(loggerKey).(log.Logger); ok {
		return logger
	}
	return defaultLogger
}

// WithOutput sets the writer command results are printed to.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey, w)
}

func Output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey).(io.Writer); ok {
		return w
	}
	return os.Stdout
}
