package judge

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const StopOnFailureOptionKey OptionKey = "stop_on_failure"

type RunOptions struct {
	StopOnFailure bool
}

// WithStopOnFailure makes Run return after the first case that fails or errors.
func WithStopOnFailure(ctx context.Context, stop bool) context.Context {
	return context.WithValue(ctx, StopOnFailureOptionKey, RunOptions{StopOnFailure: stop})
}

func IsStopOnFailureEnabled(ctx context.Context, defaultStop bool) bool {
	options, ok := ctx.Value(StopOnFailureOptionKey).(RunOptions)
	if ok {
		return options.StopOnFailure
	}
	return defaultStop
}

type Option func(*Judge)

func WithLogger(logger *zap.Logger) Option {
	return func(j *Judge) {
		if logger != nil {
			j.logger = logger
		}
	}
}
