package app

import (
	"context"
	"time"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
)

// Logging is a decorator to log requests as they pass through. It also
// attaches the request ID to the context logger, so that all handlers down
// the chain log it.
type Logging struct{}

var _ connect.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Handle logs error -> error, skip -> info, success -> info
func (r Logging) Handle(ctx context.Context, req *connect.Request, next connect.Handler) (*connect.Request, error) {
	if req != nil {
		ctx = connect.WithLogInfo(ctx, "request", req.ID)
	}
	start := time.Now()
	res, err := next.Handle(ctx, req)
	logDuration(ctx, start, err)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx context.Context, start time.Time, err error) {
	delta := time.Now().Sub(start)
	logger := connect.GetLogger(ctx).With("duration", delta/time.Microsecond)

	switch {
	case err == nil:
		logger.Info("request processed")
	case errors.ErrSkip.Is(err):
		logger.Info("request skipped", "err", err)
	default:
		logger.Error("request failed", "code", errors.Code(err), "err", err)
	}
}
