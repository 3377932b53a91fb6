package app

import (
	"context"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
)

// Recovery is a decorator to recover from panics in request processing,
// so we can log them as errors
type Recovery struct{}

var _ connect.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Handle turns panics into normal errors
func (r Recovery) Handle(ctx context.Context, req *connect.Request, next connect.Handler) (_ *connect.Request, err error) {
	defer errors.Recover(&err)
	return next.Handle(ctx, req)
}
