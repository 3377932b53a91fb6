package migration

import (
	"context"

	connect "github.com/cloudblue/connect-migration"
)

// Decorator runs the migration before the request reaches the next handler.
// If the migration fails, the next handler is not called.
type Decorator struct {
	engine *Engine
}

var _ connect.Decorator = Decorator{}

// NewDecorator returns a decorator migrating requests with given engine.
func NewDecorator(engine *Engine) Decorator {
	return Decorator{engine: engine}
}

// Handle implements connect.Decorator interface.
func (d Decorator) Handle(ctx context.Context, req *connect.Request, next connect.Handler) (*connect.Request, error) {
	migrated, err := d.engine.Migrate(ctx, req)
	if err != nil {
		return nil, err
	}
	return next.Handle(ctx, migrated)
}
