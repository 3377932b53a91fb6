package conntest

import (
	"context"

	connect "github.com/cloudblue/connect-migration"
)

// Decorator is a mock implementation of the connect.Decorator interface.
//
// Set Err to force error response. If the error attribute is not set then
// wrapped handler method is called and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	calls int
	// Err if set is returned by the Handle method before calling the
	// wrapped handler.
	Err error
}

var _ connect.Decorator = (*Decorator)(nil)

func (d *Decorator) Handle(ctx context.Context, req *connect.Request, next connect.Handler) (*connect.Request, error) {
	d.calls++

	if d.Err != nil {
		return nil, d.Err
	}
	return next.Handle(ctx, req)
}

func (d *Decorator) CallCount() int {
	return d.calls
}

// Decorate returns a handler that is calling given decorator with h as the
// next handler.
func Decorate(h connect.Handler, d connect.Decorator) connect.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn connect.Handler
	dc connect.Decorator
}

var _ connect.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Handle(ctx context.Context, req *connect.Request) (*connect.Request, error) {
	return d.dc.Handle(ctx, req, d.hn)
}
