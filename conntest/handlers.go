package conntest

import (
	"context"

	connect "github.com/cloudblue/connect-migration"
)

// Handler is a mock implementation of the connect.Handler interface. It
// records the last request it was called with.
//
// Set Err to force an error response. If Result is not set, the received
// request is returned.
type Handler struct {
	calls int
	last  *connect.Request

	Result *connect.Request
	Err    error
}

var _ connect.Handler = (*Handler)(nil)

func (h *Handler) Handle(ctx context.Context, req *connect.Request) (*connect.Request, error) {
	h.calls++
	h.last = req
	if h.Err != nil {
		return nil, h.Err
	}
	if h.Result != nil {
		return h.Result, nil
	}
	return req, nil
}

func (h *Handler) CallCount() int {
	return h.calls
}

// LastRequest returns the request that the handler was called with last.
func (h *Handler) LastRequest() *connect.Request {
	return h.last
}
