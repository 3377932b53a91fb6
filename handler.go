package connect

import (
	"context"
	"encoding/json"

	"github.com/cloudblue/connect-migration/errors"
)

// Handler is the final step of a pipeline. It processes a request and
// returns the request that should be used from now on.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Request, error)
}

// HandlerFunc allows to use a function as a Handler.
type HandlerFunc func(ctx context.Context, req *Request) (*Request, error)

// Handle implements Handler interface.
func (fn HandlerFunc) Handle(ctx context.Context, req *Request) (*Request, error) {
	return fn(ctx, req)
}

// Decorator wraps a Handler to provide common functionality to many
// Handlers. A decorator may pass a different request to the next handler or
// stop the processing by not calling it at all.
type Decorator interface {
	Handle(ctx context.Context, req *Request, next Handler) (*Request, error)
}

// Options are the program options.
// Each extension can look up it's key and parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %q options: %s", key, err)
	}
	return nil
}
