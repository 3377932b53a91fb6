package app

import (
	"context"
	"reflect"

	connect "github.com/cloudblue/connect-migration"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []connect.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler,
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    app.NewLogging(),
    app.NewRecovery(),
    migration.NewDecorator(engine),
  ).WithHandler(
    myapp.NewFulfillment(),
  )
*/
func ChainDecorators(chain ...connect.Decorator) Decorators {
	chain = cutoffNil(chain)
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...connect.Decorator) Decorators {
	chain = cutoffNil(chain)
	newChain := make([]connect.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	newChain = append(newChain, chain...)
	return Decorators{newChain}
}

// cutoffNil will in-place remove all all nil values from given slice.
func cutoffNil(ds []connect.Decorator) []connect.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h connect.Handler) connect.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

//------------------ internal types to build chain ---------------

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    connect.Decorator
	next connect.Handler
}

var _ connect.Handler = step{}

// Handle passes the handler into the decorator, implements Handler
func (s step) Handle(ctx context.Context, req *connect.Request) (*connect.Request, error) {
	return s.d.Handle(ctx, req, s.next)
}
