package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/conntest"
	"github.com/cloudblue/connect-migration/errors"
)

// orderDecorator records its name when called.
type orderDecorator struct {
	name  string
	calls *[]string
}

func (d orderDecorator) Handle(ctx context.Context, req *connect.Request, next connect.Handler) (*connect.Request, error) {
	*d.calls = append(*d.calls, d.name)
	return next.Handle(ctx, req)
}

func TestChain(t *testing.T) {
	c1 := &conntest.Decorator{}
	c2 := &conntest.Decorator{}
	c3 := &conntest.Decorator{}
	h := &conntest.Handler{}

	panicking := connect.HandlerFunc(func(ctx context.Context, req *connect.Request) (*connect.Request, error) {
		if req.ID == "PR-panic" {
			panic("boom")
		}
		return h.Handle(ctx, req)
	})

	stack := ChainDecorators(
		c1,
		NewLogging(),
		NewRecovery(),
		c2,
		nil,
		(*conntest.Decorator)(nil),
		c3,
	).WithHandler(panicking)

	bg := context.Background()

	req := conntest.NewRequest("PR-1")
	res, err := stack.Handle(bg, req)
	require.NoError(t, err)
	assert.Equal(t, req, res)

	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
	assert.Equal(t, 1, c3.CallCount())
	assert.Equal(t, 1, h.CallCount())

	// now, let's trigger a panic
	_, err = stack.Handle(bg, conntest.NewRequest("PR-panic"))
	require.Error(t, err)
	assert.True(t, errors.ErrPanic.Is(err))

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 1, h.CallCount())
}

func TestChainOrder(t *testing.T) {
	var calls []string
	d := func(name string) connect.Decorator {
		return orderDecorator{name: name, calls: &calls}
	}

	base := ChainDecorators(d("a"), d("b"))
	stack := base.Chain(d("c")).WithHandler(&conntest.Handler{})
	_, err := stack.Handle(context.Background(), conntest.NewRequest("PR-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	// Extending a chain does not modify the original one.
	calls = nil
	_, err = base.WithHandler(&conntest.Handler{}).Handle(context.Background(), conntest.NewRequest("PR-2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestChainStopsOnDecoratorError(t *testing.T) {
	failing := &conntest.Decorator{Err: errors.ErrSkip.New("stop")}
	h := &conntest.Handler{}

	_, err := ChainDecorators(failing).WithHandler(h).Handle(context.Background(), conntest.NewRequest("PR-1"))
	assert.True(t, errors.ErrSkip.Is(err))
	assert.Equal(t, 0, h.CallCount())
}
