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

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		err       error
		wantLevel string
		wantMsg   string
	}{
		"success": {
			wantLevel: "info",
			wantMsg:   "request processed",
		},
		"skip": {
			err:       errors.Wrap(errors.ErrSkip, "migration failed"),
			wantLevel: "info",
			wantMsg:   "request skipped",
		},
		"failure": {
			err:       errors.ErrState.New("broken"),
			wantLevel: "error",
			wantMsg:   "request failed",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			logger := conntest.NewLogger()
			ctx := connect.WithLogger(context.Background(), logger)

			var handlerLogger bool
			h := connect.HandlerFunc(func(ctx context.Context, req *connect.Request) (*connect.Request, error) {
				connect.GetLogger(ctx).Debug("handler called")
				handlerLogger = true
				return req, tc.err
			})

			_, err := NewLogging().Handle(ctx, conntest.NewRequest("PR-9"), h)
			assert.Equal(t, tc.err, err)
			require.True(t, handlerLogger)

			called, ok := logger.Find("debug", "handler called")
			require.True(t, ok)
			id, _ := called.Value("request")
			assert.Equal(t, "PR-9", id)

			entry, ok := logger.Find(tc.wantLevel, tc.wantMsg)
			require.True(t, ok, "entries: %v", logger.Entries())
			_, ok = entry.Value("duration")
			assert.True(t, ok)
		})
	}
}
