package migration

import (
	"context"
	"testing"

	"github.com/cloudblue/connect-migration/conntest"
	"github.com/cloudblue/connect-migration/conntest/assert"
	"github.com/cloudblue/connect-migration/errors"
)

func TestDecorator(t *testing.T) {
	cases := map[string]struct {
		fixture     string
		engine      *Engine
		wantErr     error
		wantCalls   int
		wantEmail   string
		sameRequest bool
	}{
		"not a migration": {
			fixture:     "request.valid",
			engine:      NewEngine(),
			wantCalls:   1,
			wantEmail:   "",
			sameRequest: true,
		},
		"migrated request is passed on": {
			fixture:   "request.migrate.direct.success",
			engine:    NewEngine(),
			wantCalls: 1,
			wantEmail: "example.migration@mailinator.com",
		},
		"skipped request is not passed on": {
			fixture:   "request.migrate.invalid",
			engine:    NewEngine(),
			wantErr:   errors.ErrSkip,
			wantCalls: 0,
		},
		"recovered failure is passed on": {
			fixture:   "request.migrate.invalid",
			engine:    NewEngine(WithOnFail(&failRecorder{})),
			wantCalls: 1,
			wantEmail: "",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			next := &conntest.Handler{}
			h := conntest.Decorate(next, NewDecorator(tc.engine))

			req := loadRequest(t, tc.fixture)
			res, err := h.Handle(context.Background(), req)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCalls, next.CallCount())
			if tc.wantErr != nil {
				return
			}
			if (next.LastRequest() == req) != tc.sameRequest {
				t.Fatalf("unexpected request instance passed on")
			}
			if res != next.LastRequest() {
				t.Fatal("next handler result not returned")
			}
			if email, ok := res.Asset.Params.Get("email"); ok {
				assert.Equal(t, tc.wantEmail, email)
			}
		})
	}
}
