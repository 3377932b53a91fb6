package migration

import (
	"context"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Input is given to every hook and transformation called during a
// migration.
type Input struct {
	// Payload is the parsed migration data.
	Payload Payload
	// Request is the copy of the request that is being migrated. Changes
	// are visible to the caller.
	Request *connect.Request
	// Config is the value configured with WithConfig, passed unchanged.
	Config interface{}
	Logger log.Logger
	// Err is the abort reason. It is set only for the OnFail hook.
	Err error
}

// Transformation computes the new value of a single parameter.
//
// Returned value is used as the parameter value. A value that is not a string
// is handled according to the serialize setting of the engine.
// Return Pass to leave the parameter unchanged, Fail to mark it as failed or
// Abort to stop the migration. Any other error is returned to the caller of
// Migrate unchanged.
type Transformation interface {
	Transform(ctx context.Context, in Input) (interface{}, error)
}

// TransformationFunc allows to use a function as a Transformation.
type TransformationFunc func(ctx context.Context, in Input) (interface{}, error)

// Transform implements Transformation interface.
func (fn TransformationFunc) Transform(ctx context.Context, in Input) (interface{}, error) {
	return fn(ctx, in)
}

// Hook is a lifecycle callback of a migration. It is used for validation,
// success and failure notifications.
//
// Returning an Abort error from the validation or the success hook aborts
// the migration. Any other error is returned to the caller of Migrate
// unchanged.
type Hook interface {
	Run(ctx context.Context, in Input) error
}

// HookFunc allows to use a function as a Hook.
type HookFunc func(ctx context.Context, in Input) error

// Run implements Hook interface.
func (fn HookFunc) Run(ctx context.Context, in Input) error {
	return fn(ctx, in)
}

// Pass returns an error that tells the engine to leave the parameter
// unchanged. Use it as a transformation result.
func Pass(reason string) error {
	return errors.Wrap(errors.ErrParamPass, reason)
}

// Fail returns an error that marks the parameter as failed. Use it as a
// transformation result.
func Fail(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrParamFail, format, args...)
}

// Abort returns an error that aborts the whole migration.
func Abort(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrAbort, format, args...)
}
