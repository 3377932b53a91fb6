package migration

import (
	"strings"

	"github.com/cloudblue/connect-migration/errors"
)

// report tracks the outcome of every parameter visited by a single
// migration.
type report struct {
	processed []string
	success   []string
	failed    []string
	failures  []error
}

func (r *report) succeed(paramID string) {
	r.processed = append(r.processed, paramID)
	r.success = append(r.success, paramID)
}

func (r *report) bypass(paramID string) {
	r.processed = append(r.processed, paramID)
}

func (r *report) fail(paramID string, err error) {
	r.processed = append(r.processed, paramID)
	r.failed = append(r.failed, paramID)
	r.failures = append(r.failures, err)
}

// err returns an abort error clubbing together all parameter failures, or
// nil if no parameter failed.
func (r *report) err() error {
	if len(r.failed) == 0 {
		return nil
	}
	abort := errors.Wrapf(errors.ErrAbort,
		"some parameter process has failed (%s), unable to complete the migration",
		strings.Join(r.failed, ", "))
	return errors.Append(append([]error{abort}, r.failures...)...)
}
