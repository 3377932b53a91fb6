package errors

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created with pkg/errors.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found when unwrapping given error.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// topFrame returns a short "file:line" description of the place where given
// error was created.
func topFrame(err error) (string, bool) {
	st := stackTrace(err)
	if len(st) == 0 {
		return "", false
	}
	f := st[0]
	file := fmt.Sprintf("%s", f)
	line := fmt.Sprintf("%d", f)
	return filepath.Base(file) + ":" + line, true
}
