package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil error is given, nil is returned. If only one non-nil error
// is given, that error is returned unchanged. Errors created with Append are
// flattened so that the result never contains nested multi errors.
func Append(errs ...error) error {
	var res []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			res = append(res, m.errs...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return &multiErr{errs: res}
	}
}

// multiErr is a default implementation of an error that clubs together
// several errors.
type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unpack returns all clubbed errors.
func (m *multiErr) Unpack() []error {
	return append([]error(nil), m.errs...)
}

// Cause returns the first clubbed error, consistent with a fail-fast
// approach.
func (m *multiErr) Cause() error {
	return m.errs[0]
}

// Format prints every clubbed error in its own line when %+v is used.
func (m *multiErr) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%d errors occurred:", len(m.errs))
		for _, e := range m.errs {
			fmt.Fprintf(s, "\n\t* %+v", e)
		}
		return
	}
	fmt.Fprint(s, m.Error())
}

var (
	_ unpacker = (*multiErr)(nil)
	_ causer   = (*multiErr)(nil)
)
