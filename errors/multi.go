package errors

import (
	"fmt"
	"strings"
)

// Errors represents a list of errors; any non-nil Errors value holds at least
// one error, so callers may compare an Errors value with nil to check for the
// absence of errors.
type Errors interface {
	error
	// Slice returns a copy of the underlying (non-nil) errors.
	Slice() []error
	// Len is always > 0.
	Len() int
}

type errorSlice []error

func (m errorSlice) Slice() []error {
	return append([]error(nil), m...)
}

func (m errorSlice) Len() int {
	return len(m)
}

func (m errorSlice) Error() string {
	var b strings.Builder
	for i, err := range m {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprint(&b, err)
	}
	return b.String()
}

// Append appends the given (possibly nil) error to the given (possibly nil)
// Errors. Errors values are flattened rather than nested.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var out errorSlice
	if errs != nil {
		out = errorSlice(errs.Slice())
	}
	if errs, ok := err.(Errors); ok {
		return append(out, errs.Slice()...)
	}
	return append(out, err)
}

// Combine folds two (possibly nil) errors into a single error.
func Combine(e, f error) error {
	if e == nil {
		return f
	}
	if f == nil {
		return e
	}
	if errs, ok := e.(Errors); ok {
		return Append(errs, f)
	}
	return Append(errorSlice{e}, f)
}

// Defer is a helper for deferring error-returning functions such as Close.
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
