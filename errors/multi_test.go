package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendNil(t *testing.T) {
	err := New("error")
	errs := Append(nil, err).Slice()
	require.Len(t, errs, 1)
	require.Equal(t, err, errs[0])

	errs = Append(errorSlice{err}, nil).Slice()
	require.Len(t, errs, 1)
	require.Equal(t, err, errs[0])
}

func TestAppendFlattens(t *testing.T) {
	err0 := New("error0")
	err1 := New("error1")
	err2 := New("error2")
	err3 := New("error3")

	var errs01 Errors
	errs01 = Append(errs01, err0)
	errs01 = Append(errs01, err1)
	var errs23 Errors
	errs23 = Append(errs23, err2)
	errs23 = Append(errs23, err3)

	errs := Append(errs01, errs23).Slice()
	require.Len(t, errs, 4)
	require.Equal(t, err0, errs[0])
	require.Equal(t, err1, errs[1])
	require.Equal(t, err2, errs[2])
	require.Equal(t, err3, errs[3])
}

func TestCombineNil(t *testing.T) {
	err := New("error")
	require.Equal(t, err, Combine(err, nil))
	require.Equal(t, err, Combine(nil, err))
	require.Nil(t, Combine(nil, nil))
}

func TestCombineBasic(t *testing.T) {
	err0 := New("error0")
	err1 := New("error1")

	errs := Combine(err0, err1).(Errors).Slice()
	require.Len(t, errs, 2)
	require.Equal(t, err0, errs[0])
	require.Equal(t, err1, errs[1])
}

func TestCombineDoesNotMutate(t *testing.T) {
	err0 := New("error0")
	err1 := New("error1")
	err2 := New("error2")
	err3 := New("error3")

	var errs01 Errors
	errs01 = Append(errs01, err0)
	errs01 = Append(errs01, err1)

	first := Combine(errs01, err2).(Errors).Slice()
	require.Len(t, first, 3)

	// a second combine off the same base must not overwrite the first
	second := Combine(errs01, err3).(Errors).Slice()
	require.Len(t, second, 3)
	require.Equal(t, err2, first[2])
	require.Equal(t, err3, second[2])
}

func TestDefer(t *testing.T) {
	run := func(body, closeErr error) (err error) {
		defer Defer(&err, func() error { return closeErr })
		return body
	}

	require.Nil(t, run(nil, nil))

	closeErr := New("close failed")
	require.Equal(t, closeErr, run(nil, closeErr))

	bodyErr := New("body failed")
	combined := run(bodyErr, closeErr)
	errs, ok := combined.(Errors)
	require.True(t, ok)
	require.Equal(t, []error{bodyErr, closeErr}, errs.Slice())
	require.Equal(t, "body failed\nclose failed", combined.Error())
}

func TestWrapf(t *testing.T) {
	cause := New("open failed")
	err := Wrapf(cause, "loading %s", "foo.dat")
	require.EqualError(t, err, "loading foo.dat: open failed")

	err = Wrapf(nil, "loading %s", "foo.dat")
	require.EqualError(t, err, "loading foo.dat")
}
