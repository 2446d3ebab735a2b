package handle

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type destroyAndCloseValue struct {
	destroyed int
	closed    int
}

func (v *destroyAndCloseValue) Destroy() { v.destroyed++ }

func (v *destroyAndCloseValue) Close() error {
	v.closed++
	return nil
}

func TestDestroyPrefersDestroyer(t *testing.T) {
	v := &destroyAndCloseValue{}
	require.NoError(t, destroy(v))
	require.Equal(t, 1, v.destroyed)
	require.Equal(t, 0, v.closed)
}

func TestDestroyPlainValue(t *testing.T) {
	require.NoError(t, destroy(intPtr(1)))
	require.NoError(t, destroy(nil))
}

func TestCloseAll(t *testing.T) {
	errFoo := errors.New("foo")
	errBar := errors.New("bar")
	foo := &closeErrValue{err: errFoo}
	bar := &closeErrValue{err: errBar}
	baz := &closeErrValue{}

	fooHandle := New(foo)
	fooClone := fooHandle.Clone()
	barHandle := New(bar)
	bazHandle := New(baz)

	err := CloseAll(fooHandle, barHandle, bazHandle, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bar")
	require.NotContains(t, err.Error(), "foo")
	require.Equal(t, 0, foo.closed)
	require.Equal(t, 1, bar.closed)
	require.Equal(t, 1, baz.closed)
	require.False(t, fooHandle.Valid())
	require.False(t, barHandle.Valid())

	require.Equal(t, errFoo, CloseAll(fooClone))
	require.Equal(t, 1, foo.closed)
}

func TestCloseAllNoErrors(t *testing.T) {
	var closers []io.Closer
	for i := 0; i < 3; i++ {
		closers = append(closers, New(intPtr(i)))
	}
	require.NoError(t, CloseAll(closers...))
	require.NoError(t, CloseAll())
}
