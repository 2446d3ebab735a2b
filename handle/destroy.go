package handle

import (
	"io"

	xerrors "github.com/m3db/m3x/errors"
)

// Destroyer is implemented by values that need to run cleanup when the last
// shared handle owning them goes away.
type Destroyer interface {
	Destroy()
}

// destroy runs the value's own cleanup. Destroyer takes precedence over
// io.Closer when a value implements both.
func destroy(v interface{}) error {
	switch d := v.(type) {
	case Destroyer:
		d.Destroy()
		return nil
	case io.Closer:
		return d.Close()
	default:
		return nil
	}
}

// CloseAll closes every closer, typically a set of shared handles, and returns
// the errors of the values destroyed along the way.
func CloseAll(closers ...io.Closer) error {
	var multiErr xerrors.MultiError
	for _, c := range closers {
		if c == nil {
			continue
		}
		multiErr = multiErr.Add(c.Close())
	}
	return multiErr.FinalError()
}
