package handle

import (
	"github.com/xichen2020/shared/x/refcnt"

	xlog "github.com/m3db/m3x/log"
)

// controlBlock tracks how many handles own a value. It is created when a
// handle first takes ownership of a value and discarded together with the
// value once the count drops to zero.
type controlBlock[T any] struct {
	*refcnt.RefCounter

	value      *T
	opts       *Options
	destroyErr error
}

func newControlBlock[T any](v *T, opts *Options) *controlBlock[T] {
	b := &controlBlock[T]{
		value: v,
		opts:  opts,
	}
	b.RefCounter = refcnt.NewRefCounterWithCallback(b.destroy)
	opts.metrics.blocksCreated.Inc(1)
	return b
}

// decRef drops one owner and returns the destroy error if this was the last.
func (b *controlBlock[T]) decRef(report bool) error {
	if b.DecRef() > 0 {
		return nil
	}
	err := b.destroyErr
	b.destroyErr = nil
	if err != nil && report && b.opts.ReportDestroyErrors() {
		b.opts.InstrumentOptions().Logger().WithFields(
			xlog.NewErrField(err),
		).Error("error destroying shared value")
	}
	return err
}

func (b *controlBlock[T]) destroy() {
	v := b.value
	b.value = nil
	b.opts.metrics.blocksDestroyed.Inc(1)
	if err := destroy(v); err != nil {
		b.destroyErr = err
		b.opts.metrics.destroyErrors.Inc(1)
	}
}
