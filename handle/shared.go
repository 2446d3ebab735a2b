// Package handle provides a reference counted handle to a heap allocated value.
package handle

import "errors"

var (
	errDerefEmpty         = errors.New("dereferencing an empty shared handle")
	errResetToOwnedValue  = errors.New("resetting a shared handle to the value it already owns")
	errNilResetToReceiver = errors.New("resetting a nil shared handle")
)

// noCopy makes go vet flag shared handles copied by value. A plain struct copy
// duplicates ownership without touching the reference count, use Clone or Move
// instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Shared is a handle to a value owned jointly by every handle sharing its
// control block. The value is destroyed exactly once, when the last owning
// handle is released, reset or reassigned away from it.
//
// The zero value is an empty handle. A value owned by a handle is never
// destroyed while any handle still owns it; if *T implements Destroyer or
// io.Closer, that cleanup runs when the last owner lets go.
//
// The reference count is atomic, but a single Shared is not safe for
// concurrent mutation. Goroutines should each hold their own clone.
type Shared[T any] struct {
	_ noCopy

	data *T
	ctrl *controlBlock[T]
}

// Empty returns an empty handle.
func Empty[T any]() *Shared[T] { return &Shared[T]{} }

// New creates a handle owning v with a use count of 1. v must not be owned by
// any other handle. A nil v yields an empty handle.
func New[T any](v *T) *Shared[T] {
	return NewWithOptions(v, defaultOptions)
}

// NewWithOptions creates a handle owning v with the given options.
func NewWithOptions[T any](v *T, opts *Options) *Shared[T] {
	if opts == nil {
		opts = defaultOptions
	}
	h := &Shared[T]{}
	h.adopt(v, opts)
	return h
}

// Clone returns a new handle sharing ownership of the value, incrementing the
// use count. Cloning an empty handle returns an empty handle.
func (h *Shared[T]) Clone() *Shared[T] {
	out := &Shared[T]{}
	out.data, out.ctrl = h.acquire()
	return out
}

// Move transfers ownership to a new handle and leaves h empty. The use count
// is unchanged.
func (h *Shared[T]) Move() *Shared[T] {
	out := &Shared[T]{}
	out.data, out.ctrl = h.take()
	return out
}

// Assign makes h share ownership of r's value, releasing whatever h owned
// before. It is safe when h and r are the same handle or already share a
// value. Assign returns h.
func (h *Shared[T]) Assign(r *Shared[T]) *Shared[T] {
	// NB: r is acquired before h is released as h and r may share a block.
	data, ctrl := r.acquire()
	h.Release()
	h.data, h.ctrl = data, ctrl
	return h
}

// MoveAssign releases whatever h owned and takes over r's ownership, leaving
// r empty. Moving a handle into itself is a no-op. MoveAssign returns h.
func (h *Shared[T]) MoveAssign(r *Shared[T]) *Shared[T] {
	if h == r {
		return h
	}
	data, ctrl := r.take()
	h.Release()
	h.data, h.ctrl = data, ctrl
	return h
}

// Valid returns true if the handle owns a value.
func (h *Shared[T]) Valid() bool { return h != nil && h.data != nil }

// Value returns a copy of the owned value. It panics if the handle is empty.
func (h *Shared[T]) Value() T {
	if !h.Valid() {
		panic(errDerefEmpty)
	}
	return *h.data
}

// Get returns the owned value without affecting the use count, or nil if the
// handle is empty. The pointer must not outlive the handle's ownership.
func (h *Shared[T]) Get() *T {
	if h == nil {
		return nil
	}
	return h.data
}

// UseCount returns the number of handles owning the value, or 0 if the handle
// is empty.
func (h *Shared[T]) UseCount() int32 {
	if h == nil || h.ctrl == nil {
		return 0
	}
	return h.ctrl.RefCount()
}

// Release gives up ownership and leaves the handle empty. If h was the last
// owner the value is destroyed, and any destroy error is logged.
func (h *Shared[T]) Release() { _ = h.release(true) }

// Close gives up ownership like Release, returning the destroy error instead
// of logging it if h was the last owner.
func (h *Shared[T]) Close() error { return h.release(false) }

// Reset gives up ownership and leaves the handle empty. Resetting an empty
// handle is a no-op.
func (h *Shared[T]) Reset() { h.Release() }

// ResetTo gives up ownership and takes ownership of v with a fresh use count
// of 1. The new control block reuses the options of the released one.
// Resetting a handle to the value it already owns panics.
func (h *Shared[T]) ResetTo(v *T) {
	if h == nil {
		panic(errNilResetToReceiver)
	}
	if v != nil && v == h.data {
		panic(errResetToOwnedValue)
	}
	opts := defaultOptions
	if h.ctrl != nil {
		opts = h.ctrl.opts
	}
	h.Release()
	h.adopt(v, opts)
}

// Swap exchanges the values owned by h and other without touching either use
// count. Swapping handles that share a value is a no-op.
func (h *Shared[T]) Swap(other *Shared[T]) {
	if h == nil || other == nil || h == other || h.ctrl == other.ctrl {
		return
	}
	h.data, other.data = other.data, h.data
	h.ctrl, other.ctrl = other.ctrl, h.ctrl
}

// adopt takes fresh ownership of v. h must be empty.
func (h *Shared[T]) adopt(v *T, opts *Options) {
	if v == nil {
		return
	}
	h.data = v
	h.ctrl = newControlBlock(v, opts)
}

// acquire returns the handle's state with one more owner counted. It is the
// only place the count is incremented.
func (h *Shared[T]) acquire() (*T, *controlBlock[T]) {
	if h == nil || h.ctrl == nil {
		return nil, nil
	}
	h.ctrl.IncRef()
	return h.data, h.ctrl
}

// take returns the handle's state and leaves it empty without touching the count.
func (h *Shared[T]) take() (*T, *controlBlock[T]) {
	if h == nil {
		return nil, nil
	}
	data, ctrl := h.data, h.ctrl
	h.data, h.ctrl = nil, nil
	return data, ctrl
}

// release drops the handle's ownership. It is the only place the count is
// decremented.
func (h *Shared[T]) release(report bool) error {
	_, ctrl := h.take()
	if ctrl == nil {
		return nil
	}
	return ctrl.decRef(report)
}
