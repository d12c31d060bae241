// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Lazy is a suspension: a deferred computation with a memo slot.
//
// A Lazy is pending until the first successful [Lazy.Force], which runs the
// producer at most once and caches the result. Later forces return the
// cached value in constant time. A failed force memoizes nothing and leaves
// the cell pending, so it can be forced again.
//
// Lazy is not safe for concurrent use; see [Shared] for a goroutine-safe cell.
// Always use a Lazy by pointer; the zero value is not a valid suspension.
type Lazy[A any] struct {
	n node
}

// Defer wraps a fallible zero-argument computation. Nothing is evaluated.
func Defer[A any](f func() (A, error)) *Lazy[A] {
	if f == nil {
		panic("lazy: nil producer")
	}
	l := new(Lazy[A])
	l.n.produce = func() (Erased, *node, error) {
		a, err := f()
		if err != nil {
			return nil, nil, err
		}
		return a, nil, nil
	}
	return l
}

// Delay wraps an infallible zero-argument computation. Nothing is evaluated.
func Delay[A any](f func() A) *Lazy[A] {
	if f == nil {
		panic("lazy: nil producer")
	}
	l := new(Lazy[A])
	l.n.produce = func() (Erased, *node, error) {
		return f(), nil, nil
	}
	return l
}

// Suspend wraps a computation that yields another suspension.
// Forcing the result forces the returned suspension in turn, through any
// number of further layers, without growing the call stack.
func Suspend[A any](f func() (*Lazy[A], error)) *Lazy[A] {
	if f == nil {
		panic("lazy: nil producer")
	}
	l := new(Lazy[A])
	l.n.produce = func() (Erased, *node, error) {
		next, err := f()
		if err != nil {
			return nil, nil, err
		}
		if next == nil {
			panic("lazy: Suspend producer returned nil")
		}
		return nil, &next.n, nil
	}
	return l
}

// Pure returns an already forced suspension holding a.
func Pure[A any](a A) *Lazy[A] {
	l := new(Lazy[A])
	l.n.state = forced
	l.n.value = a
	return l
}

// Force evaluates l to a value that is not itself a suspension.
//
// If l is forced, Force returns the cached value with no side effect.
// Otherwise the producer runs exactly once; chained suspensions it returns
// are forced in a loop and every cell on the chain memoizes the final
// value. A producer error is returned unchanged and nothing is memoized.
// If evaluation reaches a cell that is already being forced, Force returns
// [ErrCyclicForce].
func (l *Lazy[A]) Force() (A, error) {
	if l.n.state == forced {
		return cast[A](l.n.value), nil
	}
	v, err := force(&l.n)
	if err != nil {
		var zero A
		return zero, err
	}
	return cast[A](v), nil
}

// MustForce is like Force but panics with the error.
func (l *Lazy[A]) MustForce() A {
	a, err := l.Force()
	if err != nil {
		panic(err)
	}
	return a
}

// ForceAny implements [Forcer].
func (l *Lazy[A]) ForceAny() (Erased, error) {
	return l.Force()
}

// IsForced reports whether l already holds a memoized value.
func (l *Lazy[A]) IsForced() bool {
	return l.n.state == forced
}

// Peek returns the memoized value without forcing.
// Returns (zero, false) while l is pending.
func (l *Lazy[A]) Peek() (A, bool) {
	if l.n.state != forced {
		var zero A
		return zero, false
	}
	return cast[A](l.n.value), true
}
