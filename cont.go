// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Cont is a computation in continuation-passing style.
// It delivers its result by calling k exactly once before returning,
// or fails by returning a non-nil error.
type Cont[A any] func(k func(A)) error

// FromCont defers a continuation-style computation.
//
// When forced, c runs with a one-shot continuation; the value passed to it
// becomes the memoized result. Resuming twice, or after c has returned,
// panics. If c returns nil without resuming, Force reports [ErrNoResume].
func FromCont[A any](c Cont[A]) *Lazy[A] {
	if c == nil {
		panic("lazy: nil continuation")
	}
	return Defer(func() (A, error) {
		var out A
		k := once(func(a A) { out = a })
		err := c(k.Resume)
		k.close()
		if err != nil {
			var zero A
			return zero, err
		}
		if !k.resumed() {
			var zero A
			return zero, ErrNoResume
		}
		return out, nil
	})
}

// ToCont exposes l as a continuation-style computation.
// Running the result forces l and passes its value to k.
func ToCont[A any](l *Lazy[A]) Cont[A] {
	return func(k func(A)) error {
		a, err := l.Force()
		if err != nil {
			return err
		}
		k(a)
		return nil
	}
}
