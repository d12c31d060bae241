// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Fix returns the suspension defined by self-reference: fix(f) = f(fix(f)).
//
// Constructing Fix never calls f. When the result is first forced, f is
// called once with the result itself, so every unrolling shares one memo
// slot and a recursive definition such as an infinite stream takes finite
// memory.
//
// f must guard its recursion: the argument may only appear inside a lazy
// position, such as the tail of a stream node. A body that returns its
// argument, or forces it before returning, fails with [ErrCyclicForce].
func Fix[A any](f func(*Lazy[A]) *Lazy[A]) *Lazy[A] {
	self := new(Lazy[A])
	self.n.produce = func() (Erased, *node, error) {
		next := f(self)
		if next == nil {
			panic("lazy: Fix body returned nil")
		}
		return nil, &next.n, nil
	}
	return self
}

// FixFunc ties the knot for a recursive suspension-producing function.
// f receives the function being defined and returns its body. Recursive
// calls return pending suspensions, so deep recursion is driven by the
// forcing engine rather than the call stack.
func FixFunc[A, B any](f func(self func(A) *Lazy[B]) func(A) *Lazy[B]) func(A) *Lazy[B] {
	var rec func(A) *Lazy[B]
	rec = func(a A) *Lazy[B] {
		return Suspend(func() (*Lazy[B], error) { return f(rec)(a), nil })
	}
	return rec
}
