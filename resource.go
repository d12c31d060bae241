// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Bracket defers acquire → use → release.
//
// When forced, the resource is acquired, passed to use, and released
// after use returns, fails, or panics. The value of use is memoized, so
// the resource is acquired once per successful evaluation. If acquire
// fails, release is not called. Failures are not memoized: the next force
// acquires again.
func Bracket[R, A any](acquire func() (R, error), release func(R), use func(R) (A, error)) *Lazy[A] {
	return Defer(func() (A, error) {
		r, err := acquire()
		if err != nil {
			var zero A
			return zero, err
		}
		defer release(r)
		return use(r)
	})
}
