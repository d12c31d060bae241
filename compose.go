// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Deferred application of ordinary functions.

// Apply returns a suspension of f(a). f is not called until forced.
func Apply[A, B any](f func(A) B, a A) *Lazy[B] {
	return Delay(func() B { return f(a) })
}

// Compose composes two suspension-producing functions left to right
// (Kleisli composition). Calling the result with x returns at once;
// f and g run only when the returned suspension is forced.
func Compose[A, B, C any](f func(A) *Lazy[B], g func(B) *Lazy[C]) func(A) *Lazy[C] {
	return func(x A) *Lazy[C] {
		first := Suspend(func() (*Lazy[B], error) { return f(x), nil })
		return Bind(first, g)
	}
}

// Memo turns f into a call-by-need function: each distinct argument gets
// one suspension, created on first call and shared by every later call.
// f runs at most once per argument that is forced successfully.
//
// The returned function owns its table and is not safe for concurrent use.
func Memo[K comparable, V any](f func(K) (V, error)) func(K) *Lazy[V] {
	cells := make(map[K]*Lazy[V])
	return func(k K) *Lazy[V] {
		if l, ok := cells[k]; ok {
			return l
		}
		l := Defer(func() (V, error) { return f(k) })
		cells[k] = l
		return l
	}
}
