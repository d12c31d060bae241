// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Combinators over suspensions.
//
// Each combinator returns a pending cell and evaluates nothing at
// construction. The result depends on its inputs through a dependency
// frame, so forcing the end of a long Map or Bind chain runs in the
// iterative engine rather than one native frame per link.

// Map returns a suspension of f applied to the value of l.
// f runs at most once, the first time the result is forced successfully.
func Map[A, B any](l *Lazy[A], f func(A) B) *Lazy[B] {
	m := new(Lazy[B])
	m.n.dep = &l.n
	m.n.cont = func(v Erased) (Erased, *node, error) {
		return f(cast[A](v)), nil, nil
	}
	return m
}

// MapErr is like Map with a fallible function.
// A failing f leaves the result pending; l stays memoized.
func MapErr[A, B any](l *Lazy[A], f func(A) (B, error)) *Lazy[B] {
	m := new(Lazy[B])
	m.n.dep = &l.n
	m.n.cont = func(v Erased) (Erased, *node, error) {
		b, err := f(cast[A](v))
		if err != nil {
			return nil, nil, err
		}
		return b, nil, nil
	}
	return m
}

// Bind chains a suspension-producing function after l.
// Forcing the result forces l, applies f, then forces the suspension f
// returned.
func Bind[A, B any](l *Lazy[A], f func(A) *Lazy[B]) *Lazy[B] {
	m := new(Lazy[B])
	m.n.dep = &l.n
	m.n.cont = func(v Erased) (Erased, *node, error) {
		next := f(cast[A](v))
		if next == nil {
			panic("lazy: Bind function returned nil")
		}
		return nil, &next.n, nil
	}
	return m
}

// Then forces l for its effect, discards the value, and continues with n.
func Then[A, B any](l *Lazy[A], n *Lazy[B]) *Lazy[B] {
	m := new(Lazy[B])
	m.n.dep = &l.n
	m.n.cont = func(Erased) (Erased, *node, error) {
		return nil, &n.n, nil
	}
	return m
}

// Pair is a tuple of two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Map2 combines two suspensions with f. a is forced before b.
func Map2[A, B, C any](a *Lazy[A], b *Lazy[B], f func(A, B) C) *Lazy[C] {
	return Bind(a, func(x A) *Lazy[C] {
		return Map(b, func(y B) C { return f(x, y) })
	})
}

// Zip pairs the values of two suspensions.
func Zip[A, B any](a *Lazy[A], b *Lazy[B]) *Lazy[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{Fst: x, Snd: y} })
}

// Sequence returns a suspension of the values of ls, forced in order.
// The first failure is returned; cells forced before it stay memoized.
func Sequence[A any](ls []*Lazy[A]) *Lazy[[]A] {
	return Defer(func() ([]A, error) {
		out := make([]A, 0, len(ls))
		for _, l := range ls {
			a, err := l.Force()
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	})
}
