// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// Node is one cell of a lazily produced sequence: either End, or a head
// value with a suspended tail. The tail is never forced by the node
// itself; forcing it yields the next Node.
type Node[A any] struct {
	cons bool
	head A
	tail *Lazy[Node[A]]
}

// Stream is a suspended Node. Forcing a Stream yields its outer node only
// (weak-head-normal form); the rest stays unevaluated.
type Stream[A any] = *Lazy[Node[A]]

// Cons creates a node with head and a suspended tail.
func Cons[A any](head A, tail Stream[A]) Node[A] {
	if tail == nil {
		panic("lazy: Cons with nil tail")
	}
	return Node[A]{cons: true, head: head, tail: tail}
}

// End returns the terminal node.
func End[A any]() Node[A] {
	return Node[A]{}
}

// IsEnd reports whether n is the terminal node.
func (n Node[A]) IsEnd() bool { return !n.cons }

// Head returns the head value and true, or zero and false at End.
func (n Node[A]) Head() (A, bool) {
	return n.head, n.cons
}

// Tail returns the suspended rest of the sequence, or nil at End.
func (n Node[A]) Tail() Stream[A] {
	return n.tail
}

// MatchNode pattern matches on n, calling onEnd or onCons.
func MatchNode[A, T any](n Node[A], onEnd func() T, onCons func(A, Stream[A]) T) T {
	if n.cons {
		return onCons(n.head, n.tail)
	}
	return onEnd()
}

// Empty returns a forced stream holding End.
func Empty[A any]() Stream[A] {
	return Pure(End[A]())
}

// Unfold produces a possibly infinite sequence from seed.
//
// next returns the head, the following seed, and whether the sequence
// continues. Only the head of the returned node is computed; each tail is
// a suspension that calls next once more when forced (guarded recursion).
func Unfold[S, A any](seed S, next func(S) (A, S, bool)) Node[A] {
	a, s, ok := next(seed)
	if !ok {
		return End[A]()
	}
	return Cons(a, Delay(func() Node[A] { return Unfold(s, next) }))
}

// UnfoldStream is Unfold with the first head deferred as well.
func UnfoldStream[S, A any](seed S, next func(S) (A, S, bool)) Stream[A] {
	return Delay(func() Node[A] { return Unfold(seed, next) })
}

// Iterate returns the infinite stream x, f(x), f(f(x)), ...
func Iterate[A any](x A, f func(A) A) Stream[A] {
	return UnfoldStream(x, func(a A) (A, A, bool) { return a, f(a), true })
}

// Repeat returns the infinite stream x, x, x, ... backed by a single cell.
func Repeat[A any](x A) Stream[A] {
	return Fix(func(self Stream[A]) Stream[A] {
		return Pure(Cons(x, self))
	})
}

// FromSlice returns a stream over xs. xs is not copied.
func FromSlice[A any](xs []A) Stream[A] {
	return UnfoldStream(0, func(i int) (A, int, bool) {
		if i >= len(xs) {
			var zero A
			return zero, i, false
		}
		return xs[i], i + 1, true
	})
}

// takeCursor is the trampoline state for Take.
type takeCursor[A any] struct {
	node Node[A]
	out  []A
}

// Take returns up to n leading values of the sequence starting at s.
//
// Take forces only the tails needed to reach the n-th head, never the
// tail after it: a stream built by Unfold calls its next function exactly
// n times. The walk runs on a trampoline, so large n does not grow the
// stack. A failing tail stops the walk and its error is returned.
func Take[A any](n int, s Node[A]) ([]A, error) {
	if n < 0 {
		panic("lazy: Take with negative count")
	}
	return TrampolineErr(func(c takeCursor[A]) (Step[takeCursor[A], []A], error) {
		if !c.node.cons || len(c.out) == n {
			return Done[takeCursor[A]](c.out), nil
		}
		c.out = append(c.out, c.node.head)
		if len(c.out) == n {
			return Done[takeCursor[A]](c.out), nil
		}
		next, err := c.node.tail.Force()
		if err != nil {
			return Step[takeCursor[A], []A]{}, err
		}
		c.node = next
		return Continue[[]A](c), nil
	}, takeCursor[A]{node: s, out: make([]A, 0, min(n, 64))})
}

// TakeStream is Take on a suspended stream. TakeStream(0, s) does not
// force s.
func TakeStream[A any](n int, s Stream[A]) ([]A, error) {
	if n == 0 {
		return []A{}, nil
	}
	node, err := s.Force()
	if err != nil {
		return nil, err
	}
	return Take(n, node)
}

// Drop returns the stream without its first n values.
// The skipped tails are forced only when the result is forced.
func Drop[A any](n int, s Stream[A]) Stream[A] {
	if n < 0 {
		panic("lazy: Drop with negative count")
	}
	return Defer(func() (Node[A], error) {
		cur := s
		for range n {
			node, err := cur.Force()
			if err != nil || !node.cons {
				return node, err
			}
			cur = node.tail
		}
		return cur.Force()
	})
}

// TailOf returns the stream after the first value.
// The tail of End is End.
func TailOf[A any](s Stream[A]) Stream[A] {
	return Bind(s, func(n Node[A]) Stream[A] {
		if !n.cons {
			return Empty[A]()
		}
		return n.tail
	})
}

// MapStream applies f to every value, lazily.
func MapStream[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return Map(s, func(n Node[A]) Node[B] {
		if !n.cons {
			return End[B]()
		}
		return Cons(f(n.head), MapStream(n.tail, f))
	})
}

// Filter keeps the values satisfying p.
// Forcing the result forces tails until a match or End; on an infinite
// stream with no further match it does not terminate.
func Filter[A any](s Stream[A], p func(A) bool) Stream[A] {
	return Defer(func() (Node[A], error) {
		cur := s
		for {
			n, err := cur.Force()
			if err != nil {
				return Node[A]{}, err
			}
			if !n.cons {
				return n, nil
			}
			if p(n.head) {
				return Cons(n.head, Filter(n.tail, p)), nil
			}
			cur = n.tail
		}
	})
}

// TakeWhile returns the longest prefix whose values satisfy p.
func TakeWhile[A any](s Stream[A], p func(A) bool) Stream[A] {
	return Map(s, func(n Node[A]) Node[A] {
		if !n.cons || !p(n.head) {
			return End[A]()
		}
		return Cons(n.head, TakeWhile(n.tail, p))
	})
}

// ZipWith combines two streams element-wise with f, ending with the
// shorter one. xs is forced before ys at every position.
func ZipWith[A, B, C any](xs Stream[A], ys Stream[B], f func(A, B) C) Stream[C] {
	return Bind(xs, func(x Node[A]) Stream[C] {
		if !x.cons {
			return Empty[C]()
		}
		return Map(ys, func(y Node[B]) Node[C] {
			if !y.cons {
				return End[C]()
			}
			return Cons(f(x.head, y.head), ZipWith(x.tail, y.tail, f))
		})
	})
}

// foldCursor is the trampoline state for Fold.
type foldCursor[A, B any] struct {
	s   Stream[A]
	acc B
}

// Fold reduces the stream from the left.
// Every tail is forced, so s must be finite; folding an infinite stream
// is a caller contract violation and does not terminate.
func Fold[A, B any](s Stream[A], z B, f func(B, A) B) (B, error) {
	return TrampolineErr(func(c foldCursor[A, B]) (Step[foldCursor[A, B], B], error) {
		n, err := c.s.Force()
		if err != nil {
			return Step[foldCursor[A, B], B]{}, err
		}
		if !n.cons {
			return Done[foldCursor[A, B]](c.acc), nil
		}
		return Continue[B](foldCursor[A, B]{s: n.tail, acc: f(c.acc, n.head)}), nil
	}, foldCursor[A, B]{s: s, acc: z})
}

// ToSlice forces the whole stream into a slice. s must be finite.
func ToSlice[A any](s Stream[A]) ([]A, error) {
	return Fold(s, []A(nil), func(out []A, a A) []A { return append(out, a) })
}

// All returns an iterator over the stream's values.
//
// Each tail is forced only when the loop asks for the next value, so
// breaking out of a range over an infinite stream is safe. A failing tail
// is yielded once as (zero, err) and ends the iteration.
func All[A any](s Stream[A]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		cur := s
		for {
			n, err := cur.Force()
			if err != nil {
				var zero A
				yield(zero, err)
				return
			}
			if !n.cons {
				return
			}
			if !yield(n.head, nil) {
				return
			}
			cur = n.tail
		}
	}
}
