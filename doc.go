// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides call-by-need evaluation for Go: memoizing
// suspensions, a stack-safe forcing engine, trampolines, and guarded
// recursive streams.
//
// The core type [Lazy] is a suspension: a deferred computation plus a memo
// slot. Forcing it runs the computation at most once and caches the
// result; every later force, from any holder of the pointer, returns the
// cached value. Laziness is explicit: there is no interception of field
// access, every consumption site calls [Lazy.Force].
//
// # Design Philosophy
//
// lazy provides:
//   - Run-once sharing: a producer that returned successfully never runs again
//   - No memoized failure: an error or panic leaves the cell pending for retry
//   - Constant native stack: chains of suspensions, Map/Bind nesting and
//     stream traversal are evaluated by loops with explicit work stacks
//   - No process-wide state: every memo slot is owned by its cell
//
// # Suspensions
//
// Construction evaluates nothing:
//
//   - [Defer]: Wrap a fallible producer
//   - [Delay]: Wrap an infallible producer
//   - [Suspend]: Wrap a producer that yields another suspension (chained deferral)
//   - [Pure]: An already forced suspension
//
// Observation:
//
//   - [Lazy.Force]: Evaluate to a value that is not a suspension, memoizing it
//   - [Lazy.MustForce]: Force, panicking on error
//   - [Lazy.IsForced], [Lazy.Peek]: Inspect without forcing
//   - [ForceDeep], [ForceDeepContext]: Collapse nested suspensions of any type via [Forcer]
//
// A producer that transitively forces its own cell fails with
// [ErrCyclicForce] instead of looping. A producer error is returned
// unchanged.
//
// # Deferred Application
//
//   - [Map], [MapErr]: Transform the value
//   - [Bind]: Chain a suspension-producing function
//   - [Then]: Sequence, discarding the first value
//   - [Map2], [Zip]: Combine two suspensions
//   - [Sequence]: Force a slice of suspensions in order
//   - [Apply]: Deferred function application
//   - [Compose]: Kleisli composition of suspension-producing functions
//   - [Memo]: Call-by-need function with one suspension per argument
//   - [Fix], [FixFunc]: Anonymous self-reference for recursive definitions
//   - [FromCont], [ToCont]: Convert continuation-style computations ([Cont])
//   - [Bracket]: Acquire, use and release a resource on force
//
// # Trampoline
//
// [Step] is either [Done] with a result or [Continue] with the next
// arguments. [Trampoline] and [TrampolineErr] loop until Done, so an
// algorithm written as repeated steps runs in constant stack.
//
// # Streams
//
// A [Stream] is a suspended [Node]; a node is either [End] or [Cons] of a
// head and a suspended tail. Recursion through the tail is guarded: the
// next node is produced only when a consumer forces the tail.
//
//   - [Unfold], [UnfoldStream], [Iterate], [Repeat], [FromSlice]: Producers
//   - [Take], [TakeStream]: Bounded consumers that never force past the n-th value
//   - [MapStream], [Filter], [TakeWhile], [Drop], [TailOf], [ZipWith]: Lazy transformers
//   - [Fold], [ToSlice]: Strict consumers; the stream must be finite
//   - [All]: Range-over-func iterator
//
// Applying the same unfolding to a strict aggregate, for example building a
// slice eagerly inside a producer, reintroduces unbounded recursion; that is
// a caller error the runtime does not repair.
//
// # Concurrency
//
// [Lazy] is single-threaded: Force runs the whole producer chain
// synchronously and takes no locks. [Shared] is the goroutine-safe
// variant: concurrent callers block until the running attempt ends and
// share its outcome, success is published atomically, and failure is not
// memoized.
//
// # Example
//
//	powers := lazy.Unfold(1, func(n int) (int, int, bool) {
//		return n, n * 2, true
//	})
//	xs, _ := lazy.Take(5, powers)
//	// xs == []int{1, 2, 4, 8, 16}
//
//	fibs := lazy.Fix(func(fibs lazy.Stream[int]) lazy.Stream[int] {
//		add := func(a, b int) int { return a + b }
//		return lazy.Pure(lazy.Cons(0, lazy.Pure(lazy.Cons(1,
//			lazy.ZipWith(fibs, lazy.TailOf(fibs), add)))))
//	})
//	ys, _ := lazy.TakeStream(8, fibs)
//	// ys == []int{0, 1, 1, 2, 3, 5, 8, 13}
package lazy
