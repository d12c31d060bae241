// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Shared is a suspension that is safe for concurrent use.
//
// At most one producer invocation runs at a time. Goroutines that force
// while it runs block until it finishes and receive the same outcome. A
// success is memoized and published atomically; later forces return it
// without locking. A failure is delivered to the goroutines that joined
// that attempt and is not memoized, so the next force starts a new one.
type Shared[A any] struct {
	done    atomic.Bool
	value   A
	produce func(context.Context) (A, error)
	group   singleflight.Group
}

// NewShared wraps a producer for concurrent call-by-need evaluation.
//
// The producer receives the values of the context of the goroutine that
// starts the attempt, detached from its cancellation. Timeouts of the
// computation itself belong to the producer; a timed out attempt fails
// like any other.
func NewShared[A any](f func(ctx context.Context) (A, error)) *Shared[A] {
	if f == nil {
		panic("lazy: nil producer")
	}
	return &Shared[A]{produce: f}
}

// SharedValue returns an already forced Shared holding a.
func SharedValue[A any](a A) *Shared[A] {
	s := &Shared[A]{value: a}
	s.done.Store(true)
	return s
}

// forcingKey is the context key of the set of Shared cells an attempt is
// currently evaluating.
type forcingKey struct{}

// forcingSet is an immutable linked list of in-progress cells.
type forcingSet struct {
	cell   any
	parent *forcingSet
}

func (set *forcingSet) contains(cell any) bool {
	for ; set != nil; set = set.parent {
		if set.cell == cell {
			return true
		}
	}
	return false
}

// attempts maps the id of each goroutine running a Shared producer to the
// cells that goroutine is evaluating. It lets a force that carries no
// marked context, such as [ForceDeep], still see the cells it sits inside.
var attempts sync.Map

// goid returns the id of the calling goroutine.
func goid() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}

// forcing returns the in-progress sets visible to the caller: the one
// carried by ctx and the one of the calling goroutine.
func forcing(ctx context.Context) (fromCtx, fromGoroutine *forcingSet) {
	fromCtx, _ = ctx.Value(forcingKey{}).(*forcingSet)
	if v, ok := attempts.Load(goid()); ok {
		fromGoroutine = v.(*forcingSet)
	}
	return fromCtx, fromGoroutine
}

// Force evaluates s, running its producer at most once per attempt.
//
// Waiting for another goroutine's attempt is abandoned when ctx is done,
// returning ctx.Err(). The attempt itself keeps running for the other
// waiters: the producer receives ctx's values but not its cancellation.
// A producer that forces its own cell, directly or through other Shared
// cells, gets [ErrCyclicForce] instead of deadlocking, whether it passes
// on the context it received or forces through [Forcer]. A producer panic
// is recovered and returned to every waiter as a [*PanicError].
func (s *Shared[A]) Force(ctx context.Context) (A, error) {
	if s.done.Load() {
		return s.value, nil
	}
	var zero A
	fromCtx, fromGoroutine := forcing(ctx)
	if fromCtx.contains(s) || fromGoroutine.contains(s) {
		return zero, ErrCyclicForce
	}
	parent := fromCtx
	if parent == nil {
		parent = fromGoroutine
	}
	set := &forcingSet{cell: s, parent: parent}
	pctx := context.WithValue(context.WithoutCancel(ctx), forcingKey{}, set)

	ch := s.group.DoChan("", func() (v any, err error) {
		if s.done.Load() {
			return s.value, nil
		}
		id := goid()
		attempts.Store(id, set)
		defer attempts.Delete(id)
		defer func() {
			if r := recover(); r != nil {
				v, err = nil, &PanicError{Value: r}
			}
		}()
		a, err := s.produce(pctx)
		if err != nil {
			return nil, err
		}
		s.value = a
		s.produce = nil
		s.done.Store(true)
		return a, nil
	})
	select {
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return cast[A](r.Val), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// ForceAny implements [Forcer] with a background context.
func (s *Shared[A]) ForceAny() (Erased, error) {
	return s.Force(context.Background())
}

// ForceAnyContext implements [ContextForcer].
func (s *Shared[A]) ForceAnyContext(ctx context.Context) (Erased, error) {
	return s.Force(ctx)
}

// IsForced reports whether s already holds a memoized value.
func (s *Shared[A]) IsForced() bool {
	return s.done.Load()
}

// Peek returns the memoized value without forcing.
func (s *Shared[A]) Peek() (A, bool) {
	if !s.done.Load() {
		var zero A
		return zero, false
	}
	return s.value, true
}
