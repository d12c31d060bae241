// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"testing"

	"code.hybscloud.com/lazy"
)

// BenchmarkForceForced measures the memoized fast path.
func BenchmarkForceForced(b *testing.B) {
	l := lazy.Delay(func() int { return 1 })
	l.MustForce()
	for b.Loop() {
		_, _ = l.Force()
	}
}

// BenchmarkForcePending measures construction plus first force.
func BenchmarkForcePending(b *testing.B) {
	for b.Loop() {
		l := lazy.Delay(func() int { return 1 })
		_, _ = l.Force()
	}
}

// BenchmarkMapChain measures forcing a chain of 10 Map layers.
func BenchmarkMapChain(b *testing.B) {
	inc := func(x int) int { return x + 1 }
	for b.Loop() {
		l := lazy.Delay(func() int { return 0 })
		for range 10 {
			l = lazy.Map(l, inc)
		}
		_, _ = l.Force()
	}
}

// BenchmarkSuspendChain measures collapsing a chained deferral of depth 10.
func BenchmarkSuspendChain(b *testing.B) {
	for b.Loop() {
		l := lazy.Pure(0)
		for range 10 {
			next := l
			l = lazy.Suspend(func() (*lazy.Lazy[int], error) { return next, nil })
		}
		_, _ = l.Force()
	}
}

// BenchmarkTrampoline measures 1000 trampolined steps.
func BenchmarkTrampoline(b *testing.B) {
	step := func(i int) lazy.Step[int, int] {
		if i == 1000 {
			return lazy.Done[int](i)
		}
		return lazy.Continue[int](i + 1)
	}
	for b.Loop() {
		_ = lazy.Trampoline(step, 0)
	}
}

// BenchmarkTakeUnfold measures taking 100 values from an infinite stream.
func BenchmarkTakeUnfold(b *testing.B) {
	next := func(n int) (int, int, bool) { return n, n + 1, true }
	for b.Loop() {
		_, _ = lazy.Take(100, lazy.Unfold(0, next))
	}
}
