// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"sync/atomic"
)

// affine is a one-shot continuation.
// It may be resumed at most once, and only while the computation that
// received it is still running.
type affine[A any] struct {
	used   atomic.Uintptr
	closed atomic.Bool
	resume func(A)
}

func once[A any](k func(A)) *affine[A] {
	return &affine[A]{resume: k}
}

// Resume invokes the continuation.
// Panics if it has already been resumed or its computation has returned.
func (a *affine[A]) Resume(v A) {
	if a.closed.Load() {
		panic("lazy: continuation resumed after return")
	}
	if a.used.Add(1) != 1 {
		panic("lazy: continuation resumed twice")
	}
	a.resume(v)
}

// resumed reports whether Resume has been called.
func (a *affine[A]) resumed() bool {
	return a.used.Load() != 0
}

// close forbids any further Resume.
func (a *affine[A]) close() {
	a.closed.Store(true)
}
