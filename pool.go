// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "sync"

// Work stacks for the forcing engine.
// Each top-level force acquires one stack, pushes every node it enters,
// and returns the stack on exit. Nodes still on the stack at exit belong
// to a failed evaluation and are rolled back to pending.

// maxPooledStack bounds the capacity kept in the pool so one very deep
// evaluation does not pin a large backing array forever.
const maxPooledStack = 1 << 12

type work struct {
	stack []*node
}

var workPool = sync.Pool{New: func() any { return &work{stack: make([]*node, 0, 16)} }}

func acquireWork() *work {
	return workPool.Get().(*work)
}

func (w *work) push(n *node) {
	w.stack = append(w.stack, n)
}

// top returns the innermost node waiting for a value, or nil.
func (w *work) top() *node {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

func (w *work) pop() {
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]
}

// release rolls back the remaining nodes and returns w to the pool.
// Memoized links and untouched producers survive, so a retry resumes
// from the first computation that has not yet succeeded.
func (w *work) release() {
	for i, n := range w.stack {
		n.state = pending
		w.stack[i] = nil
	}
	w.stack = w.stack[:0]
	if cap(w.stack) > maxPooledStack {
		return
	}
	workPool.Put(w)
}
