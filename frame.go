// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Erased represents a type-erased value inside the forcing engine.
// Cells of different element types link to each other through [Map] and
// [Bind], so the engine walks them as untyped nodes. Concrete types are
// recovered via type assertions at the [Lazy] boundary.
type Erased = any

// state is the evaluation state of a node.
type state uint8

const (
	pending state = iota
	inProgress
	forced
)

// producer runs a suspended computation.
// It returns either a plain value, or a non-nil next node whose value
// becomes the result (chained deferral).
type producer func() (Erased, *node, error)

// continuation receives the forced value of a dependency and returns
// either a plain value or the next node to force.
type continuation func(Erased) (Erased, *node, error)

// node is the type-erased suspension cell behind [Lazy].
//
// A pending node carries exactly one of:
//   - produce: a computation that has not run yet
//   - link: the memoized outcome of a producer that returned another node
//   - dep and cont: a deferred application waiting on dep's value
//
// A forced node carries only value. All other fields are cleared so the
// captured closures can be collected.
type node struct {
	state   state
	value   Erased
	produce producer
	link    *node
	dep     *node
	cont    continuation
}

// resolve memoizes v and discards everything the node needed to compute it.
func (n *node) resolve(v Erased) {
	n.state = forced
	n.value = v
	n.produce = nil
	n.link = nil
	n.dep = nil
	n.cont = nil
}

// cast recovers a concrete value from the engine.
// A nil Erased converts to the zero A, which keeps interface element
// types (for example Lazy[error]) from panicking on assertion.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
