// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "context"

// force is the iterative evaluator for node graphs.
//
// It walks links and dependencies with an explicit work stack instead of
// native recursion, so neither the length of a chained deferral nor the
// nesting depth of Map/Bind grows the goroutine stack.
//
// Every node entered is marked inProgress and pushed. Reaching a node that
// is already inProgress means its value depends on itself, which is
// reported as ErrCyclicForce. On any error or panic the deferred release
// rolls the pushed nodes back to pending.
func force(root *node) (Erased, error) {
	w := acquireWork()
	defer w.release()

	cur := root
	for {
		var v Erased
		switch cur.state {
		case forced:
			v = cur.value
		case inProgress:
			return nil, ErrCyclicForce
		default:
			cur.state = inProgress
			w.push(cur)
			if cur.link != nil {
				cur = cur.link
				continue
			}
			if cur.dep != nil {
				cur = cur.dep
				continue
			}
			if cur.produce == nil {
				panic("lazy: force of uninitialized cell")
			}
			val, next, err := cur.produce()
			if err != nil {
				return nil, err
			}
			cur.produce = nil
			if next != nil {
				cur.link = next
				cur = next
				continue
			}
			cur.resolve(val)
			w.pop()
			v = val
		}

		// Deliver v to the nodes waiting on it, innermost first.
		next, result, done, err := deliver(w, v)
		if err != nil {
			return nil, err
		}
		if done {
			return result, nil
		}
		cur = next
	}
}

// deliver propagates a forced value up the work stack.
// Nodes waiting on a link take the value as their own. Nodes waiting on a
// dependency apply their continuation; if it returns another node, deliver
// stops and hands that node back to the evaluator.
func deliver(w *work, v Erased) (next *node, result Erased, done bool, err error) {
	for {
		top := w.top()
		if top == nil {
			return nil, v, true, nil
		}
		if top.cont == nil {
			top.resolve(v)
			w.pop()
			continue
		}
		val, n, err := top.cont(v)
		if err != nil {
			return nil, nil, false, err
		}
		top.dep = nil
		top.cont = nil
		if n != nil {
			top.link = n
			return n, nil, false, nil
		}
		top.resolve(val)
		w.pop()
		v = val
	}
}

// Forcer is implemented by values that can be evaluated to
// weak-head-normal form without knowing their element type.
type Forcer interface {
	ForceAny() (Erased, error)
}

// ContextForcer is a [Forcer] whose evaluation can block, such as a
// [Shared] cell. ForceDeepContext hands such values its context so
// cancellation and the set of cells in progress reach nested forces.
type ContextForcer interface {
	Forcer
	ForceAnyContext(ctx context.Context) (Erased, error)
}

// ForceDeep collapses an arbitrarily nested chain of suspensions.
// While x implements [Forcer] it is forced one layer at a time in a loop;
// the first value that is not a Forcer is returned.
//
// ForceDeep is idempotent: ForceDeep of a ForceDeep result returns it
// unchanged. Structures such as stream nodes are not Forcers and stay in
// weak-head-normal form.
func ForceDeep(x Erased) (Erased, error) {
	return ForceDeepContext(context.Background(), x)
}

// ForceDeepContext is [ForceDeep] with ctx passed to every layer that
// implements [ContextForcer].
func ForceDeepContext(ctx context.Context, x Erased) (Erased, error) {
	for {
		var (
			v   Erased
			err error
		)
		switch f := x.(type) {
		case ContextForcer:
			v, err = f.ForceAnyContext(ctx)
		case Forcer:
			v, err = f.ForceAny()
		default:
			return x, nil
		}
		if err != nil {
			return nil, err
		}
		x = v
	}
}
