// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Trampoline runs step from init until it returns Done.
//
// Each Continue replaces the arguments and loops; the goroutine stack
// stays constant however many steps run. This is the execution strategy
// for any algorithm whose recursive formulation would need one frame per
// logical step, such as folding a long stream.
//
// A step function that never returns Done runs forever. Termination is
// the caller's responsibility and is not detected.
func Trampoline[S, A any](step func(S) Step[S, A], init S) A {
	s := init
	for {
		r := step(s)
		if r.done {
			return r.result
		}
		s = r.next
	}
}

// TrampolineErr is Trampoline for fallible steps.
// It stops at the first error and returns it with the zero result.
func TrampolineErr[S, A any](step func(S) (Step[S, A], error), init S) (A, error) {
	s := init
	for {
		r, err := step(s)
		if err != nil {
			var zero A
			return zero, err
		}
		if r.done {
			return r.result, nil
		}
		s = r.next
	}
}
