// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Step is one move of a trampolined computation: either Done with a
// final result, or Continue with the arguments of the next step.
// S is the step-argument type and A the result type.
type Step[S, A any] struct {
	done   bool
	next   S
	result A
}

// Done ends a trampolined computation with result a.
// S is usually given explicitly: Done[S](a).
func Done[S, A any](a A) Step[S, A] {
	return Step[S, A]{done: true, result: a}
}

// Continue schedules another step with arguments s.
// A is usually given explicitly: Continue[A](s).
func Continue[A, S any](s S) Step[S, A] {
	return Step[S, A]{next: s}
}

// IsDone reports whether s is terminal.
func (s Step[S, A]) IsDone() bool { return s.done }

// Result returns the final result and true, or zero and false.
func (s Step[S, A]) Result() (A, bool) {
	if s.done {
		return s.result, true
	}
	var zero A
	return zero, false
}

// Next returns the next arguments and true, or zero and false.
func (s Step[S, A]) Next() (S, bool) {
	if !s.done {
		return s.next, true
	}
	var zero S
	return zero, false
}
