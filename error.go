// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"errors"
	"fmt"
)

// Errors reported by the runtime itself.
// Producer errors are never wrapped: Force returns exactly the error the
// producer returned.
var (
	// ErrCyclicForce is returned when evaluating a suspension requires the
	// value of that same suspension, for example a producer that forces
	// its own cell or a Fix body that returns its argument unguarded.
	// It is fatal for that evaluation and never retried by the runtime.
	ErrCyclicForce = errors.New("lazy: cyclic force")

	// ErrNoResume is returned when a continuation-style computation
	// passed to FromCont returns without resuming its continuation.
	ErrNoResume = errors.New("lazy: continuation never resumed")
)

// PanicError carries a panic recovered from a [Shared] producer. It is also
// the failure that instrumentation records for a panicking producer.
// Shared delivers one outcome to every waiting goroutine, so a panic is
// converted to an error instead of crashing a goroutine that did not
// cause it.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("lazy: producer panicked: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
