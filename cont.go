// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Continuation describes a multi-stage, possibly effectful, atomically
// committed update of a shared state value of type A.
//
// A continuation is a closed variant over three node types:
//
//   - [Terminal]: no further stages, just a final pure update
//   - [Stage]: a pending pure update plus an effectful step producing
//     the following node
//   - [Rollback]: discards every pending update accumulated so far in
//     its subtree, then continues with the inner continuation
//
// Continuation values are immutable; combinators construct new values.
// A continuation handed to [WriteUpdate] is consumed and must not be
// reused (wrap with [Once] to enforce this at runtime).
type Continuation[A any] interface {
	// cont is a phantom marker: the unused parameter pins the state
	// type so that nodes over different types are not interchangeable.
	cont(A)
}

// Step is an effectful stage transition. It receives the simulated
// view of the state (live value with all pending updates applied) and
// produces the following continuation node. A Step may block and
// perform arbitrary I/O; a non-nil error terminates the run without a
// commit.
type Step[A any] func(view A) (Continuation[A], error)

// Terminal is a continuation with no further stages.
// Update is the final composable pure update; nil means identity.
type Terminal[A any] struct {
	Update func(A) A
}

func (Terminal[A]) cont(A) {}

// Stage is one effectful step of a continuation.
// Prepare is the pending pure update contributed by this node (nil
// means identity); Next computes the following node from the simulated
// current value.
type Stage[A any] struct {
	Prepare func(A) A
	Next    Step[A]
}

func (Stage[A]) cont(A) {}

// Rollback discards all pending updates accumulated up to this point
// and continues with Inner under a fresh accumulator. Later stages of
// Inner may still contribute new updates.
//
// Rollback is deliberate in-band control flow, not an error signal.
type Rollback[A any] struct {
	Inner Continuation[A]
}

func (Rollback[A]) cont(A) {}

// Pure lifts a pure update function into a continuation.
func Pure[A any](f func(A) A) Continuation[A] {
	return Terminal[A]{Update: f}
}

// Const produces a continuation that replaces the state with a constant.
func Const[A any](v A) Continuation[A] {
	return Terminal[A]{Update: func(A) A { return v }}
}

// Done is the neutral continuation: no stages, identity update.
// It is the identity element of [Merge].
func Done[A any]() Continuation[A] {
	return Terminal[A]{}
}

// FromStep lifts an effectful step into a single-stage continuation
// with an identity pending update.
func FromStep[A any](f Step[A]) Continuation[A] {
	return Stage[A]{Next: f}
}

// FromEffect runs an effectful action that computes an update function.
// The action ignores the current value; its result becomes the terminal
// update.
func FromEffect[A any](action func() (func(A) A, error)) Continuation[A] {
	return Stage[A]{Next: func(A) (Continuation[A], error) {
		f, err := action()
		if err != nil {
			return nil, err
		}
		return Terminal[A]{Update: f}, nil
	}}
}

// SideEffect runs an effectful action purely for its side effects and
// contributes no state update.
func SideEffect[A any](action func() error) Continuation[A] {
	return Stage[A]{Next: func(A) (Continuation[A], error) {
		if err := action(); err != nil {
			return nil, err
		}
		return Done[A](), nil
	}}
}

// identity is the identity update. Named generic function produces a
// static function value per type instantiation, avoiding the heap
// allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// applyUpdate applies an update function, treating nil as identity.
func applyUpdate[A any](f func(A) A, x A) A {
	if f == nil {
		return x
	}
	return f(x)
}

// composeUpdates composes two update functions left to right:
// the result applies f first, then g. A nil function is identity and
// composition with it is free of allocation.
func composeUpdates[A any](f, g func(A) A) func(A) A {
	if f == nil {
		return g
	}
	if g == nil {
		return f
	}
	return func(x A) A { return g(f(x)) }
}

// unknownNode panics with a descriptive message for nodes outside the
// closed variant. Extracted as a noinline function so that dispatch
// sites remain inlineable.
//
//go:noinline
func unknownNode(where string) {
	panic("kommit: unknown continuation node in " + where)
}
