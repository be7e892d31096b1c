// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Staged is a monadic shell over an effectful computation that yields
// a result value of type A together with a pending continuation over
// the state type S. Sequencing threads results and merges the pending
// continuations positionally with [Merge], so a whole block of staged
// steps accumulates one continuation describing its net state effect.
type Staged[S, A any] func() (A, Continuation[S], error)

// StagedValue lifts a plain value; the pending continuation is [Done].
func StagedValue[S, A any](a A) Staged[S, A] {
	return func() (A, Continuation[S], error) {
		return a, Done[S](), nil
	}
}

// Commit lifts a bare continuation with a unit result.
func Commit[S any](c Continuation[S]) Staged[S, struct{}] {
	return func() (struct{}, Continuation[S], error) {
		return struct{}{}, c, nil
	}
}

// StagedEffect lifts an effectful action with no pending continuation.
func StagedEffect[S, A any](action func() (A, error)) Staged[S, A] {
	return func() (A, Continuation[S], error) {
		a, err := action()
		if err != nil {
			var zero A
			return zero, nil, err
		}
		return a, Done[S](), nil
	}
}

// BindStaged sequences two staged computations: m runs first, its
// result feeds f, and the two pending continuations are merged in that
// order. An error from either side short-circuits and discards both
// pendings.
func BindStaged[S, A, B any](m Staged[S, A], f func(A) Staged[S, B]) Staged[S, B] {
	return func() (B, Continuation[S], error) {
		a, c1, err := m()
		if err != nil {
			var zero B
			return zero, nil, err
		}
		b, c2, err := f(a)()
		if err != nil {
			var zero B
			return zero, nil, err
		}
		return b, Merge(c1, c2), nil
	}
}

// MapStaged applies a pure function to the result of a staged
// computation, leaving the pending continuation untouched.
//
// Allocation note: equivalent to BindStaged(m, compose(StagedValue, f))
// without the intermediate lift or Merge against [Done].
func MapStaged[S, A, B any](m Staged[S, A], f func(A) B) Staged[S, B] {
	return func() (B, Continuation[S], error) {
		a, c, err := m()
		if err != nil {
			var zero B
			return zero, nil, err
		}
		return f(a), c, nil
	}
}

// ThenStaged sequences two staged computations, discarding the first
// result and merging the pending continuations.
func ThenStaged[S, A, B any](m Staged[S, A], n Staged[S, B]) Staged[S, B] {
	return func() (B, Continuation[S], error) {
		_, c1, err := m()
		if err != nil {
			var zero B
			return zero, nil, err
		}
		b, c2, err := n()
		if err != nil {
			var zero B
			return zero, nil, err
		}
		return b, Merge(c1, c2), nil
	}
}

// EmbedStaged converts a whole staged computation into a plain
// continuation: a single stage that runs the computation, discards its
// result value, and continues with the pending continuation it
// produced. This embeds an entire sequenced block as one stage inside
// an outer continuation.
func EmbedStaged[S, A any](m Staged[S, A]) Continuation[S] {
	return Stage[S]{Next: func(S) (Continuation[S], error) {
		_, c, err := m()
		if err != nil {
			return nil, err
		}
		return c, nil
	}}
}

// MapCont applies a continuation transformation to the pending
// continuation of a staged computation. Staged thereby implements
// [Carrier] for itself.
func (m Staged[S, A]) MapCont(f func(Continuation[S]) Continuation[S]) Staged[S, A] {
	return func() (A, Continuation[S], error) {
		a, c, err := m()
		if err != nil {
			var zero A
			return zero, nil, err
		}
		return a, f(c), nil
	}
}
