// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Option represents a value that is either present (Some) or absent
// (None).
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool { return o.present }

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool { return !o.present }

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) { return o.value, o.present }

// GetOr returns the value if present, otherwise d.
func (o Option[A]) GetOr(d A) A {
	if o.present {
		return o.value
	}
	return d
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// OverOption lifts a continuation over A to one over Option[A].
//
// While the observed value stays present, stages proceed with update
// functions wrapped to act only on the payload (absent values pass
// through untouched). The moment a stage observes an absent value the
// continuation cancels: outstanding pending updates are discarded via
// Rollback and no further stages run.
func OverOption[A any](c Continuation[A]) Continuation[Option[A]] {
	switch n := c.(type) {
	case Terminal[A]:
		return Terminal[Option[A]]{Update: overOptionUpdate(n.Update)}
	case Rollback[A]:
		return Rollback[Option[A]]{Inner: OverOption(n.Inner)}
	case Stage[A]:
		return Stage[Option[A]]{
			Prepare: overOptionUpdate(n.Prepare),
			Next: func(view Option[A]) (Continuation[Option[A]], error) {
				a, ok := view.Get()
				if !ok {
					return Rollback[Option[A]]{Inner: Done[Option[A]]()}, nil
				}
				next, err := n.Next(a)
				if err != nil {
					return nil, err
				}
				return OverOption(next), nil
			},
		}
	default:
		unknownNode("OverOption")
		return nil
	}
}

// overOptionUpdate lifts an update to act on the payload of a present
// value and leave absent values unchanged. Nil stays nil.
func overOptionUpdate[A any](f func(A) A) func(Option[A]) Option[A] {
	if f == nil {
		return nil
	}
	return func(o Option[A]) Option[A] {
		if a, ok := o.Get(); ok {
			return Some(f(a))
		}
		return o
	}
}

// KeepOnNone maps a continuation over Option[A] down to one over A,
// treating an absent result as a per-stage no-op rather than a
// cancellation: whenever an update would produce an absent value the
// current value is kept unchanged instead of cleared. Only that
// update is neutralized; later stages still run.
func KeepOnNone[A any](c Continuation[Option[A]]) Continuation[A] {
	switch n := c.(type) {
	case Terminal[Option[A]]:
		return Terminal[A]{Update: keepOnNoneUpdate(n.Update)}
	case Rollback[Option[A]]:
		return Rollback[A]{Inner: KeepOnNone(n.Inner)}
	case Stage[Option[A]]:
		return Stage[A]{
			Prepare: keepOnNoneUpdate(n.Prepare),
			Next: func(view A) (Continuation[A], error) {
				next, err := n.Next(Some(view))
				if err != nil {
					return nil, err
				}
				return KeepOnNone(next), nil
			},
		}
	default:
		unknownNode("KeepOnNone")
		return nil
	}
}

// keepOnNoneUpdate lowers an Option update to a plain update that
// falls back to the input when the result is absent. Nil stays nil.
func keepOnNoneUpdate[A any](f func(Option[A]) Option[A]) func(A) A {
	if f == nil {
		return nil
	}
	return func(a A) A {
		return f(Some(a)).GetOr(a)
	}
}
