// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Either represents a value that is either Left (of type L) or Right
// (of type R). It serves as the tagged union of two alternative state
// representations for [OnEither].
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// FocusFirst re-targets a continuation over A onto the first
// coordinate of a pair, leaving the second coordinate untouched.
func FocusFirst[A, B any](c Continuation[A]) Continuation[Pair[A, B]] {
	switch n := c.(type) {
	case Terminal[A]:
		return Terminal[Pair[A, B]]{Update: firstUpdate[A, B](n.Update)}
	case Rollback[A]:
		return Rollback[Pair[A, B]]{Inner: FocusFirst[A, B](n.Inner)}
	case Stage[A]:
		return Stage[Pair[A, B]]{
			Prepare: firstUpdate[A, B](n.Prepare),
			Next: func(view Pair[A, B]) (Continuation[Pair[A, B]], error) {
				next, err := n.Next(view.Fst)
				if err != nil {
					return nil, err
				}
				return FocusFirst[A, B](next), nil
			},
		}
	default:
		unknownNode("FocusFirst")
		return nil
	}
}

// FocusSecond re-targets a continuation over B onto the second
// coordinate of a pair, leaving the first coordinate untouched.
func FocusSecond[A, B any](c Continuation[B]) Continuation[Pair[A, B]] {
	switch n := c.(type) {
	case Terminal[B]:
		return Terminal[Pair[A, B]]{Update: secondUpdate[A](n.Update)}
	case Rollback[B]:
		return Rollback[Pair[A, B]]{Inner: FocusSecond[A](n.Inner)}
	case Stage[B]:
		return Stage[Pair[A, B]]{
			Prepare: secondUpdate[A](n.Prepare),
			Next: func(view Pair[A, B]) (Continuation[Pair[A, B]], error) {
				next, err := n.Next(view.Snd)
				if err != nil {
					return nil, err
				}
				return FocusSecond[A](next), nil
			},
		}
	default:
		unknownNode("FocusSecond")
		return nil
	}
}

func firstUpdate[A, B any](f func(A) A) func(Pair[A, B]) Pair[A, B] {
	if f == nil {
		return nil
	}
	return func(p Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{Fst: f(p.Fst), Snd: p.Snd}
	}
}

func secondUpdate[A, B any](f func(B) B) func(Pair[A, B]) Pair[A, B] {
	if f == nil {
		return nil
	}
	return func(p Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{Fst: p.Fst, Snd: f(p.Snd)}
	}
}

// OnEither combines two continuations over different state types into
// one operating on their tagged union. The branch is selected by the
// first value observed. If a later stage observes a value whose tag
// differs from the selected branch, the continuation cancels for the
// remainder: outstanding pending updates are rolled back and no
// further net effect is produced. Terminal updates are tag-guarded as
// well, so a commit racing with a branch switch leaves the other
// branch's value untouched.
func OnEither[L, R any](cl Continuation[L], cr Continuation[R]) Continuation[Either[L, R]] {
	return Stage[Either[L, R]]{Next: func(view Either[L, R]) (Continuation[Either[L, R]], error) {
		if view.IsLeft() {
			return branchCont(cl, Either[L, R].GetLeft, Left[L, R]), nil
		}
		return branchCont(cr, Either[L, R].GetRight, Right[L, R]), nil
	}}
}

// branchCont lifts a continuation over one branch payload X to the
// union type. get projects the payload when the union holds the
// selected branch; put injects an updated payload back. A stage that
// observes the other tag cancels with Rollback([Done]).
func branchCont[L, R, X any](
	c Continuation[X],
	get func(Either[L, R]) (X, bool),
	put func(X) Either[L, R],
) Continuation[Either[L, R]] {
	switch n := c.(type) {
	case Terminal[X]:
		return Terminal[Either[L, R]]{Update: branchUpdate(n.Update, get, put)}
	case Rollback[X]:
		return Rollback[Either[L, R]]{Inner: branchCont(n.Inner, get, put)}
	case Stage[X]:
		return Stage[Either[L, R]]{
			Prepare: branchUpdate(n.Prepare, get, put),
			Next: func(view Either[L, R]) (Continuation[Either[L, R]], error) {
				x, ok := get(view)
				if !ok {
					return Rollback[Either[L, R]]{Inner: Done[Either[L, R]]()}, nil
				}
				next, err := n.Next(x)
				if err != nil {
					return nil, err
				}
				return branchCont(next, get, put), nil
			},
		}
	default:
		unknownNode("OnEither")
		return nil
	}
}

// branchUpdate lifts an update to act only while the union holds the
// selected branch; on the other tag it is identity. Nil stays nil.
func branchUpdate[L, R, X any](
	f func(X) X,
	get func(Either[L, R]) (X, bool),
	put func(X) Either[L, R],
) func(Either[L, R]) Either[L, R] {
	if f == nil {
		return nil
	}
	return func(e Either[L, R]) Either[L, R] {
		if x, ok := get(e); ok {
			return put(f(x))
		}
		return e
	}
}
