// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Merge combines two continuations so that both progress together.
//
// [Done] is Merge's identity element on both sides. When both
// sides are stages, one merged step advances both sides with the same
// simulated view and composes their pending updates left to right
// (the right side's update applies after the left's). A Terminal side
// stops contributing stages and is folded into the other side
// immediately. A Rollback on either side propagates as a wrapping
// Rollback on the merged node, discarding whatever the merge had
// accumulated up to that point, while the rolled-back side's inner
// continuation keeps stepping inside the wrapper and may contribute
// new updates later.
//
// The nine node-pair cases are dispatched explicitly; Rollback's reset
// semantics differ from Stage's and must not be collapsed into it.
func Merge[A any](l, r Continuation[A]) Continuation[A] {
	switch lc := l.(type) {
	case Terminal[A]:
		switch rc := r.(type) {
		case Terminal[A]:
			return Terminal[A]{Update: composeUpdates(lc.Update, rc.Update)}
		case Stage[A]:
			return Stage[A]{Prepare: composeUpdates(lc.Update, rc.Prepare), Next: rc.Next}
		case Rollback[A]:
			return Stage[A]{Prepare: lc.Update, Next: func(A) (Continuation[A], error) {
				return rc, nil
			}}
		}
	case Stage[A]:
		switch rc := r.(type) {
		case Terminal[A]:
			return Stage[A]{Prepare: composeUpdates(lc.Prepare, rc.Update), Next: lc.Next}
		case Stage[A]:
			return Stage[A]{
				Prepare: composeUpdates(lc.Prepare, rc.Prepare),
				Next: func(x A) (Continuation[A], error) {
					ln, err := lc.Next(x)
					if err != nil {
						return nil, err
					}
					rn, err := rc.Next(x)
					if err != nil {
						return nil, err
					}
					return Merge(ln, rn), nil
				},
			}
		case Rollback[A]:
			return Rollback[A]{Inner: Stage[A]{
				Prepare: lc.Prepare,
				Next: func(x A) (Continuation[A], error) {
					ln, err := lc.Next(x)
					if err != nil {
						return nil, err
					}
					return Merge(ln, rc.Inner), nil
				},
			}}
		}
	case Rollback[A]:
		switch rc := r.(type) {
		case Terminal[A]:
			return lc
		case Stage[A]:
			return Rollback[A]{Inner: Stage[A]{
				Next: func(x A) (Continuation[A], error) {
					rn, err := rc.Next(x)
					if err != nil {
						return nil, err
					}
					return Merge(lc.Inner, rn), nil
				},
			}}
		case Rollback[A]:
			return Rollback[A]{Inner: Merge(lc.Inner, rc.Inner)}
		}
	}
	unknownNode("Merge")
	return nil
}

// MergeAll folds any number of continuations with [Merge].
// MergeAll() is [Done].
func MergeAll[A any](cs ...Continuation[A]) Continuation[A] {
	out := Done[A]()
	for _, c := range cs {
		out = Merge(out, c)
	}
	return out
}
