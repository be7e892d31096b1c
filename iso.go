// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// MapIso re-expresses a continuation over A as a continuation over B,
// given a bijection to/from between the two representations. Every
// pending and terminal update is conjugated through the bijection and
// every stage observes the A-side view of the live B value. The
// transport is lazy: stages are rewritten as they are reached, not up
// front.
func MapIso[A, B any](to func(A) B, from func(B) A, c Continuation[A]) Continuation[B] {
	switch n := c.(type) {
	case Terminal[A]:
		return Terminal[B]{Update: isoUpdate(to, from, n.Update)}
	case Rollback[A]:
		return Rollback[B]{Inner: MapIso(to, from, n.Inner)}
	case Stage[A]:
		return Stage[B]{
			Prepare: isoUpdate(to, from, n.Prepare),
			Next: func(view B) (Continuation[B], error) {
				next, err := n.Next(from(view))
				if err != nil {
					return nil, err
				}
				return MapIso(to, from, next), nil
			},
		}
	default:
		unknownNode("MapIso")
		return nil
	}
}

// isoUpdate conjugates an update function through a bijection:
// the result applies from, then f, then to. Nil stays nil so identity
// updates remain allocation-free.
func isoUpdate[A, B any](to func(A) B, from func(B) A, f func(A) A) func(B) B {
	if f == nil {
		return nil
	}
	return func(b B) B { return to(f(from(b))) }
}
