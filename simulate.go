// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Simulate replays a continuation against a frozen state snapshot and
// returns the single composed update function, without touching any
// shared cell. Effectful steps do run (synchronously, in order), but
// every step observes the same original state with the pending updates
// accumulated so far applied on top.
//
// The loop is iterative: stack depth does not grow with the number of
// stages. Rollback resets the accumulator to identity; Terminal
// returns the accumulator followed by the terminal update.
//
// An error from any step aborts the replay; no update function is
// returned.
func Simulate[A any](c Continuation[A], state A) (func(A) A, error) {
	var acc func(A) A
	for {
		switch n := c.(type) {
		case Terminal[A]:
			if f := composeUpdates(acc, n.Update); f != nil {
				return f, nil
			}
			return identity[A], nil
		case Rollback[A]:
			acc = nil
			c = n.Inner
		case Stage[A]:
			acc = composeUpdates(acc, n.Prepare)
			next, err := n.Next(applyUpdate(acc, state))
			if err != nil {
				return nil, err
			}
			c = next
		default:
			unknownNode("Simulate")
		}
	}
}
