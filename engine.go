// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Execution engine: drives continuations against a live shared cell.
//
// Effectful steps run outside any lock; the net effect of a
// continuation is applied as exactly one atomic commit per Terminal
// reached. Two continuations racing on one cell may each commit from a
// view that is stale relative to the other: each commit is atomic and
// never torn, but ordering across independent continuations is
// unspecified (last-writer-composition, not serializability).

// WriteUpdate runs a continuation against a live cell.
//
// A purely Terminal continuation commits synchronously inline and
// WriteUpdate returns after the commit. An effectful continuation is
// driven by its own goroutine and WriteUpdate returns immediately.
// The spawned loop re-samples the live value before every step, so a
// continuation's decisions observe concurrent external changes, while
// its own pending update materializes only at the final commit.
//
// If a step returns an error the goroutine stops without committing;
// the cell is left exactly as the task found it. There is no external
// cancellation handle; callers that need one must arrange it inside
// their step closures.
func WriteUpdate[A any](cell Cell[A], c Continuation[A]) {
	// Nothing has executed yet, so a leading Rollback discards nothing.
	for {
		r, ok := c.(Rollback[A])
		if !ok {
			break
		}
		c = r.Inner
	}
	switch n := c.(type) {
	case Terminal[A]:
		if n.Update != nil {
			cell.Update(n.Update)
		}
	case Stage[A]:
		go driveStages(cell, Continuation[A](n))
	default:
		unknownNode("WriteUpdate")
	}
}

// driveStages is the per-continuation task loop. It carries the
// pending update accumulator across stages, resetting it at Rollback
// nodes, and performs the single atomic commit when a Terminal is
// reached.
func driveStages[A any](cell Cell[A], c Continuation[A]) {
	var acc func(A) A
	for {
		switch n := c.(type) {
		case Terminal[A]:
			if f := composeUpdates(acc, n.Update); f != nil {
				cell.Update(f)
			}
			return
		case Rollback[A]:
			acc = nil
			c = n.Inner
		case Stage[A]:
			acc = composeUpdates(acc, n.Prepare)
			next, err := n.Next(applyUpdate(acc, cell.Load()))
			if err != nil {
				return
			}
			c = next
		default:
			unknownNode("WriteUpdate")
		}
	}
}

// Watch folds a reactor over the distinct-value stream of a cell.
//
// The shadow copy of the last observed value is seeded from the live
// value before Watch returns; the fold loop then runs forever on its
// own goroutine. On every wake the reactor receives the accumulator
// and the latest live value and returns the next accumulator. If
// several writes land between two wake-ups the intermediate values are
// skipped: the reactor always sees the latest value, distinct from
// the previous one it saw, but not necessarily every write.
func Watch[A, S any](cell Cell[A], initial S, reactor func(acc S, v A) S) {
	shadow := cell.Load()
	go func() {
		acc := initial
		for {
			shadow = cell.Wait(shadow)
			acc = reactor(acc, shadow)
		}
	}()
}
