// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kommit provides atomic, multi-stage state updates against a
// shared mutable cell.
//
// A [Continuation] describes a sequence of stages; each stage may
// perform effectful (I/O-capable) work and contributes a pure update
// function. The execution engine runs all intermediate effects outside
// any lock and applies the net effect as a single atomic commit, so no
// concurrent reader ever observes a half-applied update.
//
// # Continuation Algebra
//
// A continuation is a closed variant over three node types:
//
//   - [Terminal]: no further stages, just a final pure update
//   - [Stage]: a pending pure update plus an effectful [Step] that
//     produces the following node from the simulated current value
//   - [Rollback]: discards pending updates accumulated so far, then
//     continues with its inner continuation
//
// Constructors:
//
//   - [Pure]: lift a pure update function
//   - [Const]: replace the state with a constant
//   - [Done]: the neutral continuation (identity element of [Merge])
//   - [FromStep]: lift an effectful step
//   - [FromEffect]: run an action that computes an update function
//   - [SideEffect]: run an action for its effects only
//
// The pending update carried at any point of a run is the left-to-right
// composition of every prepare/update encountered since the last
// Rollback (or since the start). A nil update function means identity.
//
// # Merge
//
// [Merge] runs two continuations "in parallel": each merged step
// advances both sides with the same simulated view and composes their
// pending updates left to right (the right side's update applies after
// the left's). [Done] is Merge's identity on both sides, and Merge is
// associative on rollback-free continuations. [MergeAll] folds any
// number of continuations.
//
// A Rollback on either side wraps the merged node in a Rollback that
// discards the pending update the merge accumulated so far, while the
// rolled-back side's inner continuation keeps stepping inside the
// wrapper and may contribute new updates later.
//
// # Simulation
//
// [Simulate] replays a continuation against a frozen snapshot and
// returns the single composed update function, without touching any
// cell. It is a deterministic replay used to reason about an update's
// effect without committing it.
//
// # Execution Engine
//
// [Cell] is the shared container: atomic read, atomic
// read-modify-write, and blocking wait-for-change by equality.
// [MemCell] is the in-process reference implementation.
//
//   - [WriteUpdate]: run a continuation against a live cell.
//     Purely terminal continuations commit synchronously inline;
//     effectful continuations are driven by their own goroutine and
//     the call returns immediately. Exactly one atomic commit occurs
//     per Terminal reached. A step error stops the task with no
//     commit.
//   - [Watch]: fold a reactor over the distinct-value stream of a
//     cell, forever. The reactor always wakes on change and always
//     sees the latest value; intermediate values between wake-ups may
//     be skipped.
//
// The simulated view driving stage decisions is re-derived from the
// live cell before every step, so decisions observe concurrent
// external changes; the continuation's own pending update materializes
// only at its final commit. Racing continuations compose atomically in
// an unspecified order (last-writer-composition, not serializability).
//
// # Staged Computations
//
// [Staged] pairs an effectful result with a pending continuation,
// enabling sequential composition of continuation-producing steps:
//
//   - [StagedValue]: lift a plain value
//   - [Commit]: lift a bare continuation with unit result
//   - [StagedEffect]: lift an effectful action
//   - [BindStaged], [MapStaged], [ThenStaged]: sequencing; pendings
//     merge positionally via [Merge]
//   - [EmbedStaged]: embed a whole staged block as one stage of an
//     outer continuation
//
// # Shape-Change Combinators
//
//   - [OverOption]: run over Option[A]; an absent value observed at a
//     stage boundary cancels outstanding updates and stops
//   - [KeepOnNone]: inverse direction; an absent stage result keeps
//     the current value instead of clearing it
//   - [FocusFirst] / [FocusSecond]: re-target onto one coordinate of a
//     [Pair]
//   - [OnEither]: run one of two continuations on a tagged union,
//     selected by the first observed value; a later tag switch
//     self-cancels
//   - [MapIso]: transport a continuation through a value-level
//     bijection
//
// [Carrier] is the F-bounded interface for structures containing
// continuations; its one operation maps a continuation transformation
// over the structure. [Staged] implements it.
//
// # One-Shot Enforcement
//
// Continuations are single-use once handed to the engine. [Once] wraps
// a continuation in an [Affine] handle whose Take panics on reuse;
// TryTake and Discard are the non-panicking variants.
//
// # Error Handling
//
// No dedicated error type exists. Failures from caller-supplied steps
// propagate as plain Go errors: [Simulate] and [Staged] return them;
// the fire-and-forget engine task terminates without its commit,
// leaving the cell exactly as it was. [Rollback] is in-band control
// flow, not an error signal.
//
// # Example
//
//	cell := kommit.NewMemCell(0)
//	inc := kommit.Pure(func(x int) int { return x + 1 })
//	dbl := kommit.Pure(func(x int) int { return x * 2 })
//	kommit.WriteUpdate(cell, kommit.Merge(inc, dbl))
//	// cell now holds 2: the right update applies after the left.
package kommit
