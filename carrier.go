// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit

// Carrier is the F-bounded interface for structures that contain
// continuations over a state type S. The self-referencing constraint
// C Carrier[C, S] gives the compiler knowledge of the concrete carrier
// type at compile time, so MapCont returns the carrier's own type
// rather than an erased interface.
//
// Implement Carrier only for structures that genuinely contain
// continuations; [Staged] is the canonical implementation in this
// package.
type Carrier[C Carrier[C, S], S any] interface {
	// MapCont maps a continuation transformation over every
	// continuation the structure contains.
	MapCont(f func(Continuation[S]) Continuation[S]) C
}

// MapCarrier applies a continuation transformation through any
// carrier. Free-function form of [Carrier.MapCont] for call sites that
// already name the concrete carrier type.
func MapCarrier[C Carrier[C, S], S any](c C, f func(Continuation[S]) Continuation[S]) C {
	return c.MapCont(f)
}
