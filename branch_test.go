// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kommit_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/kommit"
)

func TestEitherAccessors(t *testing.T) {
	l := kommit.Left[int, string](3)
	if !l.IsLeft() || l.IsRight() {
		t.Fatal("Left misclassified")
	}
	if v, ok := l.GetLeft(); !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := l.GetRight(); ok {
		t.Fatal("GetRight on Left succeeded")
	}
	r := kommit.Right[int]("hi")
	if r.IsLeft() || !r.IsRight() {
		t.Fatal("Right misclassified")
	}
	if v, ok := r.GetRight(); !ok || v != "hi" {
		t.Fatalf("got (%q, %v), want (hi, true)", v, ok)
	}
}

func TestMatchEither(t *testing.T) {
	got := kommit.MatchEither(kommit.Left[int, string](2),
		func(l int) string { return "left" },
		func(r string) string { return "right" })
	if got != "left" {
		t.Fatalf("got %q, want left", got)
	}
}

func TestFocusFirst(t *testing.T) {
	c := kommit.FocusFirst[int, string](kommit.Pure(inc))
	got := sim(t, c, kommit.Pair[int, string]{Fst: 1, Snd: "keep"})
	if got.Fst != 2 || got.Snd != "keep" {
		t.Fatalf("got %+v, want {2 keep}", got)
	}
}

func TestFocusSecond(t *testing.T) {
	c := kommit.FocusSecond[int](kommit.Pure(strings.ToUpper))
	got := sim(t, c, kommit.Pair[int, string]{Fst: 1, Snd: "up"})
	if got.Fst != 1 || got.Snd != "UP" {
		t.Fatalf("got %+v, want {1 UP}", got)
	}
}

func TestFocusFirstStageSeesCoordinate(t *testing.T) {
	var seen int
	c := kommit.FocusFirst[int, string](kommit.FromStep(
		func(view int) (kommit.Continuation[int], error) {
			seen = view
			return kommit.Pure(dbl), nil
		}))
	got := sim(t, c, kommit.Pair[int, string]{Fst: 21, Snd: "s"})
	if seen != 21 {
		t.Fatalf("step saw %d, want 21", seen)
	}
	if got.Fst != 42 || got.Snd != "s" {
		t.Fatalf("got %+v, want {42 s}", got)
	}
}

func TestOnEitherSelectsLeft(t *testing.T) {
	c := kommit.OnEither(kommit.Pure(inc), kommit.Pure(strings.ToUpper))
	got := sim(t, c, kommit.Left[int, string](4))
	if v, ok := got.GetLeft(); !ok || v != 5 {
		t.Fatalf("got %+v, want Left(5)", got)
	}
}

func TestOnEitherSelectsRight(t *testing.T) {
	c := kommit.OnEither(kommit.Pure(inc), kommit.Pure(strings.ToUpper))
	got := sim(t, c, kommit.Right[int]("ok"))
	if v, ok := got.GetRight(); !ok || v != "OK" {
		t.Fatalf("got %+v, want Right(OK)", got)
	}
}

func TestOnEitherTagSwitchGuardsCommit(t *testing.T) {
	// The branch switches after the step sampled its view but before
	// the commit: the tag-guarded update must not clobber the new
	// branch.
	cell := newTraceCell[kommit.Either[int, string]](
		kommit.NewMemCell(kommit.Left[int, string](1)))
	entered := make(chan struct{})
	resume := make(chan struct{})
	left := kommit.FromStep(func(view int) (kommit.Continuation[int], error) {
		close(entered)
		<-resume
		return kommit.Pure(inc), nil
	})
	kommit.WriteUpdate[kommit.Either[int, string]](cell,
		kommit.OnEither(left, kommit.Done[string]()))
	<-entered
	cell.inner.(*kommit.MemCell[kommit.Either[int, string]]).Store(
		kommit.Right[int]("switched"))
	close(resume)
	<-cell.onWrite
	got := cell.Load()
	if v, ok := got.GetRight(); !ok || v != "switched" {
		t.Fatalf("got %+v, want Right(switched)", got)
	}
}

func TestOnEitherTagSwitchCancelsLaterStages(t *testing.T) {
	// A stage boundary observing the other tag cancels the remainder:
	// the second step never runs and nothing commits.
	cell := newTraceCell[kommit.Either[int, string]](
		kommit.NewMemCell(kommit.Left[int, string](1)))
	entered := make(chan struct{})
	resume := make(chan struct{})
	boundary := make(chan struct{})
	secondRan := false
	left := kommit.FromStep(func(int) (kommit.Continuation[int], error) {
		close(entered)
		<-resume
		return kommit.FromStep(func(int) (kommit.Continuation[int], error) {
			secondRan = true
			return kommit.Pure(inc), nil
		}), nil
	})
	probe := probeCell[kommit.Either[int, string]]{
		Cell:   cell,
		onLoad: func() { boundary <- struct{}{} },
	}
	kommit.WriteUpdate[kommit.Either[int, string]](probe,
		kommit.OnEither(left, kommit.Done[string]()))
	<-boundary // selection load
	<-boundary // first stage boundary load
	<-entered
	cell.inner.(*kommit.MemCell[kommit.Either[int, string]]).Store(
		kommit.Right[int]("switched"))
	close(resume)
	<-boundary // second stage boundary load observes the switch
	// The task now terminates without committing; the boundary probe
	// channel stays quiet and the cell keeps the switched value.
	if got := cell.Load(); !got.IsRight() {
		t.Fatalf("got %+v, want Right", got)
	}
	if secondRan {
		t.Fatal("second step ran after the tag switch")
	}
	if n := cell.commits.Load(); n != 0 {
		t.Fatalf("commits %d, want 0", n)
	}
}

// probeCell forwards to an inner cell and reports every Load.
type probeCell[A any] struct {
	kommit.Cell[A]
	onLoad func()
}

func (c probeCell[A]) Load() A {
	v := c.Cell.Load()
	c.onLoad()
	return v
}
