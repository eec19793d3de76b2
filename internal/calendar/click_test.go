package calendar

import (
	"testing"
	"time"
)

// fakeScheduler captures scheduled callbacks so tests can fire or cancel the
// timeout deterministically instead of sleeping.
type fakeScheduler struct {
	fns      []func()
	canceled int
}

func (f *fakeScheduler) schedule(_ time.Duration, fn func()) func() {
	f.fns = append(f.fns, fn)
	return func() { f.canceled++ }
}

func (f *fakeScheduler) fire(i int) { f.fns[i]() }

type clickRecorder struct {
	views, edits, selects int
}

func newTestClicks(sched *fakeScheduler) (*CellClicks, *clickRecorder) {
	rec := &clickRecorder{}
	c := NewCellClicks(220*time.Millisecond,
		func() { rec.views++ },
		func() { rec.edits++ },
		func() { rec.selects++ },
		sched.schedule,
	)
	return c, rec
}

func TestSingleClickViewsAfterTimeout(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(false)
	if rec.views != 0 {
		t.Fatal("view fired before the timeout")
	}

	sched.fire(0)
	if rec.views != 1 {
		t.Errorf("views = %d, want exactly 1", rec.views)
	}
	if rec.edits != 0 || rec.selects != 0 {
		t.Errorf("edits = %d selects = %d, want 0", rec.edits, rec.selects)
	}
}

func TestDoubleClickEditsAndSuppressesView(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(false)
	c.Click(false)

	if rec.edits != 1 {
		t.Errorf("edits = %d, want 1", rec.edits)
	}
	if sched.canceled != 1 {
		t.Errorf("canceled = %d, want 1", sched.canceled)
	}

	// Even if the scheduler fires the stale callback anyway, view must not run.
	sched.fire(0)
	if rec.views != 0 {
		t.Errorf("views = %d, want 0 after double-click", rec.views)
	}
}

func TestShiftClickSelectsImmediately(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(true)
	if rec.selects != 1 {
		t.Errorf("selects = %d, want 1", rec.selects)
	}
	if len(sched.fns) != 0 {
		t.Error("shift-click should not start a timer")
	}
}

func TestClickAfterTimeoutStartsFresh(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(false)
	sched.fire(0)
	c.Click(false)
	sched.fire(1)

	if rec.views != 2 {
		t.Errorf("views = %d, want 2 separate views", rec.views)
	}
	if rec.edits != 0 {
		t.Errorf("edits = %d, want 0", rec.edits)
	}
}

func TestDoubleClickThenClickDisambiguatesAgain(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(false)
	c.Click(false) // edit
	c.Click(false) // new single click
	sched.fire(1)

	if rec.edits != 1 || rec.views != 1 {
		t.Errorf("edits = %d views = %d, want 1 and 1", rec.edits, rec.views)
	}
}

func TestCancelDropsPendingTimer(t *testing.T) {
	sched := &fakeScheduler{}
	c, rec := newTestClicks(sched)

	c.Click(false)
	c.Cancel()
	sched.fire(0)

	if rec.views != 0 {
		t.Errorf("views = %d, want 0 after cancel", rec.views)
	}
	if sched.canceled != 1 {
		t.Errorf("canceled = %d, want 1", sched.canceled)
	}
}

func TestCellsAreIndependent(t *testing.T) {
	schedA := &fakeScheduler{}
	schedB := &fakeScheduler{}
	a, recA := newTestClicks(schedA)
	b, recB := newTestClicks(schedB)

	a.Click(false)
	b.Click(false)
	b.Click(false) // double-click on b only

	schedA.fire(0)
	if recA.views != 1 || recA.edits != 0 {
		t.Errorf("cell a: views = %d edits = %d, want 1 and 0", recA.views, recA.edits)
	}
	if recB.edits != 1 || recB.views != 0 {
		t.Errorf("cell b: views = %d edits = %d, want 0 and 1", recB.views, recB.edits)
	}
}

func TestRealTimerDefault(t *testing.T) {
	done := make(chan struct{})
	c := NewCellClicks(5*time.Millisecond,
		func() { close(done) },
		func() {}, func() {},
		nil,
	)

	c.Click(false)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("view never fired with the default timer")
	}
}
