package calendar

import (
	"sync"
	"time"
)

// Scheduler runs fn once after the delay and returns a cancel function. The
// default implementation is backed by time.AfterFunc; tests inject their own
// to drive the timeout deterministically.
type Scheduler func(delay time.Duration, fn func()) (cancel func())

func afterFunc(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// CellClicks disambiguates pointer input on one calendar cell:
//
//	shift+click         -> select, immediately
//	single click        -> view, once the delay passes with no second click
//	click-click (fast)  -> edit, canceling the pending view
//
// Each cell owns its own instance; timers on different cells never interact.
// A canceled timer never fires, even if the underlying scheduler already
// started the callback.
type CellClicks struct {
	mu       sync.Mutex
	delay    time.Duration
	schedule Scheduler
	cancel   func()
	gen      uint64
	pending  uint64

	onView   func()
	onEdit   func()
	onSelect func()
}

// NewCellClicks builds a disambiguator with the given callbacks. A nil
// scheduler falls back to real timers.
func NewCellClicks(delay time.Duration, onView, onEdit, onSelect func(), sched Scheduler) *CellClicks {
	if sched == nil {
		sched = afterFunc
	}
	return &CellClicks{
		delay:    delay,
		schedule: sched,
		onView:   onView,
		onEdit:   onEdit,
		onSelect: onSelect,
	}
}

// Click feeds one pointer event into the state machine.
func (c *CellClicks) Click(shift bool) {
	if shift {
		c.onSelect()
		return
	}

	c.mu.Lock()
	if c.pending != 0 {
		// Second click inside the window: this is a double-click.
		c.pending = 0
		cancel := c.cancel
		c.cancel = nil
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		c.onEdit()
		return
	}

	c.gen++
	gen := c.gen
	c.pending = gen
	c.cancel = c.schedule(c.delay, func() {
		c.mu.Lock()
		if c.pending != gen {
			// Canceled or superseded while the callback was in flight.
			c.mu.Unlock()
			return
		}
		c.pending = 0
		c.cancel = nil
		c.mu.Unlock()
		c.onView()
	})
	c.mu.Unlock()
}

// Cancel drops any pending single-click timer without invoking a callback.
// Called when the cell leaves the screen.
func (c *CellClicks) Cancel() {
	c.mu.Lock()
	c.pending = 0
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
