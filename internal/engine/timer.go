package engine

import "time"

// minDelay keeps a misconfigured repeating event from spinning forever
// inside a single Advance.
const minDelay = time.Millisecond

// TimerConfig describes a clock event.
type TimerConfig struct {
	Delay    time.Duration
	Loop     bool // Repeat every Delay until removed
	Callback func()
}

// TimerEvent is a scheduled callback owned by a Clock.
type TimerEvent struct {
	delay    time.Duration
	elapsed  time.Duration
	loop     bool
	callback func()
	removed  bool
	fired    int
}

// Delay returns the current delay between firings.
func (e *TimerEvent) Delay() time.Duration {
	return e.delay
}

// SetDelay changes the delay. Time already elapsed towards the next firing is
// kept, so the next firing happens once the new delay is reached.
func (e *TimerEvent) SetDelay(d time.Duration) {
	if d < minDelay {
		d = minDelay
	}
	e.delay = d
}

// Remove cancels the event. No firing happens after Remove returns, even if
// called from inside another callback in the same Advance.
func (e *TimerEvent) Remove() {
	e.removed = true
}

// Removed reports whether the event was cancelled or has completed.
func (e *TimerEvent) Removed() bool {
	return e.removed
}

// Fired returns how many times the callback has run.
func (e *TimerEvent) Fired() int {
	return e.fired
}

// Clock drives timer events from simulation time.
type Clock struct {
	now    time.Duration
	events []*TimerEvent
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the simulation time elapsed so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AddEvent schedules a new event.
func (c *Clock) AddEvent(cfg TimerConfig) *TimerEvent {
	e := &TimerEvent{
		loop:     cfg.Loop,
		callback: cfg.Callback,
	}
	e.SetDelay(cfg.Delay)
	c.events = append(c.events, e)
	return e
}

// Advance moves simulation time forward by dt and runs every callback that
// came due, in scheduling order. Events added by callbacks start counting on
// the next Advance.
func (c *Clock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.now += dt

	due := make([]*TimerEvent, len(c.events))
	copy(due, c.events)
	for _, e := range due {
		if e.removed {
			continue
		}
		e.elapsed += dt
		for !e.removed && e.elapsed >= e.delay {
			e.elapsed -= e.delay
			e.fired++
			if !e.loop {
				e.removed = true
			}
			if e.callback != nil {
				e.callback()
			}
		}
	}
	c.prune()
}

// RemoveAll cancels every pending event.
func (c *Clock) RemoveAll() {
	for _, e := range c.events {
		e.removed = true
	}
	c.events = nil
}

// Pending returns the number of live events.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.events {
		if !e.removed {
			n++
		}
	}
	return n
}

func (c *Clock) prune() {
	live := c.events[:0]
	for _, e := range c.events {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(c.events); i++ {
		c.events[i] = nil
	}
	c.events = live
}
