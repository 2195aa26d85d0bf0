// Package timer provides the per-level countdown. It holds no goroutines:
// the front end delivers one tick per second carrying the token it was
// armed with, and ticks for a superseded countdown are ignored.
package timer

// Token identifies one armed countdown. The zero Token is never live.
type Token uint64

// Countdown is a single cancellable second counter.
type Countdown struct {
	gen       Token
	running   bool
	frozen    bool
	remaining int
}

// Start cancels any previous countdown and arms a new one at seconds.
// The returned token must accompany every Tick for this countdown.
func (c *Countdown) Start(seconds int) Token {
	c.gen++
	c.remaining = max(seconds, 0)
	c.running = c.remaining > 0
	c.frozen = false
	return c.gen
}

// Tick decrements the countdown by one second when tok is current and the
// countdown is running and not frozen. It returns whether tok is still
// live, so the caller knows whether to schedule another tick.
func (c *Countdown) Tick(tok Token) bool {
	if !c.Live(tok) {
		return false
	}
	if c.frozen {
		return true
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return false
	}
	return true
}

// Live reports whether tok belongs to the running countdown.
func (c *Countdown) Live(tok Token) bool {
	return tok != 0 && tok == c.gen && c.running
}

// Stop cancels the countdown. Remaining keeps its last value.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
	c.frozen = false
}

// Freeze suspends or resumes decrements without cancelling.
func (c *Countdown) Freeze(frozen bool) {
	c.frozen = frozen
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Running reports whether a countdown is armed.
func (c *Countdown) Running() bool {
	return c.running
}

// Frozen reports whether decrements are suspended.
func (c *Countdown) Frozen() bool {
	return c.frozen
}

// Expired reports whether the last countdown ran down to zero.
func (c *Countdown) Expired() bool {
	return !c.running && c.remaining == 0 && c.gen > 0
}
