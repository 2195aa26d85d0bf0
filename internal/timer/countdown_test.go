package timer

import "testing"

func TestCountdownRunsToZero(t *testing.T) {
	var c Countdown
	tok := c.Start(3)

	for i, want := range []bool{true, true, false} {
		if got := c.Tick(tok); got != want {
			t.Fatalf("tick %d: live = %v, want %v", i, got, want)
		}
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
	if c.Running() {
		t.Error("countdown should stop at zero")
	}
	if !c.Expired() {
		t.Error("Expired() should be true after reaching zero")
	}

	// Further ticks do nothing
	if c.Tick(tok) {
		t.Error("tick after expiry should report dead token")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() went to %d", c.Remaining())
	}
}

func TestCountdownStaleToken(t *testing.T) {
	var c Countdown
	old := c.Start(10)
	tok := c.Start(5)

	if c.Tick(old) {
		t.Error("superseded token should be dead")
	}
	if c.Remaining() != 5 {
		t.Errorf("stale tick changed Remaining to %d", c.Remaining())
	}
	if !c.Tick(tok) || c.Remaining() != 4 {
		t.Errorf("current token tick: Remaining = %d, want 4", c.Remaining())
	}
}

func TestCountdownStopKeepsRemaining(t *testing.T) {
	var c Countdown
	tok := c.Start(30)
	c.Tick(tok)
	c.Stop()

	if c.Tick(tok) {
		t.Error("token should be dead after Stop")
	}
	if c.Remaining() != 29 {
		t.Errorf("Remaining() = %d, want 29", c.Remaining())
	}
	if c.Expired() {
		t.Error("a stopped countdown with time left is not expired")
	}
}

func TestCountdownFreeze(t *testing.T) {
	var c Countdown
	tok := c.Start(5)

	c.Freeze(true)
	for i := 0; i < 3; i++ {
		if !c.Tick(tok) {
			t.Fatal("frozen countdown should keep its token live")
		}
	}
	if c.Remaining() != 5 {
		t.Errorf("frozen countdown decremented to %d", c.Remaining())
	}

	c.Freeze(false)
	c.Tick(tok)
	if c.Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4 after resume", c.Remaining())
	}
}

func TestCountdownZeroToken(t *testing.T) {
	var c Countdown
	if c.Live(0) || c.Tick(0) {
		t.Error("zero token must never be live")
	}
	if tok := c.Start(0); c.Live(tok) {
		t.Error("a zero-length countdown is not running")
	}
}
