package iox

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Timer is a wall-clock stopwatch. An optional message makes Stop print
// "<message>: <elapsed>" to the configured writer.
type Timer struct {
	message string
	out     io.Writer
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewTimer creates a stopped timer; message may be empty for a silent timer
func NewTimer(message string) *Timer {
	return &Timer{
		message: message,
		out:     os.Stdout,
	}
}

// SetOutput redirects the exit message away from stdout
func (t *Timer) SetOutput(out io.Writer) {
	t.out = out
}

// Start begins timing, discarding any previous measurement
func (t *Timer) Start() {
	t.start = time.Now()
	t.elapsed = 0
	t.running = true
}

// Stop ends timing, prints the exit message if one was configured, and
// returns the measured duration
func (t *Timer) Stop() time.Duration {
	if t.running {
		t.elapsed = time.Since(t.start)
		t.running = false
	}
	if t.message != "" {
		fmt.Fprintf(t.out, "%s: %s\n", t.message, t.elapsed)
	}
	return t.elapsed
}

// Elapsed returns the time measured so far without stopping the timer
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return time.Since(t.start)
	}
	return t.elapsed
}

// Time runs fn and returns how long it took
func Time(fn func() error) (time.Duration, error) {
	timer := NewTimer("")
	timer.Start()
	err := fn()
	return timer.Stop(), err
}
