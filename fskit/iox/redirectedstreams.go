package iox

import (
	"fmt"
	"io"
	"os"
)

// RedirectedStreams captures everything written to os.Stdout and os.Stderr
// between Start and Stop. The globals are swapped for pipes, so only output
// going through them is seen. Not safe for concurrent use.
type RedirectedStreams struct {
	origStdout *os.File
	origStderr *os.File

	stdoutR, stdoutW *os.File
	stderrR, stderrW *os.File

	stdoutCh chan string
	stderrCh chan string

	stdout string
	stderr string
}

// NewRedirectedStreams creates an inactive stream capture
func NewRedirectedStreams() *RedirectedStreams {
	return &RedirectedStreams{}
}

// Start swaps os.Stdout and os.Stderr for capture pipes
func (rs *RedirectedStreams) Start() error {
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	rs.origStdout, rs.origStderr = os.Stdout, os.Stderr
	rs.stdoutR, rs.stdoutW = stdoutR, stdoutW
	rs.stderrR, rs.stderrW = stderrR, stderrW
	os.Stdout, os.Stderr = stdoutW, stderrW

	// Drain the pipes while capture is active so writers never block on a
	// full pipe buffer
	rs.stdoutCh = drain(stdoutR)
	rs.stderrCh = drain(stderrR)
	return nil
}

// Stop restores the original streams and records the captured text
func (rs *RedirectedStreams) Stop() error {
	if rs.origStdout == nil {
		return nil
	}
	os.Stdout, os.Stderr = rs.origStdout, rs.origStderr
	rs.origStdout, rs.origStderr = nil, nil

	if err := rs.stdoutW.Close(); err != nil {
		return fmt.Errorf("failed to close stdout pipe: %w", err)
	}
	if err := rs.stderrW.Close(); err != nil {
		return fmt.Errorf("failed to close stderr pipe: %w", err)
	}
	rs.stdout = <-rs.stdoutCh
	rs.stderr = <-rs.stderrCh
	rs.stdoutR.Close()
	rs.stderrR.Close()
	return nil
}

// Stdout returns the text captured from os.Stdout
func (rs *RedirectedStreams) Stdout() string {
	return rs.stdout
}

// Stderr returns the text captured from os.Stderr
func (rs *RedirectedStreams) Stderr() string {
	return rs.stderr
}

// CaptureOutput runs fn with os.Stdout and os.Stderr captured, returning the
// text each stream received
func CaptureOutput(fn func() error) (stdout, stderr string, err error) {
	rs := NewRedirectedStreams()
	if err := rs.Start(); err != nil {
		return "", "", err
	}
	fnErr := fn()
	if err := rs.Stop(); err != nil && fnErr == nil {
		return rs.Stdout(), rs.Stderr(), err
	}
	return rs.Stdout(), rs.Stderr(), fnErr
}

func drain(r *os.File) chan string {
	ch := make(chan string, 1)
	go func() {
		captured, _ := io.ReadAll(r)
		ch <- string(captured)
	}()
	return ch
}
