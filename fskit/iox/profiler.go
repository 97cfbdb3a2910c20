package iox

import (
	"fmt"
	"io"
	"runtime/pprof"
)

// Profiler records a CPU profile for the duration of a measured region. The
// runtime allows one active CPU profile per process, so a second Start before
// the first Stop fails.
type Profiler struct {
	out     io.Writer
	running bool
}

// NewProfiler creates a profiler that writes its profile to out
func NewProfiler(out io.Writer) *Profiler {
	return &Profiler{out: out}
}

// Start begins CPU profiling into the configured writer
func (p *Profiler) Start() error {
	if err := pprof.StartCPUProfile(p.out); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	p.running = true
	return nil
}

// Stop ends profiling and flushes the profile to the writer
func (p *Profiler) Stop() {
	if !p.running {
		return
	}
	pprof.StopCPUProfile()
	p.running = false
}

// ProfileFunc runs fn with CPU profiling active, writing the profile to out.
// The profile is flushed on every exit path, including an fn error.
func ProfileFunc(out io.Writer, fn func() error) error {
	p := NewProfiler(out)
	if err := p.Start(); err != nil {
		return err
	}
	defer p.Stop()
	return fn()
}
