package iox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryChange(t *testing.T) {
	t.Run("InDirectory runs fn inside the target and restores", func(t *testing.T) {
		origDir, err := os.Getwd()
		require.NoError(t, err)

		target := t.TempDir()
		resolvedTarget, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)

		var inside string
		err = InDirectory(target, func() error {
			inside, err = os.Getwd()
			return err
		})
		require.NoError(t, err)

		resolvedInside, err := filepath.EvalSymlinks(inside)
		require.NoError(t, err)
		assert.Equal(t, resolvedTarget, resolvedInside)

		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, origDir, after)
	})

	t.Run("directory is restored when fn fails", func(t *testing.T) {
		origDir, err := os.Getwd()
		require.NoError(t, err)

		wantErr := errors.New("boom")
		err = InDirectory(t.TempDir(), func() error { return wantErr })
		assert.ErrorIs(t, err, wantErr)

		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, origDir, after)
	})

	t.Run("entering a missing directory fails", func(t *testing.T) {
		dc := NewDirectoryChange(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, dc.Enter())
	})

	t.Run("Exit without Enter is a no-op", func(t *testing.T) {
		dc := NewDirectoryChange(t.TempDir())
		assert.NoError(t, dc.Exit())
	})
}

func TestRedirectedStreams(t *testing.T) {
	t.Run("captures stdout and stderr separately", func(t *testing.T) {
		stdout, stderr, err := CaptureOutput(func() error {
			fmt.Fprint(os.Stdout, "to stdout")
			fmt.Fprint(os.Stderr, "to stderr")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "to stdout", stdout)
		assert.Equal(t, "to stderr", stderr)
	})

	t.Run("fn error is surfaced along with captured text", func(t *testing.T) {
		wantErr := errors.New("boom")
		stdout, _, err := CaptureOutput(func() error {
			fmt.Fprint(os.Stdout, "partial")
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, "partial", stdout)
	})

	t.Run("Stop without Start is a no-op", func(t *testing.T) {
		rs := NewRedirectedStreams()
		assert.NoError(t, rs.Stop())
	})
}

func TestTimer(t *testing.T) {
	t.Run("measures elapsed wall-clock time", func(t *testing.T) {
		timer := NewTimer("")
		timer.Start()
		time.Sleep(10 * time.Millisecond)
		elapsed := timer.Stop()

		assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
		assert.Equal(t, elapsed, timer.Elapsed())
	})

	t.Run("prints exit message with a message configured", func(t *testing.T) {
		stdout, _, err := CaptureOutput(func() error {
			timer := NewTimer("walked tree")
			timer.Start()
			timer.Stop()
			return nil
		})
		require.NoError(t, err)
		assert.Contains(t, stdout, "walked tree: ")
	})

	t.Run("Time reports fn duration and error", func(t *testing.T) {
		wantErr := errors.New("boom")
		elapsed, err := Time(func() error {
			time.Sleep(5 * time.Millisecond)
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
	})
}
