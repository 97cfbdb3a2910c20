package fskit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorenhald/file-system-kit/fskit/iox"
)

func TestGetLogger(t *testing.T) {
	_, stderr, err := iox.CaptureOutput(func() error {
		logger := GetLogger()
		logger.Info().Str("component", "walker").Msg("ready")
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, stderr, `"message":"ready"`)
	assert.Contains(t, stderr, `"component":"walker"`)
	assert.Contains(t, stderr, `"time":`, "logger should carry timestamps")
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, ".fskitignore", DefaultIgnoreFileName)
	assert.NotEmpty(t, DefaultConfigPath)
}
