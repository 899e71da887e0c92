package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDisabled(t *testing.T) {
	for _, level := range []string{"", "off", " OFF "} {
		var buf bytes.Buffer
		logger, err := New(level, &buf)
		require.NoError(t, err)

		logger.Error("should not appear")
		require.Empty(t, buf.String(), "level %q", level)
	}
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("read file", zap.Int("bytes", 42))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "read file")
	require.Contains(t, out, "42")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{})
	require.EqualError(t, err, `invalid LILGREP_LOG value "loud"`)
}
