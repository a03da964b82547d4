package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"ERROR":   LogLevelError,
		"warn":    LogLevelWarn,
		"Info":    LogLevelInfo,
		" DEBUG ": LogLevelDebug,
		"TRACE":   LogLevelTrace,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), "input %q", in)
	}
}

func TestLogger_WithKeepsLevel(t *testing.T) {
	l := NewNopLogger().With("run_id", "abc")
	assert.Equal(t, LogLevelError, l.GetLevel())

	// must not panic on any level
	l.Error("e %d", 1)
	l.Warn("w")
	l.Info("i")
	l.Debug("d")
	l.Trace("t")
}
