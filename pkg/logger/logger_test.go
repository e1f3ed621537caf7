package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/iamNilotpal/ipchecksum/internal/serialize"
)

func TestNewWithOptionsLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		opts  Options
		debug bool
		warn  bool
	}{
		{name: "default is info", opts: Options{}, debug: false, warn: true},
		{name: "debug mode", opts: Options{Debug: true}, debug: true, warn: true},
		{name: "error level", opts: Options{Level: "error"}, debug: false, warn: false},
		{name: "bad level falls back to info", opts: Options{Level: "loud"}, debug: false, warn: true},
		{name: "console encoding", opts: Options{Encoding: "console"}, debug: false, warn: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := NewWithOptions("ipchecksum-test", tt.opts)
			core := log.Desugar().Core()
			assert.Equal(t, tt.debug, core.Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warn, core.Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNewWithOptionsOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := NewWithOptions("ipchecksum", Options{Output: &buf})
	log.Errorw("checksum failed", "path", "input/a.bin")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, serialize.UnMarshalJSON(buf.Bytes(), &entry))
	assert.Equal(t, "checksum failed", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "ipchecksum", entry["service"])
	assert.Equal(t, "input/a.bin", entry["path"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithOptionsConsoleOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := NewWithOptions("ipchecksum", Options{Encoding: "console", Output: &buf})
	log.Infow("checksum computed", "sum", "FBFD")
	assert.Contains(t, buf.String(), "checksum computed")
	assert.Contains(t, buf.String(), `"sum": "FBFD"`)
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	log := NewNop()
	assert.False(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
}
