package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/watchearn/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		lvl       string
		format    string
		wantErr   bool
		wantLevel zapcore.Level
	}{
		{name: "info console", lvl: "info", format: "console", wantLevel: zapcore.InfoLevel},
		{name: "debug default format", lvl: "debug", wantLevel: zapcore.DebugLevel},
		{name: "warn json", lvl: "warn", format: "json", wantLevel: zapcore.WarnLevel},
		{name: "error", lvl: "error", format: "json", wantLevel: zapcore.ErrorLevel},
		{name: "fatal is not a runtime level", lvl: "fatal", wantErr: true},
		{name: "unknown level", lvl: "invalid", wantErr: true},
		{name: "unknown format", lvl: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.lvl, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			assert.False(t, l.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	require.NoError(t, InitLogger(&config.Config{LogLvl: "error", LogFormat: "json"}))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, InitLogger(&config.Config{LogLvl: "invalid"}))
}
