package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level LogLevel) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetDefaultLogger(NewFromZap(zap.New(core), level))
	t.Cleanup(func() { SetDefaultLogger(NewFromZap(zap.NewNop(), INFO)) })
	return logs
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace": TRACE,
		"DEBUG": DEBUG,
		"":      INFO,
		"info":  INFO,
		"warn":  WARN,
		"error": ERROR,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestPackageFunctionsUseDefaultLogger(t *testing.T) {
	logs := observe(t, DEBUG)

	Info("шагов: %d", 42)
	Warn("предупреждение")
	Trace("не должно попасть в лог")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "шагов: 42", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestTraceEnabled(t *testing.T) {
	logs := observe(t, TRACE)

	Trace("переход %s", "(0,-1)")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "[TRACE] переход (0,-1)", logs.All()[0].Message)
}

func TestComponentLogger(t *testing.T) {
	logs := observe(t, INFO)

	logger := GetComponentLogger("sim")
	assert.Same(t, logger, GetSimLogger())
	logger.With("run_id", "abc").Infow("готово", "steps", 10)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "sim", entry.LoggerName)
	assert.Equal(t, "abc", entry.ContextMap()["run_id"])
	assert.EqualValues(t, 10, entry.ContextMap()["steps"])
	assert.Contains(t, GetLoggerManager().ListComponents(), "sim")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antgrid.log")

	logger, err := NewLogger("test", Options{Level: INFO, File: path})
	require.NoError(t, err)
	logger.Info("запись в файл")
	logger.Debug("ниже порога")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "запись в файл")
	assert.NotContains(t, string(data), "ниже порога")
}

func TestNewLoggerBadFile(t *testing.T) {
	_, err := NewLogger("test", Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
