package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/statusline/config"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	a := NewLogger("test-component")
	b := NewLogger("test-component")
	other := NewLogger("other-component")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, "test-component", a.Data["component"])
}

func TestApplyReconfiguresExistingLoggers(t *testing.T) {
	t.Setenv(envLogLevel, "")
	logger := NewLogger("reconfigure")

	Apply(Config{Level: "error"})
	assert.Equal(t, logrus.ErrorLevel, logger.Logger.GetLevel())

	Apply(Config{Level: "info", Format: FormatConfig{Preset: "json"}})
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Logger.Formatter)

	Apply(Config{Level: "not-a-level"})
	assert.Equal(t, logrus.WarnLevel, logger.Logger.GetLevel())
}

func TestDefaultsDiscardOutput(t *testing.T) {
	t.Setenv(envLogLevel, "")
	Apply(Config{})
	defer SetGlobalOutput(io.Discard)

	logger := NewLogger("defaults")
	assert.Equal(t, logrus.WarnLevel, logger.Logger.GetLevel())

	var buf bytes.Buffer
	SetGlobalOutput(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] [defaults] shown")
}

func TestConfigureFromConfigFile(t *testing.T) {
	t.Setenv(envLogLevel, "")
	cfg, err := config.LoadFromBytes([]byte("logging:\n  level: info\n  report_caller: true\n"), "yaml")
	require.NoError(t, err)

	require.NoError(t, Configure(cfg, false))
	logger := NewLogger("configured")
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
	assert.True(t, logger.Logger.ReportCaller)

	t.Run("env overrides config", func(t *testing.T) {
		t.Setenv(envLogLevel, "error")
		require.NoError(t, Configure(cfg, false))
		assert.Equal(t, logrus.ErrorLevel, logger.Logger.GetLevel())
	})

	t.Run("verbose overrides env", func(t *testing.T) {
		t.Setenv(envLogLevel, "error")
		require.NoError(t, Configure(cfg, true))
		assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())
	})

	Apply(Config{})
}

func TestConfigureReportsMalformedSection(t *testing.T) {
	t.Setenv(envLogLevel, "")
	cfg, err := config.LoadFromBytes([]byte("logging:\n  level: [1, 2]\n"), "yaml")
	require.NoError(t, err)

	assert.Error(t, Configure(cfg, false))
	assert.Equal(t, logrus.WarnLevel, NewLogger("malformed").Logger.GetLevel())
}

func TestFileSink(t *testing.T) {
	t.Setenv(envLogLevel, "")
	logPath := filepath.Join(t.TempDir(), "nested", "statusline.log")

	Apply(Config{Level: "info", File: FileSinkConfig{Enabled: true, Path: logPath}})
	NewLogger("file-sink").Info("written to disk")
	require.NoError(t, Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [file-sink] written to disk")

	Apply(Config{})
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	t.Setenv("STATUSLINE_HOME", "/portable")

	assert.Equal(t, "/home/u/logs/a.log", LogFilePath(FileSinkConfig{Path: "~/logs/a.log"}))
	assert.Equal(t, filepath.Join("/portable", "state", "logs", "statusline.log"), LogFilePath(FileSinkConfig{}))
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "git",
					"dir":       "/tmp/x",
				},
			},
			want: []string{"[INFO]", "[git]", "test message", "dir=/tmp/x"},
		},
		{
			name:   "simple format",
			config: FormatConfig{DisableTimestamp: true, DisableComponent: true},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "careful",
				Data:    logrus.Fields{"component": "git"},
			},
			want:    []string{"[WARN] careful"},
			notWant: []string{"[git]", "[WARNING]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)

			s := string(out)
			assert.True(t, strings.HasSuffix(s, "\n"))
			for _, w := range tt.want {
				assert.Contains(t, s, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, s, nw)
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.DebugLevel,
		Message: "m",
		Data:    logrus.Fields{"b": 2, "a": 1, "c": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "[DEBUG] m a=1 b=2 c=3\n", string(out))
}
