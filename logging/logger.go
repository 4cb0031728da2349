package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/pkg/paths"
)

const (
	envLogLevel  = "STATUSLINE_LOG_LEVEL"
	envLogCaller = "STATUSLINE_LOG_CALLER"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	active     *settings
	activeFile io.Closer
)

type settings struct {
	level        logrus.Level
	reportCaller bool
	formatter    logrus.Formatter
}

// NewLogger returns the logger for a component. Loggers are cached per
// component and all write to the shared global output.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	if active == nil {
		applyLocked(Config{})
	}

	logger := logrus.New()
	logger.SetOutput(GetGlobalOutput())
	active.applyTo(logger)

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Configure applies the "logging" section of cfg. verbose forces the debug
// level. A malformed section is reported but the defaults are still applied.
func Configure(cfg *config.Config, verbose bool) error {
	var logCfg Config
	var decodeErr error
	if cfg != nil {
		decodeErr = cfg.UnmarshalExtension("logging", &logCfg)
	}
	if verbose {
		logCfg.Level = "debug"
	} else if env := os.Getenv(envLogLevel); env != "" {
		logCfg.Level = env
	}
	Apply(logCfg)
	return decodeErr
}

// Apply installs logCfg for every existing and future logger.
func Apply(logCfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	applyLocked(logCfg)
}

// Close releases the log file, if one is open.
func Close() error {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if activeFile == nil {
		return nil
	}
	err := activeFile.Close()
	activeFile = nil
	return err
}

func applyLocked(logCfg Config) {
	s := resolve(logCfg)
	active = s
	for _, entry := range loggers {
		s.applyTo(entry.Logger)
	}

	if activeFile != nil {
		_ = activeFile.Close()
		activeFile = nil
	}

	var writers []io.Writer
	if logCfg.File.Enabled {
		if file := openFileSink(logCfg.File); file != nil {
			activeFile = file
			writers = append(writers, file)
		}
	}

	// stderr belongs to the hosting terminal; only write there when someone
	// is debugging interactively.
	if s.level >= logrus.DebugLevel && stderrIsTerminal() {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		SetGlobalOutput(io.Discard)
	case 1:
		SetGlobalOutput(writers[0])
	default:
		SetGlobalOutput(io.MultiWriter(writers...))
	}
}

func resolve(logCfg Config) *settings {
	levelStr := defaultLevel
	if logCfg.Level != "" {
		levelStr = logCfg.Level
	} else if env := os.Getenv(envLogLevel); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(levelStr))
	if err != nil {
		level = logrus.WarnLevel
	}

	s := &settings{
		level:        level,
		reportCaller: logCfg.ReportCaller || os.Getenv(envLogCaller) == "true",
	}

	switch logCfg.Format.Preset {
	case "json":
		s.formatter = &logrus.JSONFormatter{}
	case "simple":
		s.formatter = &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		s.formatter = &TextFormatter{Config: logCfg.Format}
	}
	return s
}

func (s *settings) applyTo(logger *logrus.Logger) {
	logger.SetLevel(s.level)
	logger.SetReportCaller(s.reportCaller)
	logger.SetFormatter(s.formatter)
}

// LogFilePath returns the file the sink writes to for fileCfg.
func LogFilePath(fileCfg FileSinkConfig) string {
	if fileCfg.Path != "" {
		return config.ExpandHome(fileCfg.Path)
	}
	return filepath.Join(paths.LogsDir(), defaultLogFile)
}

func openFileSink(fileCfg FileSinkConfig) *lumberjack.Logger {
	path := LogFilePath(fileCfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	if fileCfg.MaxSizeMB > 0 {
		sink.MaxSize = fileCfg.MaxSizeMB
	}
	if fileCfg.MaxBackups > 0 {
		sink.MaxBackups = fileCfg.MaxBackups
	}
	if fileCfg.MaxAgeDays > 0 {
		sink.MaxAge = fileCfg.MaxAgeDays
	}
	return sink
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
