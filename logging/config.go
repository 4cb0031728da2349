package logging

// Config is the "logging" section of the statusline config file.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// STATUSLINE_LOG_LEVEL overrides it.
	Level string `yaml:"level"`

	// ReportCaller adds file, line and function to each entry.
	// STATUSLINE_LOG_CALLER=true enables it as well.
	ReportCaller bool `yaml:"report_caller"`

	File FileSinkConfig `yaml:"file"`

	Format FormatConfig `yaml:"format"`
}

// FileSinkConfig configures the rotating log file.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path defaults to <state dir>/logs/statusline.log.
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset is "default", "simple" or "json".
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
}

const (
	defaultLevel      = "warn"
	defaultLogFile    = "statusline.log"
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
	defaultMaxAgeDays = 14
)
