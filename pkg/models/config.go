package models

// Storage backend names accepted by the .taskdeckrc config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// AppConfig holds tool-level settings read from .taskdeckrc via Viper.
// These configure the process, not the tracked data; the persisted Settings
// record is separate and lives in the settings slot.
type AppConfig struct {
	Backend        string `yaml:"backend" mapstructure:"backend"`
	DataDir        string `yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	EventLog       bool   `yaml:"event_log" mapstructure:"event_log"`
	EventLogBudget int    `yaml:"event_log_budget,omitempty" mapstructure:"event_log_budget"`
}
