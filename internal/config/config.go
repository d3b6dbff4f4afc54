// Package config provides configuration structures and loading for the
// format checker.
package config

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Convert ConvertConfig `yaml:"convert" mapstructure:"convert"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig represents run scanning settings.
type ScanConfig struct {
	Quick   bool `yaml:"quick" mapstructure:"quick"`
	Workers int  `yaml:"workers" mapstructure:"workers"`
}

// ReportConfig represents console and TSV reporting settings.
type ReportConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Color   bool   `yaml:"color" mapstructure:"color"`
	TSVPath string `yaml:"tsv_path" mapstructure:"tsv_path"`
}

// ConvertConfig represents conversion script settings.
type ConvertConfig struct {
	Target       string `yaml:"target" mapstructure:"target"` // pod5 or single_fast5
	ScriptOutput string `yaml:"script_output" mapstructure:"script_output"`
	OutputDir    string `yaml:"output_dir" mapstructure:"output_dir"`
	Threads      int    `yaml:"threads" mapstructure:"threads"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Quick:   false,
			Workers: 1,
		},
		Report: ReportConfig{
			Verbose: false,
			Color:   true,
		},
		Convert: ConvertConfig{
			ScriptOutput: "convert_runs.sh",
			Threads:      20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
