package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigFile(t *testing.T) {
	// Save original value and restore after test
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{
			name:     "default config file",
			cfgValue: "nanocheck.yaml",
			want:     "nanocheck.yaml",
		},
		{
			name:     "custom config file",
			cfgValue: "/path/to/custom.yaml",
			want:     "/path/to/custom.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			got := GetConfigFile()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagDefaults(t *testing.T) {
	assert.Equal(t, "nanocheck.yaml", rootCmd.PersistentFlags().Lookup("config").DefValue)
	assert.Equal(t, "", rootCmd.PersistentFlags().Lookup("log-level").DefValue)
	assert.Equal(t, "false", rootCmd.PersistentFlags().Lookup("quick").DefValue)
	assert.Equal(t, "false", rootCmd.PersistentFlags().Lookup("verbose").DefValue)
	assert.Equal(t, "0", rootCmd.PersistentFlags().Lookup("workers").DefValue)
}

func TestGetCLIOverrides(t *testing.T) {
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalQuick := quick
	originalVerbose := verbose
	originalWorkers := workers
	defer func() {
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		quick = originalQuick
		verbose = originalVerbose
		workers = originalWorkers
	}()

	logLevel = "debug"
	logFormat = "json"
	quick = true
	verbose = true
	workers = 4

	got := GetCLIOverrides()
	assert.Equal(t, CLIOverrides{
		LogLevel:  "debug",
		LogFormat: "json",
		Quick:     true,
		Verbose:   true,
		Workers:   4,
	}, got)
}

func TestExecuteExists(t *testing.T) {
	// Execute calls os.Exit(1) on error, so only its presence is checked.
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}
