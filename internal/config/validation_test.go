package config

import (
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

func TestValidateScanWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.Workers = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for zero workers")
	}
	if !strings.Contains(err.Error(), "scan.workers") {
		t.Errorf("expected scan.workers in error, got: %v", err)
	}
}

func TestValidateConvertTarget(t *testing.T) {
	tests := []struct {
		target string
		valid  bool
	}{
		{"", true},
		{"pod5", true},
		{"single_fast5", true},
		{"bam", false},
		{"POD5", false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Convert.Target = tt.target

		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("target %q: expected valid, got: %v", tt.target, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("target %q: expected validation error", tt.target)
		}
	}
}

func TestValidateConvertThreads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Convert.Threads = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for negative threads")
	}
	if !strings.Contains(err.Error(), "convert.threads") {
		t.Errorf("expected convert.threads in error, got: %v", err)
	}
}

func TestValidateConvertScriptOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Convert.Target = "pod5"
	cfg.Convert.ScriptOutput = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty script_output with target set")
	}
	if !strings.Contains(err.Error(), "convert.script_output") {
		t.Errorf("expected convert.script_output in error, got: %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors for bad logging settings")
	}
	msg := err.Error()
	if !strings.Contains(msg, "logging.level") {
		t.Errorf("expected logging.level in error, got: %v", err)
	}
	if !strings.Contains(msg, "logging.format") {
		t.Errorf("expected logging.format in error, got: %v", err)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("unexpected message: %s", msg)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should produce empty message")
	}
}
