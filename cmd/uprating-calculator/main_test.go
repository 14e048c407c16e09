package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/uprating-calculator/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		conf      config.LoggingConfig
		override  string
		wantError bool
	}{
		{"defaults", config.LoggingConfig{}, "", false},
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"invalid level", config.LoggingConfig{Level: "loud"}, "", true},
		{"invalid format", config.LoggingConfig{Format: "xml"}, "", true},
		{"upper case level", config.LoggingConfig{Level: "WARN"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.override, tt.conf)
			if tt.wantError {
				if err == nil {
					t.Errorf("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("initializeLogger() returned nil logger")
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calc.log")
	logger, err := initializeLogger("", config.LoggingConfig{OutputFile: path})
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
}

func TestMergeLogging(t *testing.T) {
	base := config.LoggingConfig{Level: "info", Format: "console"}
	server := config.LoggingConfig{Level: "debug", OutputFile: "server.log"}

	got := mergeLogging(base, server)
	want := config.LoggingConfig{Level: "debug", Format: "console", OutputFile: "server.log"}
	if got != want {
		t.Errorf("mergeLogging() = %+v, expected %+v", got, want)
	}

	if got := mergeLogging(); got != (config.LoggingConfig{}) {
		t.Errorf("mergeLogging() with no layers = %+v, expected zero value", got)
	}
}

func TestInitializeLoggerServerLayer(t *testing.T) {
	base := config.LoggingConfig{Level: "info", Format: "json"}

	if _, err := initializeLogger("", base, config.LoggingConfig{Format: "xml"}); err == nil {
		t.Error("expected invalid server format to win over calculator format")
	}

	path := filepath.Join(t.TempDir(), "server.log")
	logger, err := initializeLogger("", base, config.LoggingConfig{Level: "debug", OutputFile: path})
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Debug("server debug line")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected server log file to be created: %v", err)
	}
	if !strings.Contains(string(data), "server debug line") {
		t.Errorf("expected debug line from server level, got %q", string(data))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	missingEnv := filepath.Join(t.TempDir(), "missing.env")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error", "--env-file", missingEnv))
	err := cmd.Execute()
	return out.String(), err
}

func TestCalculateCommandCSV(t *testing.T) {
	out, err := execute(t, "calculate",
		"--value", "1000",
		"--start-year", "2023",
		"--horizon", "2",
		"--parameter", "gov.bls.cpi.cpi_u",
		"--rounding-base", "0",
		"-o", "csv",
	)
	if err != nil {
		t.Fatalf("calculate error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", out)
	}
	if lines[0] != "year,factor,month,value,rounded" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2023,0,") {
		t.Errorf("expected start year row first, got %q", lines[1])
	}
}

func TestCalculateCommandPretty(t *testing.T) {
	out, err := execute(t, "calculate", "--horizon", "3", "--no-color")
	if err != nil {
		t.Fatalf("calculate error = %v", err)
	}
	if !strings.Contains(out, "--- Uprated values for gov.irs.uprating from 2024 ---") {
		t.Errorf("missing title in output:\n%s", out)
	}
	if !strings.Contains(out, "$1,000.00") {
		t.Errorf("missing starting value in output:\n%s", out)
	}
}

func TestCalculateCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`calculation:
  value: 500
  startYear: 2020
  horizon: 1
  parameter: gov.bls.cpi.cpi_w
output:
  format: json
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	out, err := execute(t, "calculate", "--config", path)
	if err != nil {
		t.Fatalf("calculate error = %v", err)
	}
	if !strings.Contains(out, `"parameter": "gov.bls.cpi.cpi_w"`) || !strings.Contains(out, `"year": 2021`) {
		t.Errorf("unexpected JSON output:\n%s", out)
	}
}

func TestCalculateCommandErrors(t *testing.T) {
	tests := map[string][]string{
		"missing explicit config": {"calculate", "--config", filepath.Join(t.TempDir(), "nope.yaml")},
		"invalid start year":      {"calculate", "--start-year", "1990"},
		"invalid output format":   {"calculate", "-o", "xml"},
		"unknown parameter":       {"calculate", "--parameter", "gov.irs"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := execute(t, args...); err == nil {
				t.Errorf("expected error for %v", args)
			}
		})
	}
}

func TestParametersCommand(t *testing.T) {
	out, err := execute(t, "parameters")
	if err != nil {
		t.Fatalf("parameters error = %v", err)
	}
	for _, path := range []string{"gov.irs.uprating", "gov.bls.cpi.cpi_u", "gov.bls.cpi.c_cpi_u"} {
		if !strings.Contains(out, path) {
			t.Errorf("expected %s in output:\n%s", path, out)
		}
	}

	out, err = execute(t, "parameters", "gov.irs.uprating")
	if err != nil {
		t.Fatalf("parameters gov.irs.uprating error = %v", err)
	}
	if !strings.Contains(out, "2026-02-01") {
		t.Errorf("expected February 2026 entry in output:\n%s", out)
	}

	if _, err := execute(t, "parameters", "gov.bls"); err == nil {
		t.Error("expected error for branch path")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "Version: dev") {
		t.Errorf("unexpected version output:\n%s", out)
	}
}
