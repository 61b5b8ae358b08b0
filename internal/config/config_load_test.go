package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

// Helper function to set os.Args for testing
func setArgs(args []string) {
	os.Args = args
}

// Helper function to clear environment variables
func clearEnvVars() {
	os.Unsetenv("DRIVER_PROFILE_MODE")
	os.Unsetenv("DRIVER_PROFILE_HOST")
	os.Unsetenv("DRIVER_PROFILE_PORT")
	os.Unsetenv("DRIVER_PROFILE_DB")
	os.Unsetenv("DRIVER_PROFILE_UPLOADS")
	os.Unsetenv("DRIVER_PROFILE_LOGLEVEL")
	os.Unsetenv("DRIVER_PROFILE_MAXFILESIZE")
	os.Unsetenv("DRIVER_PROFILE_SORTPOLICY")
}

func TestLoadFromFlags_DefaultConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()
	setArgs([]string{"driver-profile-api", "--uploads=" + tempDir})
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Mode != "server" {
		t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, "server")
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 8080 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 8080)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "info")
	}
	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 50*1024*1024)
	}
	if cfg.DatabasePath == "" {
		t.Error("LoadFromFlags() DatabasePath should not be empty")
	}
}

func TestLoadFromFlags_ValidFlags(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantMode        string
		wantHost        string
		wantPort        int
		wantLogLevel    string
		wantMaxFileSize int64
		wantSortPolicy  string
	}{
		{
			name:            "server mode defaults",
			args:            []string{"driver-profile-api"},
			wantMode:        "server",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantLogLevel:    "info",
			wantMaxFileSize: 50 * 1024 * 1024,
			wantSortPolicy:  "skip-on-missing",
		},
		{
			name:            "custom host and port",
			args:            []string{"driver-profile-api", "--host=0.0.0.0", "--port=9090"},
			wantMode:        "server",
			wantHost:        "0.0.0.0",
			wantPort:        9090,
			wantLogLevel:    "info",
			wantMaxFileSize: 50 * 1024 * 1024,
			wantSortPolicy:  "skip-on-missing",
		},
		{
			name:            "debug logging",
			args:            []string{"driver-profile-api", "--loglevel=debug"},
			wantMode:        "server",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantLogLevel:    "debug",
			wantMaxFileSize: 50 * 1024 * 1024,
			wantSortPolicy:  "skip-on-missing",
		},
		{
			name:            "custom max file size",
			args:            []string{"driver-profile-api", "--maxfilesize=10000000"},
			wantMode:        "server",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantLogLevel:    "info",
			wantMaxFileSize: 10000000,
			wantSortPolicy:  "skip-on-missing",
		},
		{
			name:            "missing-last sort policy",
			args:            []string{"driver-profile-api", "--sortpolicy=missing-last"},
			wantMode:        "server",
			wantHost:        "127.0.0.1",
			wantPort:        8080,
			wantLogLevel:    "info",
			wantMaxFileSize: 50 * 1024 * 1024,
			wantSortPolicy:  "missing-last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalArgs := os.Args
			defer func() {
				os.Args = originalArgs
				resetFlags()
				clearEnvVars()
			}()

			tempDir := t.TempDir()
			args := append([]string{}, tt.args...)
			args = append(args, "--uploads="+tempDir)

			setArgs(args)
			resetFlags()
			clearEnvVars()

			cfg, err := LoadFromFlags()
			if err != nil {
				t.Fatalf("LoadFromFlags() unexpected error: %v", err)
			}

			if cfg.Mode != tt.wantMode {
				t.Errorf("LoadFromFlags() Mode = %v, want %v", cfg.Mode, tt.wantMode)
			}
			if cfg.Host != tt.wantHost {
				t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, tt.wantHost)
			}
			if cfg.Port != tt.wantPort {
				t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, tt.wantPort)
			}
			if cfg.LogLevel != tt.wantLogLevel {
				t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, tt.wantLogLevel)
			}
			if cfg.MaxFileSize != tt.wantMaxFileSize {
				t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, tt.wantMaxFileSize)
			}
			if cfg.SortPolicy != tt.wantSortPolicy {
				t.Errorf("LoadFromFlags() SortPolicy = %v, want %v", cfg.SortPolicy, tt.wantSortPolicy)
			}
		})
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()

	os.Setenv("DRIVER_PROFILE_MODE", "server")
	os.Setenv("DRIVER_PROFILE_HOST", "192.168.1.1")
	os.Setenv("DRIVER_PROFILE_PORT", "3000")
	os.Setenv("DRIVER_PROFILE_UPLOADS", tempDir)
	os.Setenv("DRIVER_PROFILE_LOGLEVEL", "warn")
	os.Setenv("DRIVER_PROFILE_MAXFILESIZE", "20000000")

	setArgs([]string{"driver-profile-api"})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Host != "192.168.1.1" {
		t.Errorf("LoadFromFlags() Host = %v, want %v", cfg.Host, "192.168.1.1")
	}
	if cfg.Port != 3000 {
		t.Errorf("LoadFromFlags() Port = %v, want %v", cfg.Port, 3000)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LoadFromFlags() LogLevel = %v, want %v", cfg.LogLevel, "warn")
	}
	if cfg.MaxFileSize != 20000000 {
		t.Errorf("LoadFromFlags() MaxFileSize = %v, want %v", cfg.MaxFileSize, 20000000)
	}
}

func TestLoadFromFlags_FlagOverridesEnvironment(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()

	os.Setenv("DRIVER_PROFILE_HOST", "192.168.1.1")
	os.Setenv("DRIVER_PROFILE_PORT", "3000")

	setArgs([]string{"driver-profile-api", "--host=localhost", "--port=8888", "--uploads=" + tempDir})
	resetFlags()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("LoadFromFlags() Host = %v, want %v (should override env)", cfg.Host, "localhost")
	}
	if cfg.Port != 8888 {
		t.Errorf("LoadFromFlags() Port = %v, want %v (should override env)", cfg.Port, 8888)
	}
}

func TestLoadFromFlags_InvalidMode(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()
	setArgs([]string{"driver-profile-api", "--mode=invalid", "--uploads=" + tempDir})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid mode")
	}
	if err != nil && !strings.Contains(err.Error(), "mode must be either 'server' or 'parse'") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid mode", err)
	}
}

func TestLoadFromFlags_InvalidPort(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()
	setArgs([]string{"driver-profile-api", "--port=99999", "--uploads=" + tempDir})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid port")
	}
	if err != nil && !strings.Contains(err.Error(), "port must be between 1 and 65535") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid port", err)
	}
}

func TestLoadFromFlags_InvalidLogLevel(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	tempDir := t.TempDir()
	setArgs([]string{"driver-profile-api", "--loglevel=invalid", "--uploads=" + tempDir})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected error for invalid log level")
	}
	if err != nil && !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("LoadFromFlags() error = %v, want error about invalid log level", err)
	}
}

func TestLoadFromFlags_VersionFlag(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	setArgs([]string{"driver-profile-api", "--version"})
	resetFlags()
	clearEnvVars()

	_, err := LoadFromFlags()
	if err == nil {
		t.Error("LoadFromFlags() expected version error")
	}
	if err != nil && err.Error() != "version requested" {
		t.Errorf("LoadFromFlags() error = %v, want 'version requested'", err)
	}
}
