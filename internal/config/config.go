package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeServer = "server"
	ModeParse  = "parse"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 50 * 1024 * 1024 // 50MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the driver profile service
type Config struct {
	// Server configuration
	Mode string // "server" or "parse"
	Host string
	Port int

	// Storage configuration
	DatabasePath    string
	UploadDirectory string

	// Extraction configuration
	MaxFileSize int64  // Maximum PDF file size in bytes
	SortPolicy  string // "skip-on-missing" or "missing-last"

	// Application configuration
	Version     string
	ServiceName string
	LogLevel    string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:            ModeServer,
		Host:            DefaultHost,
		Port:            DefaultPort,
		DatabasePath:    filepath.Join(currentDir, "driver_profiles.db"),
		UploadDirectory: filepath.Join(currentDir, "uploads"),
		MaxFileSize:     DefaultMaxFileSize,
		SortPolicy:      "skip-on-missing",
		Version:         "2.0.0",
		ServiceName:     "driver-profile-api",
		LogLevel:        DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.UploadDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.UploadDirectory); err == nil {
			cfg.UploadDirectory = expandedPath
		}
	}
	if cfg.DatabasePath != "" {
		if expandedPath, err := filepath.Abs(cfg.DatabasePath); err == nil {
			cfg.DatabasePath = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("DRIVER_PROFILE")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("db", cfg.DatabasePath)
	viper.SetDefault("uploads", cfg.UploadDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("sortpolicy", cfg.SortPolicy)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'server' for the HTTP API, 'parse' for one-shot CLI extraction")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("db", cfg.DatabasePath, "Path to the SQLite database file")
	pflag.String("uploads", cfg.UploadDirectory, "Directory for uploaded PDF files")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.String("sortpolicy", cfg.SortPolicy, "Employment sort policy: 'skip-on-missing' or 'missing-last'")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("db", pflag.Lookup("db"))
	_ = viper.BindPFlag("uploads", pflag.Lookup("uploads"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("sortpolicy", pflag.Lookup("sortpolicy"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDriver Profile API - extracts structured driver profiles from application PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                          # HTTP API on 127.0.0.1:8080 (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --host=0.0.0.0 --port=8081               # API on all interfaces\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=parse application.pdf             # one-shot extraction to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_DB          SQLite database path\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_UPLOADS     Upload directory\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_MAXFILESIZE Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  DRIVER_PROFILE_SORTPOLICY  Employment sort policy\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DatabasePath = viper.GetString("db")
	cfg.UploadDirectory = viper.GetString("uploads")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.SortPolicy = viper.GetString("sortpolicy")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeServer && c.Mode != ModeParse {
		return errors.New("mode must be either 'server' or 'parse'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.Mode == ModeServer {
		if c.DatabasePath == "" {
			return errors.New("database path cannot be empty")
		}
		if c.UploadDirectory == "" {
			return errors.New("upload directory cannot be empty")
		}

		// Check if upload directory exists, create if it doesn't
		if _, err := os.Stat(c.UploadDirectory); os.IsNotExist(err) {
			if err := os.MkdirAll(c.UploadDirectory, DefaultDirPerm); err != nil {
				return fmt.Errorf("cannot create upload directory %s: %w", c.UploadDirectory, err)
			}
		} else if err != nil {
			return fmt.Errorf("cannot access upload directory %s: %w", c.UploadDirectory, err)
		}
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate sort policy
	if c.SortPolicy != "skip-on-missing" && c.SortPolicy != "missing-last" {
		return fmt.Errorf("invalid sort policy: %s (must be 'skip-on-missing' or 'missing-last')", c.SortPolicy)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, DatabasePath: %s, UploadDirectory: %s, LogLevel: %s, MaxFileSize: %d, SortPolicy: %s}",
		c.Mode, c.Host, c.Port, c.DatabasePath, c.UploadDirectory, c.LogLevel, c.MaxFileSize, c.SortPolicy)
}

// IsServerMode returns true when running the HTTP API
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsParseMode returns true when running one-shot CLI extraction
func (c *Config) IsParseMode() bool {
	return c.Mode == ModeParse
}
