package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Where .mtc.yaml and .env are read from
	ProjectPath string

	// Test case directory used when --dir is not given
	Dir string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Dir         string
	Platform    string
	NameFilter  string
	From        string
	ReportPath  string
	Verbose     bool
	LogFormat   string
	NewName     string
	NewPlatform string
	NewPriority string
	NewAuthor   string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		Dir:         DefaultDir,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Load reads .mtc.yaml, .env and MTC_* variables over the current values.
// A missing config or dotenv file is not an error.
func (c *Config) Load() error {
	envPath := filepath.Join(c.ProjectPath, EnvFileName)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	v := viper.New()
	v.SetDefault(keyDir, c.Dir)
	v.SetDefault(keyLogLevel, c.LogLevel)
	v.SetDefault(keyLogFormat, c.LogFormat)
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(c.ProjectPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	c.Dir = v.GetString(keyDir)
	c.LogLevel = v.GetString(keyLogLevel)
	c.LogFormat = v.GetString(keyLogFormat)
	return nil
}

// GetDir returns the test case directory, using the flag if provided
func (c *Config) GetDir() string {
	if c.Flags.Dir != "" {
		return c.Flags.Dir
	}
	return c.Dir
}

// GetLogLevel returns the log level name, forced to debug by --verbose
func (c *Config) GetLogLevel() string {
	if c.Flags.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// GetLogFormat returns the log format, using the flag if provided
func (c *Config) GetLogFormat() string {
	if c.Flags.LogFormat != "" {
		return c.Flags.LogFormat
	}
	return c.LogFormat
}
