package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	Host string
	Port int

	// Run settings
	SettleDelay  time.Duration
	SequencePath string

	// Listen settings
	ListenAddr string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Host       string
	Sequence   string
	EnvFile    string
	Progress   bool
	Verbose    bool
	NameFilter string
	ExportPath string
	ListenAddr string
	TUI        bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Host:        DefaultHost,
		Port:        Port,
		SettleDelay: DefaultSettleDelay,
		ListenAddr:  DefaultListenAddr,
		Flags:       Flags{EnvFile: DefaultEnvFile},
	}
}

// Load creates a config, reads the dotenv file named by the flags and applies flag overrides
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}
	cfg.Apply()
	return cfg, nil
}

// LoadEnv reads a dotenv file into the process environment and picks up
// the OSCTEST_* variables. A missing file is not an error.
func (c *Config) LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	if host := os.Getenv(EnvHost); host != "" {
		c.Host = host
	}
	if seq := os.Getenv(EnvSequence); seq != "" {
		c.SequencePath = seq
	}
	return nil
}

// Apply copies flag values over env and default values
func (c *Config) Apply() {
	if c.Flags.Host != "" {
		c.Host = c.Flags.Host
	}
	if c.Flags.Sequence != "" {
		c.SequencePath = c.Flags.Sequence
	}
	if c.Flags.ListenAddr != "" {
		c.ListenAddr = c.Flags.ListenAddr
	}
}

// Target returns host:port of the relay server
func (c *Config) Target() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
