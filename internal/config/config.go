package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vango-dev/pagelayout/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pagelayout.json"

	// ConfigFileNameYAML is the YAML alternative to ConfigFileName.
	ConfigFileNameYAML = "pagelayout.yaml"

	// EnvFileName is the optional dotenv file read next to the config.
	EnvFileName = ".env"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTitle is the default document title.
	DefaultTitle = "Page Layout"

	// DefaultObject is the default object name used when publishing.
	DefaultObject = "index.html"

	// DefaultShutdownTimeout bounds graceful server shutdown.
	DefaultShutdownTimeout = "10s"
)

// Environment variables that override file settings.
const (
	EnvHost     = "PAGELAYOUT_HOST"
	EnvPort     = "PAGELAYOUT_PORT"
	EnvBucket   = "PAGELAYOUT_BUCKET"
	EnvRegion   = "PAGELAYOUT_REGION"
	EnvLogLevel = "PAGELAYOUT_LOG_LEVEL"
)

// Config represents the complete pagelayout.json configuration.
type Config struct {
	// Title is the document title of the rendered page.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Indent is the indentation unit when Pretty is set.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the target S3 bucket.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Region is the AWS region. Empty uses the SDK's default resolution.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Object is the object name of the rendered page.
	Object string `json:"object,omitempty" yaml:"object,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled turns off the /metrics endpoint.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for pagelayout.json, then pagelayout.yaml.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if errors.Code(err) != "E141" {
		return cfg, err
	}
	cfg, yerr := LoadFile(filepath.Join(dir, ConfigFileNameYAML))
	if errors.Code(yerr) == "E141" {
		return nil, err
	}
	return cfg, yerr
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadOrDefault is like Load but returns defaults when the directory has no
// pagelayout.json. Other failures are still reported.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Code(err) == "E141" {
		cfg = New()
		cfg.configPath = filepath.Join(dir, ConfigFileName)
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without one to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		name := filepath.Base(path)
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + name + ": " + err.Error()).
			WithSuggestion("Check that " + name + " is well formed")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadEnv loads the .env file next to the config, if any, into the process
// environment and then applies overrides from it.
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.Dir(), EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return errors.New("E120").
				WithDetail("Failed to read " + envPath).
				Wrap(err)
		}
	}
	return c.ApplyEnv(os.Getenv)
}

// ApplyEnv overrides settings from environment variables looked up via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E122").
				WithDetailf("%s=%q is not a number.", EnvPort, v).
				Wrap(err)
		}
		c.Server.Port = port
	}
	if v := getenv(EnvBucket); v != "" {
		c.Publish.Bucket = v
	}
	if v := getenv(EnvRegion); v != "" {
		c.Publish.Region = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path. Paths ending in
// .yaml or .yml are written as YAML.
func (c *Config) SaveTo(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Lang == "" {
		c.Lang = "en"
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}

	if c.Publish.Object == "" {
		c.Publish.Object = DefaultObject
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "pagelayout"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetailf("Port must be between 0 and 65535, got %d.", c.Server.Port)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E120").
			WithDetailf("server.shutdownTimeout %q is not a duration.", c.Server.ShutdownTimeout).
			Wrap(err)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E123").
			WithDetailf("Unknown log level %q.", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E123").
			WithDetailf("Unknown log format %q.", c.Log.Format)
	}
	return nil
}

// Address returns the listen address of the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the preview server URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ShutdownTimeout returns the parsed shutdown timeout, falling back to the
// default when the configured value is invalid.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// ObjectKey returns the S3 key of the published page.
func (c *Config) ObjectKey() string {
	return c.Publish.Prefix + c.Publish.Object
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger builds a slog.Logger writing to w per the log settings.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
