package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crel-dev/crel/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "crel.json"

	// DefaultPages is the default page document directory.
	DefaultPages = "pages"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultMaxDepth bounds element nesting when rendering page documents.
	DefaultMaxDepth = 256
)

// Config represents the complete crel.json configuration.
type Config struct {
	// Pages is the directory holding page documents (.yaml, .yml, .json).
	Pages string `json:"pages,omitempty"`

	// Output is the directory built pages are written to.
	Output string `json:"output,omitempty"`

	// MaxDepth bounds element nesting of rendered pages. Zero disables the
	// bound; unset means DefaultMaxDepth.
	MaxDepth *int `json:"maxDepth,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HotReload reloads connected browsers when a page changes.
	HotReload *bool `json:"hotReload,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics *bool `json:"metrics,omitempty"`

	// Ignore contains patterns the watcher skips.
	Ignore []string `json:"ignore,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's AWS region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from crel.json in the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E030").
				WithDetail("No crel.json found in " + filepath.Dir(path))
		}
		return nil, errors.New("E031").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E031").
			WithDetail("Failed to parse crel.json: " + err.Error()).
			WithSuggestion("Check that crel.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E031").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E031").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "." for
// configs that were not loaded from disk.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Pages == "" {
		c.Pages = DefaultPages
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.MaxDepth == nil {
		c.MaxDepth = intPtr(DefaultMaxDepth)
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.HotReload == nil {
		c.Dev.HotReload = boolPtr(true)
	}
	if c.Dev.Metrics == nil {
		c.Dev.Metrics = boolPtr(true)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E031").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return errors.New("E031").
			WithDetail("maxDepth must not be negative")
	}
	if strings.HasPrefix(c.Publish.Prefix, "/") {
		return errors.New("E031").
			WithDetail("publish.prefix must not start with '/'")
	}
	if c.Publish.Bucket != "" && c.Publish.Region == "" {
		return errors.New("E031").
			WithDetail("publish.region is required when publish.bucket is set")
	}
	return nil
}

// HotReloadEnabled reports whether the dev server reloads browsers.
func (c *Config) HotReloadEnabled() bool {
	return c.Dev.HotReload == nil || *c.Dev.HotReload
}

// MetricsEnabled reports whether the dev server exposes /metrics.
func (c *Config) MetricsEnabled() bool {
	return c.Dev.Metrics == nil || *c.Dev.Metrics
}

// NestingLimit returns the element nesting bound for rendered pages.
// Zero means unlimited.
func (c *Config) NestingLimit() int {
	if c.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.MaxDepth
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// PagesPath returns the page directory resolved against the config dir.
func (c *Config) PagesPath() string {
	return c.resolve(c.Pages)
}

// OutputPath returns the output directory resolved against the config dir.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// Exists reports whether dir contains a crel.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing crel.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E030").
				WithDetail("No crel.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its closest ancestor holding a crel.json. Without one, the defaults are
// returned relative to the working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		cfg := New()
		cfg.configPath = filepath.Join(wd, ConfigFileName)
		return cfg, nil
	}

	return Load(root)
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
