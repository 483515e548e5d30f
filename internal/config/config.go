// Package config loads the server configuration from flags and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/takashabe/learningsuite-mcp/internal/learningsuite"
)

// ErrMissingAPIKey is returned by Load when no API key was supplied.
var ErrMissingAPIKey = errors.New("LEARNINGSUITE_API_KEY is required")

// Config is the immutable process configuration.
type Config struct {
	APIKey    string `name:"api-key" env:"LEARNINGSUITE_API_KEY" help:"LearningSuite API key."`
	BaseURL   string `name:"base-url" env:"LEARNINGSUITE_BASE_URL" help:"LearningSuite API root." default:"${default_base_url}"`
	Transport string `name:"transport" env:"MCP_TRANSPORT" help:"MCP transport (stdio or streamable-http)." enum:"stdio,streamable-http" default:"stdio"`
	Addr      string `name:"addr" env:"MCP_HTTP_ADDR" help:"Listen address for the streamable-http transport." default:":8080"`

	Name    string `name:"name" help:"Server name reported to MCP clients." default:"learningsuite-mcp"`
	Version string `name:"version" help:"Server version reported to MCP clients." default:"1.0.0"`

	LogLevel  string `name:"log-level" env:"LOG_LEVEL" help:"Log level." enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" env:"LOG_FORMAT" help:"Log format." enum:"console,json" default:"console"`
}

// Load parses args (without the program name) and the environment.
func Load(args []string, options ...kong.Option) (*Config, error) {
	var cfg Config

	options = append([]kong.Option{
		kong.Name("learningsuite-mcp"),
		kong.Description("MCP server exposing the LearningSuite REST API as tools."),
		kong.Vars{"default_base_url": learningsuite.DefaultBaseURL},
	}, options...)

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build flag parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	return nil
}

// String renders the configuration with the API key masked.
func (c *Config) String() string {
	return fmt.Sprintf("transport=%s addr=%s base_url=%s api_key=%s",
		c.Transport, c.Addr, c.BaseURL, mask(c.APIKey))
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
