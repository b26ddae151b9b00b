// Package config loads the site configuration from a TOML file.
//
// The server and the admin CLI share one config file so they always point at
// the same database. The file path comes from the VLOG_CONFIG environment
// variable, defaulting to "vlog.toml" in the working directory. A missing
// file is not an error — everything has a usable default for local
// development except SMTP, which simply disables outgoing mail until
// configured.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const envConfigPath = "VLOG_CONFIG"

// Server contains the HTTP listener and asset path configuration.
type Server struct {
	Port        int    `toml:"port"`
	TemplateDir string `toml:"template_dir"`
	StaticDir   string `toml:"static_dir"`
}

// Database contains the SQLite file location.
type Database struct {
	Path string `toml:"path"`
}

// SMTP contains the contact-form mail settings. Host left empty means the
// contact form logs instead of sending.
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	To       string `toml:"to"` // where contact-form messages are delivered
}

// Config is the root of the TOML document.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	SMTP     SMTP     `toml:"smtp"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{
			Port:        8080,
			TemplateDir: "web/templates",
			StaticDir:   "web/static",
		},
		Database: Database{
			Path: "data/vlog.db",
		},
		SMTP: SMTP{
			Port: 587,
		},
	}
}

// Path returns the config file location, honouring VLOG_CONFIG.
func Path() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	return "vlog.toml"
}

// Load reads the TOML file at path, layering it over the defaults.
// A missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	if c.SMTP.Host != "" && c.SMTP.To == "" {
		return errors.New("smtp.to is required when smtp.host is set")
	}
	return nil
}

// MailEnabled reports whether the contact form should attempt SMTP delivery.
func (c Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}
