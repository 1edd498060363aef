package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tern/internal/input/key"
	"github.com/dshills/tern/internal/renderer/compositor"
)

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the complete editor configuration.
type Config struct {
	TabStop        int      `toml:"tab_stop"`
	QuitTimes      int      `toml:"quit_times"`
	MessageTimeout Duration `toml:"message_timeout"`
	PollTimeout    Duration `toml:"poll_timeout"`
	Watch          bool     `toml:"watch"`
	Script         string   `toml:"script"`

	Log    LogConfig    `toml:"log"`
	Keys   KeyConfig    `toml:"keys"`
	Status StatusConfig `toml:"status"`
}

// LogConfig configures the session log.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// KeyConfig names the control keys bound to editor commands.
type KeyConfig struct {
	Quit    string `toml:"quit"`
	Save    string `toml:"save"`
	Find    string `toml:"find"`
	Refresh string `toml:"refresh"`
}

// StatusConfig holds optional status bar colours.
type StatusConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Bindings are the control bytes resolved from KeyConfig.
type Bindings struct {
	Quit    byte
	Save    byte
	Find    byte
	Refresh byte
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TabStop:        8,
		QuitTimes:      3,
		MessageTimeout: Duration(5 * time.Second),
		PollTimeout:    Duration(100 * time.Millisecond),
		Watch:          true,
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeyConfig{
			Quit:    "Ctrl-Q",
			Save:    "Ctrl-S",
			Find:    "Ctrl-F",
			Refresh: "Ctrl-L",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tern/config.toml, falling back to
// ~/.config/tern/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tern", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tern", "config.toml")
}

// Load reads the configuration at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Script != "" && !filepath.IsAbs(cfg.Script) {
		cfg.Script = filepath.Join(filepath.Dir(path), cfg.Script)
	}
	return cfg, nil
}

// decode parses TOML data into c. Keys absent from data keep their
// current values.
func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(c)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		perr.Line, perr.Column = derr.Position()
	case errors.As(err, &serr) && len(serr.Errors) > 0:
		first := serr.Errors[0]
		perr.Line, perr.Column = first.Position()
		perr.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return perr
}

// Validate checks values that decode but cannot be used.
func (c *Config) Validate() error {
	if c.TabStop < 1 {
		return &ValidationError{Setting: "tab_stop", Value: c.TabStop, Err: ErrInvalidValue}
	}
	if c.QuitTimes < 1 {
		return &ValidationError{Setting: "quit_times", Value: c.QuitTimes, Err: ErrInvalidValue}
	}
	if c.MessageTimeout <= 0 {
		return &ValidationError{Setting: "message_timeout", Value: c.MessageTimeout.Std(), Err: ErrInvalidValue}
	}
	if c.PollTimeout <= 0 {
		return &ValidationError{Setting: "poll_timeout", Value: c.PollTimeout.Std(), Err: ErrInvalidValue}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Setting: "log.level", Value: c.Log.Level, Err: ErrInvalidValue}
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if _, err := c.StatusStyle(); err != nil {
		return err
	}
	return nil
}

// Bindings resolves the configured key names to control bytes. Two
// commands may not share a key.
func (c *Config) Bindings() (Bindings, error) {
	var b Bindings
	seen := make(map[byte]string)
	for _, k := range []struct {
		setting string
		name    string
		dst     *byte
	}{
		{"keys.quit", c.Keys.Quit, &b.Quit},
		{"keys.save", c.Keys.Save, &b.Save},
		{"keys.find", c.Keys.Find, &b.Find},
		{"keys.refresh", c.Keys.Refresh, &b.Refresh},
	} {
		v, err := key.ParseControl(k.name)
		if err != nil {
			return Bindings{}, &ValidationError{Setting: k.setting, Value: k.name, Err: err}
		}
		if prev, ok := seen[v]; ok {
			return Bindings{}, &ValidationError{
				Setting: k.setting,
				Value:   k.name,
				Err:     fmt.Errorf("%w: already bound by %s", ErrInvalidValue, prev),
			}
		}
		seen[v] = k.setting
		*k.dst = v
	}
	return b, nil
}

// StatusStyle builds the status bar style from the configured colours.
func (c *Config) StatusStyle() (compositor.StatusStyle, error) {
	s, err := compositor.ParseStatusStyle(c.Status.Foreground, c.Status.Background)
	if err != nil {
		return compositor.StatusStyle{}, &ValidationError{Setting: "status", Value: c.Status, Err: err}
	}
	return s, nil
}
