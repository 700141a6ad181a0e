package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed default/config.toml
var DefaultConfig string

// Current is the configuration every model reads from. It starts with the
// embedded defaults and is replaced by Load.
var Current = mustDefault()

type Config struct {
	List   ListConfig             `toml:"list"`
	Scroll ScrollConfig           `toml:"scroll"`
	Demo   DemoConfig             `toml:"demo"`
	Keys   KeyMappings[keys]      `toml:"keys"`
	Colors map[string]ColorConfig `toml:"colors"`
}

type ListConfig struct {
	ItemHeight int  `toml:"item_height"`
	Header     bool `toml:"header"`
}

type ScrollConfig struct {
	Velocity   float64 `toml:"velocity"`
	WheelLines int     `toml:"wheel_lines"`
}

type DemoConfig struct {
	Count int   `toml:"count"`
	Seed  int64 `toml:"seed"`
}

type ColorConfig struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// Load merges the file at path on top of the defaults. An empty path looks
// for the file in the user's config directory and silently falls back to
// the defaults when there is none.
func Load(path string) (*Config, error) {
	c, err := parse(DefaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, "default config")
	}

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.List.ItemHeight <= 0 {
		return errors.Errorf("list.item_height must be positive, got %d", c.List.ItemHeight)
	}
	if !(c.Scroll.Velocity > 0) {
		return errors.Errorf("scroll.velocity must be positive, got %v", c.Scroll.Velocity)
	}
	if c.Scroll.WheelLines <= 0 {
		return errors.Errorf("scroll.wheel_lines must be positive, got %d", c.Scroll.WheelLines)
	}
	if c.Demo.Count < 0 {
		return errors.Errorf("demo.count must not be negative, got %d", c.Demo.Count)
	}
	return nil
}

func parse(data string) (*Config, error) {
	c := &Config{}
	if _, err := toml.Decode(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func mustDefault() *Config {
	c, err := parse(DefaultConfig)
	if err != nil {
		panic(errors.Wrap(err, "default config"))
	}
	return c
}

func defaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "flatlist", "config.toml")
}
