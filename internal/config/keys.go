package config

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keys []string

type KeyMappings[T any] struct {
	Up       T `toml:"up"`
	Down     T `toml:"down"`
	PageUp   T `toml:"page_up"`
	PageDown T `toml:"page_down"`
	Top      T `toml:"top"`
	Bottom   T `toml:"bottom"`
	Details  T `toml:"details"`
	Copy     T `toml:"copy"`
	Filter   T `toml:"filter"`
	Apply    T `toml:"apply"`
	Cancel   T `toml:"cancel"`
	Quit     T `toml:"quit"`
}

func (c *Config) GetKeyMap() KeyMappings[key.Binding] {
	k := c.Keys
	return KeyMappings[key.Binding]{
		Up:       binding(k.Up, "up"),
		Down:     binding(k.Down, "down"),
		PageUp:   binding(k.PageUp, "page up"),
		PageDown: binding(k.PageDown, "page down"),
		Top:      binding(k.Top, "top"),
		Bottom:   binding(k.Bottom, "bottom"),
		Details:  binding(k.Details, "details"),
		Copy:     binding(k.Copy, "copy row"),
		Filter:   binding(k.Filter, "filter"),
		Apply:    binding(k.Apply, "apply"),
		Cancel:   binding(k.Cancel, "cancel"),
		Quit:     binding(k.Quit, "quit"),
	}
}

func binding(k keys, help string) key.Binding {
	if len(k) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(k...), key.WithHelp(strings.Join(k, "/"), help))
}
