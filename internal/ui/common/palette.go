package common

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/flatlist/flatlist/internal/config"
)

var DefaultPalette = NewPalette()

type Palette struct {
	styles map[string]lipgloss.Style
}

func NewPalette() *Palette {
	p := &Palette{styles: map[string]lipgloss.Style{}}
	p.Update(config.Current.Colors)
	return p
}

func (p *Palette) Update(colors map[string]config.ColorConfig) {
	for name, c := range colors {
		p.styles[name] = createStyle(c)
	}
}

// Get returns the style registered under name or the empty style.
func (p *Palette) Get(name string) lipgloss.Style {
	if s, ok := p.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func createStyle(c config.ColorConfig) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(lipgloss.Color(color(c.Fg)))
	}
	if c.Bg != "" {
		style = style.Background(lipgloss.Color(color(c.Bg)))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Underline {
		style = style.Underline(true)
	}
	if c.Reverse {
		style = style.Reverse(true)
	}
	return style
}

var ansiNames = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

func color(name string) string {
	if code, ok := ansiNames[name]; ok {
		return code
	}
	return name
}
