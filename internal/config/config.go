// Package config holds the timezone table, the default label and the
// display settings of the segment, and applies configuration documents to
// them.
package config

import (
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/timezone"
)

// StyleSettings are the display settings of the segment.
type StyleSettings struct {
	Background RGB // date/time field background
	Foreground RGB
	Pane       RGB // padding and outer side of the lead separator
	// PaneFromTheme is true until a configuration sets pane_color; while
	// true the live terminal theme supplies the pane color.
	PaneFromTheme bool

	Separators    [3]string
	PaddingAdjust int
	TextAlign     constants.TextAlign
	DateFormat    string
	TimeFormat    string

	EnableRightClick bool
	EnableDebug      bool
}

// DefaultStyle returns the built-in display settings.
func DefaultStyle() StyleSettings {
	return StyleSettings{
		Background:    RGBFromTriple(constants.DefaultBackgroundColor),
		Foreground:    RGBFromTriple(constants.DefaultForegroundColor),
		Pane:          RGBFromTriple(constants.DefaultPaneColor),
		PaneFromTheme: true,
		Separators: [3]string{
			constants.DefaultSeparator1,
			constants.DefaultSeparator2,
			constants.DefaultSeparator3,
		},
		PaddingAdjust:    constants.DefaultPaddingAdjust,
		TextAlign:        constants.DefaultTextAlign,
		DateFormat:       constants.DefaultDateFormat,
		TimeFormat:       constants.DefaultTimeFormat,
		EnableRightClick: constants.DefaultRightClick,
		EnableDebug:      constants.DefaultDebug,
	}
}

// Config owns the timezone table and display settings. It is mutated only
// by Load.
type Config struct {
	table        *timezone.Table
	defaultLabel string
	style        StyleSettings
}

// New returns a Config with the given style defaults and a table holding
// UTC followed by seeds. The default label is the table's first entry.
func New(style StyleSettings, seeds ...timezone.Offset) *Config {
	t := timezone.NewTable(seeds...)
	return &Config{
		table:        t,
		defaultLabel: t.First(),
		style:        style,
	}
}

// Default returns a Config with the built-in style and seed timezones.
func Default() *Config {
	return New(DefaultStyle(), timezone.DefaultSeeds...)
}

func (c *Config) DefaultLabel() string {
	return c.defaultLabel
}

func (c *Config) OffsetOf(label string) float64 {
	return c.table.OffsetOf(label)
}

func (c *Config) NextLabel(label string) string {
	return c.table.Next(label)
}

func (c *Config) PreviousLabel(label string) string {
	return c.table.Previous(label)
}

func (c *Config) HasLabel(label string) bool {
	return c.table.Contains(label)
}

// Entries returns the timezone entries in cyclic order.
func (c *Config) Entries() []timezone.Offset {
	return c.table.Entries()
}

// Style returns a copy of the display settings.
func (c *Config) Style() StyleSettings {
	return c.style
}
