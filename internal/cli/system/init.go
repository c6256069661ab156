package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/timezone"
)

type InitCmd struct {
	Force       bool `help:"Overwrite an existing config file."`
	Interactive bool `help:"Answer a few questions instead of writing the defaults." short:"i"`
}

// starter is the layout of a generated config file.
type starter struct {
	DefaultTimezone  string       `toml:"default_timezone"`
	DateFormat       string       `toml:"date_format"`
	TimeFormat       string       `toml:"time_format"`
	TextAlign        string       `toml:"text_align"`
	EnableRightClick bool         `toml:"enable_right_click"`
	Timezone         starterZones `toml:"timezone"`
}

type starterZones struct {
	Define []starterZone `toml:"define"`
}

type starterZone struct {
	Name   string  `toml:"name"`
	Offset float64 `toml:"offset"`
}

func defaultStarter() starter {
	s := starter{
		DefaultTimezone: constants.DefaultTimezoneLabel,
		DateFormat:      constants.DefaultDateFormat,
		TimeFormat:      constants.DefaultTimeFormat,
		TextAlign:       string(constants.DefaultTextAlign),
	}
	for _, e := range timezone.NewTable(timezone.DefaultSeeds...).Entries() {
		s.Timezone.Define = append(s.Timezone.Define, starterZone{Name: e.Label, Offset: e.Offset})
	}
	return s
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.ConfigPath
	if path == "" {
		path = filepath.Join(ctx.ConfigDir, constants.ConfigFileName)
	}
	if filepath.Ext(path) != ".toml" {
		return fmt.Errorf("init writes TOML, got %s", path)
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing config: %w", err)
	}

	s := defaultStarter()
	if c.Interactive {
		zones := formatZones(s.Timezone.Define)
		if err := starterForm(&s, &zones).Run(); err != nil {
			return err
		}
		defs, err := parseZones(zones)
		if err != nil {
			return err
		}
		s.Timezone.Define = defs
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	tree, err := config.ReadTree(path)
	if err != nil {
		return err
	}
	cfg := config.Default()
	report := cfg.Load(tree)
	ctx.Printf("Wrote %s (%d timezones, default %s)\n", path, len(cfg.Entries()), report.DefaultLabel)

	ctx.OpenStore()
	if ctx.Store != nil {
		ctx.Printf("Initialized state at: %s\n", ctx.Store.Path())
	}
	return nil
}

func starterForm(s *starter, zones *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Timezones").
				Description("Comma separated label/offset pairs, e.g. UTC/0, JST/9").
				Value(zones).
				Validate(func(v string) error {
					_, err := parseZones(v)
					return err
				}),
			huh.NewInput().
				Title("Default timezone").
				Value(&s.DefaultTimezone).
				Validate(func(v string) error {
					defs, err := parseZones(*zones)
					if err != nil {
						return nil
					}
					for _, d := range defs {
						if d.Name == strings.TrimSpace(v) {
							return nil
						}
					}
					return fmt.Errorf("%q is not one of the timezones above", v)
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date format").
				Description("strftime, e.g. %Y-%m-%d %a").
				Value(&s.DateFormat),
			huh.NewInput().
				Title("Time format").
				Description("strftime, e.g. %H:%M").
				Value(&s.TimeFormat),
			huh.NewSelect[string]().
				Title("Alignment").
				Options(
					huh.NewOption("Right", string(constants.AlignRight)),
					huh.NewOption("Left", string(constants.AlignLeft)),
					huh.NewOption("Center", string(constants.AlignCenter)),
				).
				Value(&s.TextAlign),
			huh.NewConfirm().
				Title("Reset to the default timezone on right click?").
				Value(&s.EnableRightClick),
		),
	).WithTheme(huh.ThemeDracula())
}

func formatZones(defs []starterZone) string {
	parts := make([]string, len(defs))
	for i, d := range defs {
		parts[i] = d.Name + "/" + strconv.FormatFloat(d.Offset, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// parseZones reads "UTC/0, JST/9" into timezone definitions.
func parseZones(v string) ([]starterZone, error) {
	var defs []starterZone
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		label, off, ok := strings.Cut(part, "/")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("%q: want label/offset", part)
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(off), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: invalid offset", part)
		}
		defs = append(defs, starterZone{Name: label, Offset: hours})
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("at least one timezone is required")
	}
	return defs, nil
}
