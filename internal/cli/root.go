package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/julianstephens/zoneline/internal/clock"
	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/controller"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/render"
	"github.com/julianstephens/zoneline/internal/storage"
)

// Context is shared by every command.
type Context struct {
	// ConfigPath is an explicit config file. When empty the first config
	// file found in ConfigDir is used.
	ConfigPath string
	ConfigDir  string
	Overrides  map[string]string
	EnvPrefix  string
	Debug      bool

	Store storage.Provider
	Clock clock.Clock
	Out   io.Writer
}

func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

func DefaultStatePath() string {
	return filepath.Join(xdg.StateHome, constants.AppName, constants.StateFileName)
}

func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, constants.AppName, "logs")
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

// Now reads the context clock.
func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// ConfigFile returns the config file in use, or "" when there is none.
func (c *Context) ConfigFile() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return config.FindConfigFile(c.ConfigDir)
}

// ReadInput returns the configuration document to load. Flat settings from
// --set and the environment replace the config file when any are present.
func (c *Context) ReadInput() (config.Input, error) {
	flat, err := config.FlatSources(c.Overrides, c.EnvPrefix)
	if err != nil {
		return config.Flat{}, err
	}
	if len(flat) > 0 {
		return flat, nil
	}

	path := c.ConfigFile()
	if path == "" {
		return config.Flat{}, nil
	}
	tree, err := config.ReadTree(path)
	if err != nil {
		return config.Flat{}, err
	}
	return tree, nil
}

// NewController builds a controller over the current configuration and
// restores the persisted selection. A configuration that cannot be read is
// logged and returned as an error alongside a controller on defaults.
func (c *Context) NewController(p render.Painter, opts ...controller.Option) (*controller.Controller, error) {
	in, readErr := c.ReadInput()
	if readErr != nil {
		logger.Warn("failed to read configuration", "error", readErr)
	}

	opts = append(opts, controller.WithDebug(c.Debug))
	ctrl := controller.New(config.Default(), p, opts...)
	ctrl.Dispatch(controller.Loaded{Input: in})

	if c.Store != nil {
		if err := c.Store.SaveLoadedAt(c.Now()); err != nil {
			logger.Debug("failed to save load time", "error", err)
		}
		label, err := c.Store.GetSelection()
		switch {
		case err != nil:
			logger.Warn("failed to read selection", "error", err)
		case label != "" && !ctrl.Select(label):
			logger.Debug("saved selection not in timezone table", "label", label)
		}
	}
	return ctrl, readErr
}

// OpenStore initializes the state store. Commands keep working without
// state, so a failure is logged and the store is dropped.
func (c *Context) OpenStore() {
	if c.Store == nil {
		return
	}
	if err := c.Store.Init(); err != nil {
		logger.Warn("state store unavailable", "path", c.Store.Path(), "error", err)
		c.Store = nil
	}
}

// SaveSelection persists label when a store is open.
func (c *Context) SaveSelection(label string) error {
	if c.Store == nil {
		return nil
	}
	if err := c.Store.SaveSelection(label); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// Tick dispatches the current instant to ctrl.
func (c *Context) Tick(ctrl *controller.Controller) {
	ctrl.Dispatch(controller.Tick{Now: c.Now()})
}

// ColorMode selects when ANSI colors are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Painter returns the painter for output format and color mode.
func (c *Context) Painter(format string, mode ColorMode) render.Painter {
	if format == "tmux" {
		return render.Tmux{}
	}
	switch mode {
	case ColorNever:
		return render.Plain{}
	case ColorAlways:
		return render.NewANSI(c.out(), termenv.TrueColor)
	}
	f, ok := c.out().(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return render.Plain{}
	}
	return render.NewANSI(f, termenv.NewOutput(f).EnvColorProfile())
}
