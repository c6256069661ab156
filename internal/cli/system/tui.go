package system

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/controller"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/render"
	"github.com/julianstephens/zoneline/internal/tui"
	"github.com/julianstephens/zoneline/internal/watch"
)

type TuiCmd struct {
	NoMouse     bool `help:"Disable mouse navigation." name:"no-mouse"`
	NoWatch     bool `help:"Do not reload when the config file changes." name:"no-watch"`
	PauseOnBlur bool `help:"Stop the clock while the terminal is unfocused." name:"pause-on-blur"`
}

func (c *TuiCmd) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if !c.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if c.PauseOnBlur {
		opts = append(opts, tea.WithReportFocus())
	}
	return opts
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.OpenStore()

	// Query the palette before bubbletea takes over the terminal.
	out := termenv.NewOutput(os.Stdout)
	theme := render.DetectTheme(out)
	painter := render.NewANSI(os.Stdout, out.EnvColorProfile())

	// A broken config still shows the segment on defaults; the error is
	// kept for the status line.
	ctrl, loadErr := ctx.NewController(painter, controller.WithTheme(theme))
	model := tui.NewModel(ctrl, tui.Options{
		Load:        ctx.ReadInput,
		Store:       ctx.Store,
		LoadErr:     loadErr,
		PauseOnBlur: c.PauseOnBlur,
	})
	p := tea.NewProgram(model, c.programOptions()...)

	if !c.NoWatch {
		if path := ctx.ConfigFile(); path != "" {
			w, err := watch.New(path, watch.DefaultDebounce)
			if err != nil {
				logger.Warn("config watch disabled", "error", err)
			} else {
				defer w.Close()
				wctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				go func() {
					_ = w.Run(wctx, func() { p.Send(tui.ReloadMsg{}) })
				}()
			}
		}
	}

	_, err := p.Run()
	return err
}
