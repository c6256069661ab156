package segment

import (
	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/logger"
)

type RenderCmd struct {
	Cols   int    `help:"Columns to fill. 0 disables padding." default:"0"`
	Format string `help:"Output markup." enum:"ansi,tmux" default:"ansi"`
	Color  string `help:"When to color ANSI output." enum:"auto,always,never" default:"auto"`
	Label  string `help:"Timezone to show instead of the saved selection."`
}

func (c *RenderCmd) Run(ctx *cli.Context) error {
	ctx.OpenStore()
	ctrl, _ := ctx.NewController(ctx.Painter(c.Format, cli.ColorMode(c.Color)))
	if c.Label != "" && !ctrl.Select(c.Label) {
		logger.Warn("unknown timezone, showing current selection", "label", c.Label, "selected", ctrl.Selected())
	}
	ctx.Tick(ctrl)
	ctx.Printf("%s\n", ctrl.View(c.Cols))
	return nil
}
