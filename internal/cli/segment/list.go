package segment

import (
	"strconv"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/clock"
	"github.com/julianstephens/zoneline/internal/render"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	ctx.OpenStore()
	ctrl, _ := ctx.NewController(render.Plain{})
	cfg := ctrl.Config()
	style := cfg.Style()
	now := ctx.Now()

	ctx.Printf("Timezones:\n")
	for _, e := range cfg.Entries() {
		marker := " "
		if e.Label == ctrl.Selected() {
			marker = ">"
		}
		def := ""
		if e.Label == cfg.DefaultLabel() {
			def = " (default)"
		}
		t := clock.InOffset(now, e.Label, e.Offset)
		ctx.Printf("%s %-8s UTC%-6s %s %s%s\n",
			marker, e.Label, FormatOffset(e.Offset),
			clock.FormatDate(t, style.DateFormat), clock.FormatTime(t, style.TimeFormat), def)
	}
	return nil
}

// FormatOffset renders hours with an explicit sign, e.g. +9, -3.5, +0.
func FormatOffset(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if hours >= 0 {
		return "+" + s
	}
	return s
}
