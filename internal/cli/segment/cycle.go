package segment

import (
	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/controller"
	"github.com/julianstephens/zoneline/internal/render"
)

type NextCmd struct{}

func (c *NextCmd) Run(ctx *cli.Context) error {
	return move(ctx, controller.Next)
}

type PrevCmd struct{}

func (c *PrevCmd) Run(ctx *cli.Context) error {
	return move(ctx, controller.Previous)
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	return move(ctx, controller.Reset)
}

// move steps the saved selection and prints the new label.
func move(ctx *cli.Context, d controller.Direction) error {
	ctx.OpenStore()
	ctrl, _ := ctx.NewController(render.Plain{})
	ctrl.Dispatch(controller.Navigate{Direction: d})
	if err := ctx.SaveSelection(ctrl.Selected()); err != nil {
		return err
	}
	ctx.Printf("%s\n", ctrl.Selected())
	return nil
}
