package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/cli/segment"
	"github.com/julianstephens/zoneline/internal/cli/system"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/errors"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string            `help:"Config file (TOML or YAML). Defaults to config.toml, config.yaml or config.yml in the config directory." type:"path"`
	State   string            `help:"State database path." type:"path"`
	Debug   bool              `help:"Log debug output."`
	Set     map[string]string `help:"Set a flat setting, e.g. --set timezone1=UTC/0. Repeatable. Any --set or ZONELINE_* value replaces the whole config file, timezones included." placeholder:"KEY=VALUE"`

	Tui    system.TuiCmd     `cmd:"" help:"Show the segment in the terminal." default:"1"`
	Render segment.RenderCmd `cmd:"" help:"Print the segment once (for tmux or shell prompts)."`
	Next   segment.NextCmd   `cmd:"" help:"Select the next timezone."`
	Prev   segment.PrevCmd   `cmd:"" help:"Select the previous timezone."`
	Reset  segment.ResetCmd  `cmd:"" help:"Select the default timezone."`
	List   segment.ListCmd   `cmd:"" help:"List the timezone table."`
	Doctor system.DoctorCmd  `cmd:"" help:"Check configuration and state."`
	Init   system.InitCmd    `cmd:"" help:"Write a starter config file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Timezone clock segment for terminals and status lines"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// The TUI owns the terminal, so its logs only go to the file.
	if err := logger.Init(logger.Config{
		Debug:  CLI.Debug,
		Quiet:  ctx.Command() == "tui",
		LogDir: cli.DefaultLogDir(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	statePath := CLI.State
	if statePath == "" {
		statePath = cli.DefaultStatePath()
	}
	store := sqlite.NewStore(statePath)

	appCtx := &cli.Context{
		ConfigPath: CLI.Config,
		ConfigDir:  cli.DefaultConfigDir(),
		Overrides:  CLI.Set,
		EnvPrefix:  constants.EnvPrefix,
		Debug:      CLI.Debug,
		Store:      store,
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("failed to close state store", "error", cerr)
	}
	errors.Fatal(err)
}
