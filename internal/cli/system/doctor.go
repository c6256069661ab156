package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/clock"
	"github.com/julianstephens/zoneline/internal/config"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Printf("Running diagnostics...\n\n")
	hasError := false

	// Check 1: config source
	if path := ctx.ConfigFile(); path != "" {
		ctx.Printf("✓ Config file: %s\n", path)
	} else {
		ctx.Printf("⊘ Config file: none found in %s, using defaults\n", ctx.ConfigDir)
	}

	// Check 2: config readable
	in, err := ctx.ReadInput()
	if err != nil {
		ctx.Printf("❌ Config parse: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Config parse: OK\n")
	}

	// Check 3: settings
	cfg := config.Default()
	report := cfg.Load(in)
	if len(report.Rejected) == 0 {
		ctx.Printf("✓ Settings: %d applied\n", len(report.Applied))
	} else {
		ctx.Printf("⚠ Settings: %d applied, %d ignored\n", len(report.Applied), len(report.Rejected))
		for _, r := range report.Rejected {
			ctx.Printf("   %s\n", r)
		}
	}

	// Check 4: timezone table
	labels := make([]string, 0, len(cfg.Entries()))
	for _, e := range cfg.Entries() {
		labels = append(labels, e.Label)
	}
	ctx.Printf("✓ Timezones: %s (default %s)\n", strings.Join(labels, ", "), cfg.DefaultLabel())

	// Check 5: clock
	if err := checkClock(ctx.Now()); err != nil {
		ctx.Printf("❌ Clock: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		st := cfg.Style()
		t := clock.InOffset(ctx.Now(), cfg.DefaultLabel(), cfg.OffsetOf(cfg.DefaultLabel()))
		ctx.Printf("✓ Clock: %s %s\n", clock.FormatDate(t, st.DateFormat), clock.FormatTime(t, st.TimeFormat))
	}

	// Check 6: state store (warning only)
	if err := checkState(ctx, cfg); err != nil {
		ctx.Printf("⚠ State store: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ State store: OK\n")
	}

	ctx.Printf("\n")
	if hasError {
		ctx.Printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Printf("All diagnostics passed!\n")
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkState(ctx *cli.Context, cfg *config.Config) error {
	if ctx.Store == nil {
		return fmt.Errorf("no state store configured")
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	label, err := ctx.Store.GetSelection()
	if err != nil {
		return err
	}
	if label != "" && !cfg.HasLabel(label) {
		return fmt.Errorf("saved selection %q is not in the timezone table", label)
	}
	return nil
}
