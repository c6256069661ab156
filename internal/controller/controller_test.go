package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/render"
)

var instant = time.Date(2024, time.March, 9, 23, 45, 30, 0, time.UTC)

func newController(t *testing.T, flat map[string]string) *Controller {
	t.Helper()
	c := New(config.Default(), render.Plain{})
	if flat != nil {
		c.Dispatch(Loaded{Input: config.FlatFromMap(flat)})
	}
	return c
}

func TestViewEmptyBeforeFirstTick(t *testing.T) {
	c := newController(t, nil)
	if got := c.View(80); got != "" {
		t.Errorf("View() = %q, want empty before first tick", got)
	}
	c.Dispatch(Tick{Now: instant})
	got := c.View(0)
	for _, want := range []string{"UTC", "2024-03-09 Sat", "23:45"} {
		if !strings.Contains(got, want) {
			t.Errorf("View() = %q, want it to contain %q", got, want)
		}
	}
}

func TestVisibilitySchedulesTicks(t *testing.T) {
	c := New(config.Default(), render.Plain{}, WithInterval(30*time.Second))

	res := c.Dispatch(Visible{Visible: true})
	if !res.Schedule || res.After != 0 {
		t.Errorf("Visible(true) = %+v, want immediate schedule", res)
	}
	if res := c.Dispatch(Visible{Visible: true}); res.Schedule {
		t.Errorf("repeated Visible(true) = %+v, want no schedule", res)
	}

	res = c.Dispatch(Tick{Now: instant})
	if !res.Render || !res.Schedule || res.After != 30*time.Second {
		t.Errorf("first Tick = %+v, want render and schedule after 30s", res)
	}

	res = c.Dispatch(Tick{Now: instant.Add(10 * time.Second)})
	if res.Render {
		t.Error("Tick within the same minute should not render")
	}
	if !res.Schedule {
		t.Error("Tick while visible should reschedule")
	}

	res = c.Dispatch(Tick{Now: instant.Add(40 * time.Second)})
	if !res.Render {
		t.Error("Tick into the next minute should render")
	}

	c.Dispatch(Visible{Visible: false})
	res = c.Dispatch(Tick{Now: instant.Add(2 * time.Minute)})
	if res.Schedule {
		t.Error("Tick while hidden should not reschedule")
	}
}

func TestLoadedResetsSelection(t *testing.T) {
	c := newController(t, nil)
	c.Dispatch(Navigate{Direction: Next})
	if c.Selected() != "PDT" {
		t.Fatalf("Selected() = %q, want PDT", c.Selected())
	}

	res := c.Dispatch(Loaded{Input: config.FlatFromMap(map[string]string{
		"timezone1":        "UTC/0",
		"timezone2":        "JST/9",
		"default_timezone": "JST",
	})})
	if !res.Render {
		t.Error("Loaded should render")
	}
	if c.Selected() != "JST" {
		t.Errorf("Selected() = %q, want JST", c.Selected())
	}
	if !c.Report().TableReplaced {
		t.Error("Report().TableReplaced = false, want true")
	}

	c.Dispatch(Tick{Now: instant})
	if got := c.View(0); !strings.Contains(got, "08:45") || !strings.Contains(got, "2024-03-10 Sun") {
		t.Errorf("View() = %q, want JST date and time", got)
	}
}

func TestNavigateWraps(t *testing.T) {
	c := newController(t, nil)
	want := []string{"PDT", "JST", "UTC"}
	for _, w := range want {
		if res := c.Dispatch(Navigate{Direction: Next}); !res.Render {
			t.Errorf("Navigate(Next) to %s did not render", w)
		}
		if c.Selected() != w {
			t.Errorf("Selected() = %q, want %q", c.Selected(), w)
		}
	}
	c.Dispatch(Navigate{Direction: Previous})
	if c.Selected() != "JST" {
		t.Errorf("Previous from UTC = %q, want JST", c.Selected())
	}
	c.Dispatch(Navigate{Direction: Reset})
	if c.Selected() != "UTC" {
		t.Errorf("Reset = %q, want UTC", c.Selected())
	}
}

func TestNavigateSingleEntry(t *testing.T) {
	c := newController(t, map[string]string{"timezone1": "CET/1"})
	if res := c.Dispatch(Navigate{Direction: Next}); res.Render {
		t.Error("navigating a single entry table should not render")
	}
	if c.Selected() != "CET" {
		t.Errorf("Selected() = %q, want CET", c.Selected())
	}
}

func TestMouse(t *testing.T) {
	tests := []struct {
		name       string
		rightClick string
		buttons    []Button
		want       string
	}{
		{"left click advances", "", []Button{ButtonLeft}, "PDT"},
		{"wheel down advances", "", []Button{WheelDown, WheelDown}, "JST"},
		{"wheel up goes back", "", []Button{WheelUp}, "JST"},
		{"right click ignored by default", "", []Button{ButtonLeft, ButtonRight}, "PDT"},
		{"right click resets when enabled", "true", []Button{ButtonLeft, ButtonRight}, "UTC"},
		{"middle click ignored", "", []Button{ButtonMiddle}, "UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flat map[string]string
			if tt.rightClick != "" {
				flat = map[string]string{"enable_right_click": tt.rightClick}
			}
			c := newController(t, flat)
			for _, b := range tt.buttons {
				c.Dispatch(Mouse{Button: b})
			}
			if c.Selected() != tt.want {
				t.Errorf("Selected() = %q, want %q", c.Selected(), tt.want)
			}
		})
	}
}

func TestThemeChangedRebuildsStyle(t *testing.T) {
	c := New(config.Default(), render.Tmux{})
	c.Dispatch(Tick{Now: instant})
	if got := c.View(80); !strings.Contains(got, "#101010") {
		t.Errorf("View() = %q, want default pane color", got)
	}

	theme := render.Theme{Background: config.RGB{R: 0x12, G: 0x34, B: 0x56}, Known: true}
	if res := c.Dispatch(ThemeChanged{Theme: theme}); !res.Render {
		t.Error("ThemeChanged should render")
	}
	if got := c.View(80); !strings.Contains(got, "#123456") {
		t.Errorf("View() = %q, want theme pane color", got)
	}
	if res := c.Dispatch(ThemeChanged{Theme: theme}); res.Render {
		t.Error("unchanged theme should not render")
	}
}

func TestResized(t *testing.T) {
	c := newController(t, nil)
	if res := c.Dispatch(Resized{Cols: 60}); res.Render {
		t.Error("Resized before first tick should not render")
	}
	c.Dispatch(Tick{Now: instant})
	if res := c.Dispatch(Resized{Cols: 70}); !res.Render {
		t.Error("Resized should render")
	}
	if c.Cols() != 70 {
		t.Errorf("Cols() = %d, want 70", c.Cols())
	}
	if got := len([]rune(c.View(c.Cols()))); got != 70 {
		t.Errorf("View() has %d runes, want 70", got)
	}
}

func TestSelect(t *testing.T) {
	c := newController(t, nil)
	if !c.Select("JST") {
		t.Error("Select(JST) = false, want true")
	}
	if c.Selected() != "JST" {
		t.Errorf("Selected() = %q, want JST", c.Selected())
	}
	if c.Select("CET") {
		t.Error("Select(CET) = true, want false")
	}
	if c.Selected() != "JST" {
		t.Errorf("Selected() = %q after unknown select, want JST", c.Selected())
	}
}

func TestLoadedDebugLevel(t *testing.T) {
	if err := logger.Init(logger.Config{Quiet: true, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { logger.Logger = nil })

	tests := []struct {
		name  string
		force bool
		value string
		want  log.Level
	}{
		{"setting on", false, "true", log.DebugLevel},
		{"setting off", false, "false", log.WarnLevel},
		{"flag wins over setting", true, "false", log.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(config.Default(), render.Plain{}, WithDebug(tt.force))
			c.Dispatch(Loaded{Input: config.Flat{{Key: "enable_debug", Value: tt.value}}})
			if got := logger.Logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}
