// Package controller owns the segment state and drives the configuration
// and renderer from host events.
package controller

import (
	"time"

	"github.com/julianstephens/zoneline/internal/clock"
	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/render"
)

// Controller is not safe for concurrent use. Hosts serialize events.
type Controller struct {
	cfg      *config.Config
	painter  render.Painter
	interval time.Duration
	debug    bool

	selected string
	theme    render.Theme
	style    *render.Style

	now      time.Time
	ticked   bool
	visible  bool
	cols     int
	lastText string
	report   config.LoadReport
}

type Option func(*Controller)

// WithInterval sets the delay between scheduled ticks.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.interval = d
	}
}

// WithTheme sets the terminal palette known at startup.
func WithTheme(th render.Theme) Option {
	return func(c *Controller) {
		c.theme = th
	}
}

// WithDebug keeps debug logging on regardless of enable_debug.
func WithDebug(on bool) Option {
	return func(c *Controller) {
		c.debug = on
	}
}

// New returns a Controller over cfg with the default label selected.
func New(cfg *config.Config, p render.Painter, opts ...Option) *Controller {
	c := &Controller{
		cfg:      cfg,
		painter:  p,
		interval: constants.TickInterval,
		selected: cfg.DefaultLabel(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch handles one event to completion.
func (c *Controller) Dispatch(ev Event) Result {
	switch e := ev.(type) {
	case Loaded:
		return c.load(e)
	case Visible:
		return c.setVisible(e.Visible)
	case Tick:
		return c.tick(e.Now)
	case ThemeChanged:
		if e.Theme != c.theme {
			c.theme = e.Theme
			c.style = nil
			return Result{Render: c.ticked}
		}
	case Mouse:
		return c.mouse(e.Button)
	case Navigate:
		return c.navigate(e.Direction)
	case Resized:
		if e.Cols != c.cols {
			c.cols = e.Cols
			return Result{Render: c.ticked}
		}
	}
	return Result{}
}

func (c *Controller) load(e Loaded) Result {
	c.report = c.cfg.Load(e.Input)
	c.selected = c.cfg.DefaultLabel()
	c.style = nil
	c.lastText = ""

	st := c.cfg.Style()
	logger.SetDebug(st.EnableDebug || c.debug)
	for _, r := range c.report.Rejected {
		logger.Warn("setting ignored", "key", r.Key, "value", r.Value, "reason", r.Reason)
	}
	logger.Debug("configuration loaded",
		"timezones", len(c.cfg.Entries()),
		"default", c.selected,
		"table_replaced", c.report.TableReplaced)
	return Result{Render: true}
}

func (c *Controller) setVisible(v bool) Result {
	was := c.visible
	c.visible = v
	if v && !was {
		return Result{Schedule: true}
	}
	return Result{}
}

func (c *Controller) tick(now time.Time) Result {
	c.now = now
	c.ticked = true

	res := Result{}
	if text := c.text(); text != c.lastText {
		c.lastText = text
		res.Render = true
	}
	if c.visible {
		res.Schedule = true
		res.After = c.interval
	}
	return res
}

func (c *Controller) mouse(b Button) Result {
	switch b {
	case ButtonLeft, WheelDown:
		return c.navigate(Next)
	case WheelUp:
		return c.navigate(Previous)
	case ButtonRight:
		if c.cfg.Style().EnableRightClick {
			return c.navigate(Reset)
		}
	}
	return Result{}
}

func (c *Controller) navigate(d Direction) Result {
	prev := c.selected
	switch d {
	case Next:
		c.selected = c.cfg.NextLabel(c.selected)
	case Previous:
		c.selected = c.cfg.PreviousLabel(c.selected)
	case Reset:
		c.selected = c.cfg.DefaultLabel()
	}
	if c.selected == prev {
		return Result{}
	}
	logger.Debug("timezone selected", "label", c.selected)
	c.lastText = c.text()
	return Result{Render: true}
}

// Select restores a persisted selection. Unknown labels leave the
// selection unchanged and report false.
func (c *Controller) Select(label string) bool {
	if !c.cfg.HasLabel(label) {
		return false
	}
	c.selected = label
	c.lastText = c.text()
	return true
}

// Selected returns the label currently shown.
func (c *Controller) Selected() string {
	return c.selected
}

// Report returns the outcome of the most recent configuration load.
func (c *Controller) Report() config.LoadReport {
	return c.report
}

// Config returns the configuration the controller drives.
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Cols returns the most recently reported width.
func (c *Controller) Cols() int {
	return c.cols
}

// View renders the segment for cols columns. It is empty until the first
// tick has supplied an instant.
func (c *Controller) View(cols int) string {
	if !c.ticked {
		return ""
	}
	if c.style == nil {
		c.style = render.NewStyle(c.cfg.Style(), c.theme, c.painter)
	}
	date, clk := c.fields()
	return c.style.Line(cols, c.selected, date, clk)
}

func (c *Controller) fields() (string, string) {
	st := c.cfg.Style()
	t := clock.InOffset(c.now, c.selected, c.cfg.OffsetOf(c.selected))
	return clock.FormatDate(t, st.DateFormat), clock.FormatTime(t, st.TimeFormat)
}

// text is the visible content; a change in it warrants a redraw.
func (c *Controller) text() string {
	if !c.ticked {
		return ""
	}
	date, clk := c.fields()
	return c.selected + "\x00" + date + "\x00" + clk
}
