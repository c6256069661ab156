package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/controller"
	"github.com/julianstephens/zoneline/internal/render"
	"github.com/julianstephens/zoneline/internal/storage"
)

// Loader reads the current configuration document.
type Loader func() (config.Input, error)

// TickMsg carries the instant of a scheduled clock tick.
type TickMsg time.Time

// ReloadMsg asks the model to read the configuration again. The config
// watcher posts it through Program.Send.
type ReloadMsg struct{}

// ThemeMsg reports a change of terminal palette.
type ThemeMsg render.Theme

type Options struct {
	Load  Loader
	Store storage.Provider
	// LoadErr is the error from reading the configuration at startup.
	LoadErr error
	// PauseOnBlur stops the clock while the terminal is unfocused.
	PauseOnBlur bool
}

type Model struct {
	ctrl        *controller.Controller
	load        Loader
	store       storage.Provider
	pauseOnBlur bool

	keys     KeyMap
	help     help.Model
	showHelp bool

	line     string
	status   string
	warn     bool
	quitting bool
}

func NewModel(ctrl *controller.Controller, opts Options) Model {
	m := Model{
		ctrl:        ctrl,
		load:        opts.Load,
		store:       opts.Store,
		pauseOnBlur: opts.PauseOnBlur,
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	if opts.LoadErr != nil {
		m.status = loadErrStatus(opts.LoadErr)
		m.warn = true
	}
	return m
}

func loadErrStatus(err error) string {
	return fmt.Sprintf("config: %v", err)
}

func (m Model) Init() tea.Cmd {
	return m.schedule(m.ctrl.Dispatch(controller.Visible{Visible: true}))
}

func tickAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
