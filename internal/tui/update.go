package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/zoneline/internal/controller"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.dispatch(controller.Resized{Cols: msg.Width})

	case TickMsg:
		return m.dispatch(controller.Tick{Now: time.Time(msg)})

	case ThemeMsg:
		return m.dispatch(controller.ThemeChanged{Theme: render.Theme(msg)})

	case ReloadMsg:
		return m.reload()

	case tea.FocusMsg:
		if m.pauseOnBlur {
			return m.dispatch(controller.Visible{Visible: true})
		}

	case tea.BlurMsg:
		if m.pauseOnBlur {
			return m.dispatch(controller.Visible{Visible: false})
		}

	case tea.MouseMsg:
		// Only the segment row reacts to the mouse.
		if msg.Y != 0 || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		return m.navigate(controller.Mouse{Button: mouseButton(msg.Button)})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.navigate(controller.Navigate{Direction: controller.Next})
		case key.Matches(msg, m.keys.Prev):
			return m.navigate(controller.Navigate{Direction: controller.Previous})
		case key.Matches(msg, m.keys.Reset):
			return m.navigate(controller.Navigate{Direction: controller.Reset})
		case key.Matches(msg, m.keys.Reload):
			return m.reload()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}
	return m, nil
}

func (m Model) dispatch(ev controller.Event) (tea.Model, tea.Cmd) {
	cmd := m.schedule(m.ctrl.Dispatch(ev))
	return m, cmd
}

// navigate dispatches a selection change and persists the new label.
func (m Model) navigate(ev controller.Event) (tea.Model, tea.Cmd) {
	before := m.ctrl.Selected()
	res := m.ctrl.Dispatch(ev)
	if after := m.ctrl.Selected(); after != before && m.store != nil {
		if err := m.store.SaveSelection(after); err != nil {
			logger.Warn("failed to save selection", "label", after, "error", err)
		}
	}
	cmd := m.schedule(res)
	return m, cmd
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.load == nil {
		return m, nil
	}
	in, err := m.load()
	if err != nil {
		logger.Warn("failed to read configuration", "error", err)
		m.status = loadErrStatus(err)
		m.warn = true
	}
	res := m.ctrl.Dispatch(controller.Loaded{Input: in})
	if err == nil {
		report := m.ctrl.Report()
		m.status = fmt.Sprintf("config reloaded: %d applied, %d ignored", len(report.Applied), len(report.Rejected))
		m.warn = len(report.Rejected) > 0
	}
	if m.store != nil {
		if err := m.store.SaveLoadedAt(time.Now()); err != nil {
			logger.Warn("failed to save load time", "error", err)
		}
	}
	cmd := m.schedule(res)
	return m, cmd
}

// schedule turns a controller result into bubbletea commands. The line is
// re-rendered here so View stays cheap.
func (m *Model) schedule(res controller.Result) tea.Cmd {
	if res.Render {
		m.line = m.ctrl.View(m.ctrl.Cols())
	}
	if res.Schedule {
		return tickAfter(res.After)
	}
	return nil
}

func mouseButton(b tea.MouseButton) controller.Button {
	switch b {
	case tea.MouseButtonLeft:
		return controller.ButtonLeft
	case tea.MouseButtonRight:
		return controller.ButtonRight
	case tea.MouseButtonMiddle:
		return controller.ButtonMiddle
	case tea.MouseButtonWheelUp:
		return controller.WheelUp
	case tea.MouseButtonWheelDown:
		return controller.WheelDown
	}
	return controller.ButtonNone
}
