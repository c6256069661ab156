package tui

import "strings"

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.showHelp {
		return m.line
	}

	var b strings.Builder
	b.WriteString(m.line)
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	if m.status != "" {
		b.WriteString("\n")
		if m.warn {
			b.WriteString(warningStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}
	return b.String()
}
