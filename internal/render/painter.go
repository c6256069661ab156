package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/julianstephens/zoneline/internal/config"
)

// Painter wraps text in color control sequences.
type Painter interface {
	Paint(text string, fg, bg config.RGB, bold bool) string
}

// ANSI paints with terminal escape sequences through lipgloss.
type ANSI struct {
	r *lipgloss.Renderer
}

// NewANSI returns a painter writing for w with the given color profile.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &ANSI{r: r}
}

func (a *ANSI) Paint(text string, fg, bg config.RGB, bold bool) string {
	if text == "" {
		return ""
	}
	return a.r.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Bold(bold).
		Render(text)
}

// Tmux paints with tmux status line style markup.
type Tmux struct{}

func (Tmux) Paint(text string, fg, bg config.RGB, bold bool) string {
	if text == "" {
		return ""
	}
	attr := "nobold"
	if bold {
		attr = "bold"
	}
	var b strings.Builder
	b.WriteString("#[fg=")
	b.WriteString(fg.Hex())
	b.WriteString(",bg=")
	b.WriteString(bg.Hex())
	b.WriteString(",")
	b.WriteString(attr)
	b.WriteString("]")
	b.WriteString(strings.ReplaceAll(text, "#", "##"))
	b.WriteString("#[default]")
	return b.String()
}

// Plain leaves text unpainted.
type Plain struct{}

func (Plain) Paint(text string, _, _ config.RGB, _ bool) string {
	return text
}
