// Package render composes the painted status segment.
package render

import (
	"strings"

	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/constants"
)

// Theme is the live terminal palette. Background feeds the pane color when
// the configuration does not pin one.
type Theme struct {
	Foreground config.RGB
	Background config.RGB
	Known      bool
}

// Style holds the separators painted once per theme or configuration
// change, and the columns they occupy.
type Style struct {
	painter Painter
	align   constants.TextAlign
	fg      config.RGB
	bg      config.RGB
	pane    config.RGB

	lead  string
	mid1  string
	mid2  string
	space string
	width int
}

// NewStyle paints the separators for settings under theme.
func NewStyle(s config.StyleSettings, theme Theme, p Painter) *Style {
	pane := s.Pane
	if s.PaneFromTheme && theme.Known {
		pane = theme.Background
	}
	st := &Style{
		painter: p,
		align:   s.TextAlign,
		fg:      s.Foreground,
		bg:      s.Background,
		pane:    pane,
	}

	space := p.Paint(" ", s.Background, s.Background, false)
	sep1 := p.Paint(s.Separators[0], s.Background, pane, true)
	sep2 := p.Paint(s.Separators[1], pane, s.Background, true)
	sep3 := p.Paint(s.Separators[2], pane, s.Background, true)

	if s.TextAlign == constants.AlignLeft {
		st.lead = space + sep1
	} else {
		st.lead = sep1 + space
	}
	st.mid1 = space + sep2 + space
	st.mid2 = space + sep3 + space
	st.space = space
	// Separators are assumed half width; padding_adjust corrects for
	// glyphs that are not.
	st.width = constants.DefaultSegmentSpacing + s.PaddingAdjust
	return st
}

// Width is the number of columns taken by separators and spacing.
func (st *Style) Width() int {
	return st.width
}

// Pane returns the color used behind the padding.
func (st *Style) Pane() config.RGB {
	return st.pane
}

// Line lays out label, date and clock in cols columns.
func (st *Style) Line(cols int, label, date, clock string) string {
	occupied := ContentWidth(label, date, clock) + st.width
	pad := Padding(cols, occupied)
	if st.align == constants.AlignCenter {
		// An odd remainder loses one column.
		pad /= 2
	}

	padding := ""
	if pad > 0 {
		padding = st.painter.Paint(strings.Repeat(" ", pad), st.fg, st.pane, false)
	}
	tz := st.painter.Paint(label, st.fg, st.bg, false)
	d := st.painter.Paint(date, st.fg, st.bg, false)
	t := st.painter.Paint(clock, st.fg, st.bg, false)

	var b strings.Builder
	switch st.align {
	case constants.AlignLeft:
		b.WriteString(st.space)
		b.WriteString(tz)
		b.WriteString(st.mid1)
		b.WriteString(d)
		b.WriteString(st.mid2)
		b.WriteString(t)
		b.WriteString(st.lead)
		b.WriteString(padding)
	case constants.AlignCenter:
		b.WriteString(padding)
		b.WriteString(st.lead)
		b.WriteString(tz)
		b.WriteString(st.mid1)
		b.WriteString(d)
		b.WriteString(st.mid2)
		b.WriteString(t)
		b.WriteString(padding)
	default:
		b.WriteString(padding)
		b.WriteString(st.lead)
		b.WriteString(tz)
		b.WriteString(st.mid1)
		b.WriteString(d)
		b.WriteString(st.mid2)
		b.WriteString(t)
		b.WriteString(st.space)
	}
	return b.String()
}

// ContentWidth approximates the columns taken by the three fields. Label
// characters count 1 when ASCII and 2 otherwise; date and clock count
// their length in bytes.
func ContentWidth(label, date, clock string) int {
	n := 0
	for _, r := range label {
		if r < 0x80 {
			n++
		} else {
			n += 2
		}
	}
	return n + len(date) + len(clock)
}

// Padding returns the free columns, or 0 when the content does not fit.
func Padding(cols, occupied int) int {
	if cols-occupied > 0 {
		return cols - occupied
	}
	return 0
}
