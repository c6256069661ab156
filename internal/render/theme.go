package render

import (
	"github.com/muesli/termenv"

	"github.com/julianstephens/zoneline/internal/config"
)

// ThemeFromColors builds a Theme from terminal colors. The theme is
// unknown when the terminal did not report a background.
func ThemeFromColors(fg, bg termenv.Color) Theme {
	if _, ok := bg.(termenv.NoColor); ok || bg == nil {
		return Theme{}
	}
	th := Theme{
		Background: config.FromColorful(termenv.ConvertToRGB(bg)),
		Foreground: config.RGBFromTriple([3]uint8{255, 255, 255}),
		Known:      true,
	}
	if _, ok := fg.(termenv.NoColor); !ok && fg != nil {
		th.Foreground = config.FromColorful(termenv.ConvertToRGB(fg))
	}
	return th
}

// DetectTheme asks the terminal behind out for its colors.
func DetectTheme(out *termenv.Output) Theme {
	return ThemeFromColors(out.ForegroundColor(), out.BackgroundColor())
}
