package constants

// TextAlign is the placement of the segment inside the available columns.
type TextAlign string

const (
	// Flat setting keys. Timezone definitions use SettingTimezonePrefix
	// followed by a digit (timezone1..timezone9).
	SettingTimezonePrefix   = "timezone"
	SettingDefaultTimezone  = "default_timezone"
	SettingLegacyDefault    = "defalut_timezone"
	SettingDateFormat       = "date_format"
	SettingTimeFormat       = "time_format"
	SettingBackgroundColor  = "background_color"
	SettingForegroundColor  = "foreground_color"
	SettingPaneColor        = "pane_color"
	SettingEnableRightClick = "enable_right_click"
	SettingArrowSeparator   = "arrow_separator"
	SettingPaddingAdjust    = "padding_adjust"
	SettingTextAlign        = "text_align"
	SettingEnableDebug      = "enable_debug"

	// Tree document nodes
	NodeTimezone = "timezone"
	NodeDefine   = "define"

	MaxFlatTimezones = 9

	// Text alignment values
	AlignRight  TextAlign = "right"
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"

	// Default Settings Values
	DefaultTimezoneLabel  = "UTC"
	DefaultDateFormat     = "%Y-%m-%d %a"
	DefaultTimeFormat     = "%H:%M"
	DefaultSeparator1     = "\ue0b2"
	DefaultSeparator2     = "\ue0b3"
	DefaultSeparator3     = "\ue0b3"
	DefaultPaddingAdjust  = 0
	DefaultTextAlign      = AlignRight
	DefaultRightClick     = false
	DefaultDebug          = false
	DefaultSegmentSpacing = 9 // lead(2) + mid(3) + mid(3) + trailing space(1), all half width
)

// Default colors as 8-bit RGB triples.
var (
	DefaultBackgroundColor = [3]uint8{32, 32, 32}
	DefaultForegroundColor = [3]uint8{240, 240, 240}
	DefaultPaneColor       = [3]uint8{16, 16, 16}
)
