package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/timezone"
)

// Input is a configuration document accepted by Load: a Tree or a Flat.
type Input interface {
	isInput()
}

// Pair is one key/value of a flat configuration.
type Pair struct {
	Key   string
	Value string
}

// Flat is a key-ordered list of string settings. Keys are consumed in the
// order given; use FlatFromMap to get lexicographic order.
type Flat []Pair

func (Flat) isInput() {}

// FlatFromMap returns the pairs of m sorted by key.
func FlatFromMap(m map[string]string) Flat {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flat := make(Flat, 0, len(keys))
	for _, k := range keys {
		flat = append(flat, Pair{Key: k, Value: m[k]})
	}
	return flat
}

// Rejection records a setting that was ignored during a load.
type Rejection struct {
	Key    string
	Value  string
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s=%q: %s", r.Key, r.Value, r.Reason)
}

// LoadReport describes what a load changed.
type LoadReport struct {
	Applied       []string
	Rejected      []Rejection
	TableReplaced bool
	DefaultLabel  string
}

func (r *LoadReport) reject(key, value, reason string) {
	r.Rejected = append(r.Rejected, Rejection{Key: key, Value: value, Reason: reason})
}

// loadState is the representation independent result of reading an Input.
type loadState struct {
	candidates []timezone.Offset
	settings   []Pair
}

// Load applies in to the configuration. Every setting is validated on its
// own and malformed values leave the previous value in place. The timezone
// table is replaced only when in defines at least one valid entry. Load
// always leaves c in a valid state.
func (c *Config) Load(in Input) LoadReport {
	var report LoadReport
	var st loadState

	switch in := in.(type) {
	case Flat:
		st = readFlat(in, &report)
	case Tree:
		st = readTree(in, &report)
	}

	explicitDefault := ""
	defaultGiven := false
	for _, p := range st.settings {
		if p.Key == constants.SettingDefaultTimezone || p.Key == constants.SettingLegacyDefault {
			explicitDefault = strings.TrimSpace(p.Value)
			defaultGiven = true
			continue
		}
		if err := c.applySetting(p.Key, p.Value); err != nil {
			report.reject(p.Key, p.Value, err.Error())
			continue
		}
		report.Applied = append(report.Applied, p.Key)
	}

	if c.table.Replace(st.candidates) {
		report.TableReplaced = true
		c.defaultLabel = c.table.First()
	}
	if defaultGiven {
		if c.table.Contains(explicitDefault) {
			c.defaultLabel = explicitDefault
			report.Applied = append(report.Applied, constants.SettingDefaultTimezone)
		} else {
			// The default stays at the first entry of a replaced table, or
			// at its prior value when the table was kept.
			report.reject(constants.SettingDefaultTimezone, explicitDefault, "label not in timezone table")
		}
	}
	report.DefaultLabel = c.defaultLabel
	return report
}

// readFlat splits flat pairs into timezone candidates and other settings.
func readFlat(in Flat, report *LoadReport) loadState {
	var st loadState
	for _, p := range in {
		if isFlatTimezoneKey(p.Key) {
			off, err := parseFlatTimezone(p.Value)
			if err != nil {
				report.reject(p.Key, p.Value, err.Error())
				continue
			}
			st.candidates = append(st.candidates, off)
			continue
		}
		st.settings = append(st.settings, p)
	}
	return st
}

// isFlatTimezoneKey reports whether key is timezone1 through timezone9.
func isFlatTimezoneKey(key string) bool {
	n, ok := strings.CutPrefix(key, constants.SettingTimezonePrefix)
	if !ok || len(n) != 1 {
		return false
	}
	d := n[0] - '0'
	return d >= 1 && d <= constants.MaxFlatTimezones
}

// parseFlatTimezone parses "<label>/<offset>".
func parseFlatTimezone(v string) (timezone.Offset, error) {
	parts := strings.Split(v, "/")
	if len(parts) != 2 {
		return timezone.Offset{}, fmt.Errorf("want <label>/<offset>")
	}
	label := strings.TrimSpace(parts[0])
	if label == "" {
		return timezone.Offset{}, fmt.Errorf("empty label")
	}
	off, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return timezone.Offset{}, fmt.Errorf("invalid offset %q", parts[1])
	}
	return timezone.Offset{Label: label, Offset: off}, nil
}

// applySetting validates one display setting and stores it.
func (c *Config) applySetting(key, value string) error {
	s := &c.style
	switch key {
	case constants.SettingDateFormat:
		if value == "" {
			return fmt.Errorf("empty format")
		}
		s.DateFormat = value
	case constants.SettingTimeFormat:
		if value == "" {
			return fmt.Errorf("empty format")
		}
		s.TimeFormat = value
	case constants.SettingBackgroundColor:
		return setColor(&s.Background, value)
	case constants.SettingForegroundColor:
		return setColor(&s.Foreground, value)
	case constants.SettingPaneColor:
		if err := setColor(&s.Pane, value); err != nil {
			return err
		}
		s.PaneFromTheme = false
	case constants.SettingEnableRightClick:
		return setBool(&s.EnableRightClick, value)
	case constants.SettingEnableDebug:
		return setBool(&s.EnableDebug, value)
	case constants.SettingPaddingAdjust:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("not an integer")
		}
		s.PaddingAdjust = n
	case constants.SettingTextAlign:
		align, ok := parseAlign(value)
		if !ok {
			return fmt.Errorf("want right, left or center")
		}
		s.TextAlign = align
	default:
		idx, ok := separatorIndex(key)
		if !ok {
			return fmt.Errorf("unknown setting")
		}
		s.Separators[idx] = firstChar(value)
	}
	return nil
}

func setColor(dst *RGB, value string) error {
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func setBool(dst *bool, value string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("not a boolean")
	}
	*dst = b
	return nil
}

func parseAlign(v string) (constants.TextAlign, bool) {
	switch a := constants.TextAlign(strings.ToLower(strings.TrimSpace(v))); a {
	case constants.AlignRight, constants.AlignLeft, constants.AlignCenter:
		return a, true
	}
	return "", false
}

// separatorIndex maps arrow_separator1..3 to 0..2.
func separatorIndex(key string) (int, bool) {
	n, ok := strings.CutPrefix(key, constants.SettingArrowSeparator)
	if !ok || len(n) != 1 || n[0] < '1' || n[0] > '3' {
		return 0, false
	}
	return int(n[0] - '1'), true
}

// firstChar returns the first character of s, or "" for an empty string.
func firstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
