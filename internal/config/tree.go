package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/timezone"
)

// Tree is a structured configuration document. Timezones are declared
// under timezone.define, either as [label, offset] pairs or as tables with
// name (or label) and offset fields. Other settings are top-level scalars.
type Tree struct {
	k *koanf.Koanf
}

func (Tree) isInput() {}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// parserFor picks the koanf parser for a file name or format name.
func parserFor(name string) (koanf.Parser, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = strings.ToLower(name)
	}
	switch ext {
	case "toml":
		return toml.Parser(), nil
	case "yaml", "yml":
		return yaml.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config format %q", ext)
}

// ParseTree parses data in the given format ("toml" or "yaml").
func ParseTree(data []byte, format string) (Tree, error) {
	p, err := parserFor(format)
	if err != nil {
		return Tree{}, err
	}
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, p); err != nil {
		return Tree{}, fmt.Errorf("failed to parse %s config: %w", format, err)
	}
	return Tree{k: k}, nil
}

// ReadTree reads and parses the config file at path. The format follows
// the file extension.
func ReadTree(path string) (Tree, error) {
	p, err := parserFor(path)
	if err != nil {
		return Tree{}, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), p); err != nil {
		return Tree{}, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return Tree{k: k}, nil
}

// treeSettings are the scalar keys read from the top level of a tree.
var treeSettings = []string{
	constants.SettingDefaultTimezone,
	constants.SettingLegacyDefault,
	constants.SettingDateFormat,
	constants.SettingTimeFormat,
	constants.SettingBackgroundColor,
	constants.SettingForegroundColor,
	constants.SettingPaneColor,
	constants.SettingEnableRightClick,
	constants.SettingArrowSeparator + "1",
	constants.SettingArrowSeparator + "2",
	constants.SettingArrowSeparator + "3",
	constants.SettingPaddingAdjust,
	constants.SettingTextAlign,
	constants.SettingEnableDebug,
}

func readTree(in Tree, report *LoadReport) loadState {
	var st loadState
	if in.k == nil {
		return st
	}

	defineKey := constants.NodeTimezone + "." + constants.NodeDefine
	if defs, ok := in.k.Get(defineKey).([]interface{}); ok {
		for i, d := range defs {
			off, err := parseDefine(d)
			if err != nil {
				report.reject(fmt.Sprintf("%s[%d]", defineKey, i), fmt.Sprint(d), err.Error())
				continue
			}
			st.candidates = append(st.candidates, off)
		}
	}

	for _, key := range treeSettings {
		if !in.k.Exists(key) {
			continue
		}
		raw := in.k.Get(key)
		v, ok := scalarString(raw)
		if !ok {
			report.reject(key, fmt.Sprint(raw), "not a scalar")
			continue
		}
		st.settings = append(st.settings, Pair{Key: key, Value: v})
	}
	return st
}

// parseDefine reads one timezone declaration.
func parseDefine(d interface{}) (timezone.Offset, error) {
	var label, offset interface{}
	switch d := d.(type) {
	case []interface{}:
		if len(d) < 2 {
			return timezone.Offset{}, fmt.Errorf("want [label, offset]")
		}
		label, offset = d[0], d[1]
	case map[string]interface{}:
		label = d["name"]
		if label == nil {
			label = d["label"]
		}
		offset = d["offset"]
	default:
		return timezone.Offset{}, fmt.Errorf("unsupported declaration")
	}

	name, ok := label.(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return timezone.Offset{}, fmt.Errorf("missing label")
	}
	hours, ok := toFloat(offset)
	if !ok {
		return timezone.Offset{}, fmt.Errorf("invalid offset")
	}
	return timezone.Offset{Label: name, Offset: hours}, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func scalarString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int, int64, uint64, float64:
		return fmt.Sprint(v), true
	}
	return "", false
}
