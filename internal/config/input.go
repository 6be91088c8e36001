package config

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	FieldsDefault      = 6
	FieldsMin          = 1
	FieldsMax          = 32
	PlaceholderDefault = "·"
)

type InputSettings struct {
	Fields      int    `json:"fields"      toml:"fields"`
	Pattern     string `json:"pattern"     toml:"pattern"`
	Placeholder string `json:"placeholder" toml:"placeholder"`
	Mask        bool   `json:"mask"        toml:"mask"`
	AutoFocus   bool   `json:"auto_focus"  toml:"auto_focus"`
}

func DefaultInputSettings() InputSettings {
	return InputSettings{
		Fields:      FieldsDefault,
		Placeholder: PlaceholderDefault,
		AutoFocus:   true,
	}
}

// NormaliseInputSettings clamps the field count and reduces the placeholder
// to a single grapheme. Zero values fall back to defaults.
func NormaliseInputSettings(in InputSettings) InputSettings {
	out := in
	switch {
	case in.Fields == 0:
		out.Fields = FieldsDefault
	case in.Fields < FieldsMin:
		out.Fields = FieldsMin
	case in.Fields > FieldsMax:
		out.Fields = FieldsMax
	}
	out.Pattern = strings.TrimSpace(in.Pattern)
	out.Placeholder = firstGrapheme(in.Placeholder)
	if out.Placeholder == "" {
		out.Placeholder = PlaceholderDefault
	}
	return out
}

func firstGrapheme(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return ""
	}
	return g.Str()
}
