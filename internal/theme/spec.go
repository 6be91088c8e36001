package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Metadata struct {
	Name        string   `json:"name"        toml:"name"        yaml:"name"`
	Description string   `json:"description" toml:"description" yaml:"description"`
	Author      string   `json:"author"      toml:"author"      yaml:"author"`
	Version     string   `json:"version"     toml:"version"     yaml:"version"`
	Tags        []string `json:"tags"        toml:"tags"        yaml:"tags"`
}

type ThemeSpec struct {
	Metadata *Metadata  `json:"metadata" toml:"metadata" yaml:"metadata"`
	Styles   StylesSpec `json:"styles"   toml:"styles"   yaml:"styles"`
	Colors   ColorsSpec `json:"colors"   toml:"colors"   yaml:"colors"`
}

type StylesSpec struct {
	AppFrame      *StyleSpec `json:"app_frame"      toml:"app_frame"      yaml:"app_frame"`
	Title         *StyleSpec `json:"title"          toml:"title"          yaml:"title"`
	Slot          *StyleSpec `json:"slot"           toml:"slot"           yaml:"slot"`
	SlotFilled    *StyleSpec `json:"slot_filled"    toml:"slot_filled"    yaml:"slot_filled"`
	SlotFocused   *StyleSpec `json:"slot_focused"   toml:"slot_focused"   yaml:"slot_focused"`
	SlotDisabled  *StyleSpec `json:"slot_disabled"  toml:"slot_disabled"  yaml:"slot_disabled"`
	Placeholder   *StyleSpec `json:"placeholder"    toml:"placeholder"    yaml:"placeholder"`
	StatusInfo    *StyleSpec `json:"status_info"    toml:"status_info"    yaml:"status_info"`
	StatusWarn    *StyleSpec `json:"status_warn"    toml:"status_warn"    yaml:"status_warn"`
	StatusError   *StyleSpec `json:"status_error"   toml:"status_error"   yaml:"status_error"`
	StatusSuccess *StyleSpec `json:"status_success" toml:"status_success" yaml:"status_success"`
	HelpKey       *StyleSpec `json:"help_key"       toml:"help_key"       yaml:"help_key"`
	HelpDesc      *StyleSpec `json:"help_desc"      toml:"help_desc"      yaml:"help_desc"`
	HelpSeparator *StyleSpec `json:"help_separator" toml:"help_separator" yaml:"help_separator"`
}

type ColorsSpec struct {
	FocusAccent *string `json:"focus_accent" toml:"focus_accent" yaml:"focus_accent"`
}

type StyleSpec struct {
	Foreground       *string `json:"foreground"        toml:"foreground"        yaml:"foreground"`
	Background       *string `json:"background"        toml:"background"        yaml:"background"`
	BorderColor      *string `json:"border_color"      toml:"border_color"      yaml:"border_color"`
	BorderBackground *string `json:"border_background" toml:"border_background" yaml:"border_background"`
	BorderStyle      *string `json:"border_style"      toml:"border_style"      yaml:"border_style"`
	Bold             *bool   `json:"bold"              toml:"bold"              yaml:"bold"`
	Italic           *bool   `json:"italic"            toml:"italic"            yaml:"italic"`
	Underline        *bool   `json:"underline"         toml:"underline"         yaml:"underline"`
	Faint            *bool   `json:"faint"             toml:"faint"             yaml:"faint"`
	Strikethrough    *bool   `json:"strikethrough"     toml:"strikethrough"     yaml:"strikethrough"`
	Align            *string `json:"align"             toml:"align"             yaml:"align"`
}

// ApplySpec layers spec over base. Unset fields keep the base styling.
func ApplySpec(base Theme, spec ThemeSpec) (Theme, error) {
	out := base

	targets := []struct {
		name     string
		target   *lipgloss.Style
		override *StyleSpec
	}{
		{"app_frame", &out.AppFrame, spec.Styles.AppFrame},
		{"title", &out.Title, spec.Styles.Title},
		{"slot", &out.Slot, spec.Styles.Slot},
		{"slot_filled", &out.SlotFilled, spec.Styles.SlotFilled},
		{"slot_focused", &out.SlotFocused, spec.Styles.SlotFocused},
		{"slot_disabled", &out.SlotDisabled, spec.Styles.SlotDisabled},
		{"placeholder", &out.Placeholder, spec.Styles.Placeholder},
		{"status_info", &out.StatusInfo, spec.Styles.StatusInfo},
		{"status_warn", &out.StatusWarn, spec.Styles.StatusWarn},
		{"status_error", &out.StatusError, spec.Styles.StatusError},
		{"status_success", &out.StatusSuccess, spec.Styles.StatusSuccess},
		{"help_key", &out.HelpKey, spec.Styles.HelpKey},
		{"help_desc", &out.HelpDesc, spec.Styles.HelpDesc},
		{"help_separator", &out.HelpSeparator, spec.Styles.HelpSeparator},
	}
	for _, entry := range targets {
		if entry.override == nil {
			continue
		}
		next, err := entry.override.apply(*entry.target)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.target = next
	}

	if spec.Colors.FocusAccent != nil {
		color, err := toColor("focus_accent", *spec.Colors.FocusAccent)
		if err != nil {
			return Theme{}, err
		}
		out.FocusAccent = color
		out.SlotFocused = out.SlotFocused.BorderForeground(color)
	}
	return out, nil
}

func (s *StyleSpec) apply(base lipgloss.Style) (lipgloss.Style, error) {
	if s == nil {
		return base, nil
	}
	current := base
	if s.Foreground != nil {
		color, err := toColor("foreground", *s.Foreground)
		if err != nil {
			return lipgloss.Style{}, err
		}
		current = current.Foreground(color)
	}
	if s.Background != nil {
		color, err := toColor("background", *s.Background)
		if err != nil {
			return lipgloss.Style{}, err
		}
		current = current.Background(color)
	}
	if s.BorderColor != nil {
		color, err := toColor("border_color", *s.BorderColor)
		if err != nil {
			return lipgloss.Style{}, err
		}
		current = current.BorderForeground(color)
	}
	if s.BorderBackground != nil {
		color, err := toColor("border_background", *s.BorderBackground)
		if err != nil {
			return lipgloss.Style{}, err
		}
		current = current.BorderBackground(color)
	}
	if s.BorderStyle != nil {
		normalized := strings.ToLower(strings.TrimSpace(*s.BorderStyle))
		if normalized != "inherit" {
			border, err := parseBorderStyle(normalized)
			if err != nil {
				return lipgloss.Style{}, err
			}
			current = current.BorderStyle(border)
		}
	}
	if s.Bold != nil {
		current = current.Bold(*s.Bold)
	}
	if s.Italic != nil {
		current = current.Italic(*s.Italic)
	}
	if s.Underline != nil {
		current = current.Underline(*s.Underline)
	}
	if s.Faint != nil {
		current = current.Faint(*s.Faint)
	}
	if s.Strikethrough != nil {
		current = current.Strikethrough(*s.Strikethrough)
	}
	if s.Align != nil {
		align, err := parseAlign(*s.Align)
		if err != nil {
			return lipgloss.Style{}, err
		}
		current = current.Align(align)
	}
	return current, nil
}

func toColor(field string, value string) (lipgloss.Color, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s: colour value may not be empty", field)
	}
	return lipgloss.Color(trimmed), nil
}

func parseAlign(value string) (lipgloss.Position, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "start", "default", "":
		return lipgloss.Left, nil
	case "center", "centre", "middle":
		return lipgloss.Center, nil
	case "right", "end":
		return lipgloss.Right, nil
	default:
		return lipgloss.Left, fmt.Errorf("align: unknown alignment %q", value)
	}
}

func parseBorderStyle(value string) (lipgloss.Border, error) {
	switch value {
	case "":
		return lipgloss.Border{}, fmt.Errorf("border_style: value may not be empty")
	case "none", "hidden", "off":
		return lipgloss.Border{}, nil
	case "normal", "single":
		return lipgloss.NormalBorder(), nil
	case "rounded":
		return lipgloss.RoundedBorder(), nil
	case "thick", "heavy":
		return lipgloss.ThickBorder(), nil
	case "double":
		return lipgloss.DoubleBorder(), nil
	case "ascii":
		return lipgloss.Border{
			Top:         "-",
			Bottom:      "-",
			Left:        "|",
			Right:       "|",
			TopLeft:     "+",
			TopRight:    "+",
			BottomLeft:  "+",
			BottomRight: "+",
		}, nil
	case "block":
		return lipgloss.BlockBorder(), nil
	default:
		return lipgloss.Border{}, fmt.Errorf("border_style: unknown border style %q", value)
	}
}
