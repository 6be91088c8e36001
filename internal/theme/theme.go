package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	AppFrame      lipgloss.Style
	Title         lipgloss.Style
	Slot          lipgloss.Style
	SlotFilled    lipgloss.Style
	SlotFocused   lipgloss.Style
	SlotDisabled  lipgloss.Style
	Placeholder   lipgloss.Style
	SlotGap       lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
	FocusAccent   lipgloss.Color
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("#7D56F4")
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#dcd7ff"))
	slot := base.BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4C4F69")).
		Align(lipgloss.Center)

	return Theme{
		AppFrame: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6E1FF")).
			Bold(true).
			MarginBottom(1),
		Slot: slot,
		SlotFilled: slot.BorderForeground(lipgloss.Color("#A78BFA")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		SlotFocused: slot.BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Foreground(lipgloss.Color("#FFD46A")).
			Bold(true),
		SlotDisabled: slot.BorderForeground(lipgloss.Color("#3B3A4A")).
			Foreground(lipgloss.Color("#6E6A86")).
			Faint(true),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6A86")),
		SlotGap:       lipgloss.NewStyle().PaddingRight(1),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9AB0")),
		StatusWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD46A")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F25F5C")).Bold(true),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3B3")).Bold(true),
		HelpKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
		HelpDesc:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6A86")),
		HelpSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("#3B3A4A")),
		FocusAccent:   accent,
	}
}
