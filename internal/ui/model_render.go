package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/unkn0wn-root/otpfield/internal/codeinput"
)

func (m Model) View() string {
	if m.submitted || m.quitting {
		return ""
	}
	parts := []string{
		m.theme.Title.Render(m.title),
		m.renderSlots(),
	}
	if status := m.renderStatus(); status != "" {
		parts = append(parts, status)
	}
	if m.showHelp && len(m.helpKeys) > 0 {
		parts = append(parts, m.help.ShortHelpView(m.helpKeys))
	}
	return m.theme.AppFrame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderSlots() string {
	slots := m.input.Slots()
	texts := make([]string, len(slots))
	width := 1
	for i, s := range slots {
		texts[i] = m.slotText(s)
		if w := runewidth.StringWidth(texts[i]); w > width {
			width = w
		}
	}

	cells := make([]string, 0, len(slots))
	for i, s := range slots {
		text := texts[i]
		if s.Char == "" {
			text = m.theme.Placeholder.Render(text)
		}
		cell := m.slotStyle(s).Width(width + 2).Render(text)
		if i < len(slots)-1 {
			cell = m.theme.SlotGap.Render(cell)
		}
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) slotText(s codeinput.Slot) string {
	switch {
	case s.Char == "":
		return m.placeholder
	case m.mask:
		return maskGlyph
	default:
		return s.Char
	}
}

func (m Model) slotStyle(s codeinput.Slot) lipgloss.Style {
	switch {
	case s.Disabled:
		return m.theme.SlotDisabled
	case s.Focused:
		return m.theme.SlotFocused
	case s.Char != "":
		return m.theme.SlotFilled
	default:
		return m.theme.Slot
	}
}

func (m Model) renderStatus() string {
	text := m.status.text
	if text == "" {
		return ""
	}
	if limit := m.width - m.theme.AppFrame.GetHorizontalFrameSize(); limit > 0 {
		text = ansi.Truncate(text, limit, "…")
	}
	switch m.status.level {
	case statusWarn:
		return m.theme.StatusWarn.Render(text)
	case statusError:
		return m.theme.StatusError.Render(text)
	case statusSuccess:
		return m.theme.StatusSuccess.Render(text)
	default:
		return m.theme.StatusInfo.Render(text)
	}
}
