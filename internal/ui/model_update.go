package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/otpfield/internal/bindings"
	"github.com/unkn0wn-root/otpfield/internal/codeinput"
	"github.com/unkn0wn-root/otpfield/internal/telemetry"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
	case tea.KeyMsg:
		cmd = m.handleKey(typed)
	case pasteMsg:
		m.dispatch(codeinput.Event{
			Kind: codeinput.EventPaste,
			Text: strings.TrimSpace(string(typed)),
		})
	case pasteErrMsg:
		m.setStatus(statusError, fmt.Sprintf("clipboard: %v", typed.err))
	case statusMsg:
		m.status = typed
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste {
		// terminals commonly append the line break that was copied with the code
		text := strings.TrimRight(string(msg.Runes), "\r\n")
		m.dispatch(codeinput.Event{Kind: codeinput.EventPaste, Text: text})
		return nil
	}
	if binding, ok := m.keys.MatchSingle(bindings.NormalizeKeyString(msg.String())); ok {
		return m.runAction(binding.Action)
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		m.dispatch(codeinput.Event{Kind: codeinput.EventCharacter, Text: string(msg.Runes)})
	case tea.KeySpace:
		m.dispatch(codeinput.Event{Kind: codeinput.EventCharacter, Text: " "})
	}
	return nil
}

func (m *Model) runAction(action bindings.ActionID) tea.Cmd {
	switch action {
	case bindings.ActionNavigateLeft:
		m.dispatch(codeinput.Event{Kind: codeinput.EventNavigateLeft})
	case bindings.ActionNavigateRight:
		m.dispatch(codeinput.Event{Kind: codeinput.EventNavigateRight})
	case bindings.ActionFocusFirst:
		m.dispatch(codeinput.Event{Kind: codeinput.EventFocus, Index: 0})
	case bindings.ActionFocusLast:
		m.dispatch(codeinput.Event{Kind: codeinput.EventFocus, Index: m.input.Fields() - 1})
	case bindings.ActionDelete:
		m.dispatch(codeinput.Event{Kind: codeinput.EventDelete})
	case bindings.ActionPaste:
		return m.readClipboard()
	case bindings.ActionClear:
		if res := m.input.Clear(); res.Changed {
			m.setStatus(statusInfo, "cleared")
		}
	case bindings.ActionSubmit:
		return m.submit()
	case bindings.ActionToggleHelp:
		m.showHelp = !m.showHelp
	case bindings.ActionQuit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) dispatch(ev codeinput.Event) codeinput.Result {
	_, span := m.tel.Start(context.Background(), telemetry.EventStart{
		Kind:   ev.Kind.String(),
		Focus:  m.input.Focus(),
		Fields: m.input.Fields(),
	})
	res := m.input.Dispatch(ev)
	span.End(telemetry.EventResult{
		Changed: res.Changed,
		Moved:   res.Moved,
		Focus:   m.input.Focus(),
		Filled:  m.input.Filled(),
	})

	switch {
	case m.input.Disabled():
		m.setStatus(statusWarn, "input is disabled")
	case res.Changed:
		m.setStatus(
			statusInfo,
			fmt.Sprintf("%d of %d filled", m.input.Filled(), m.input.Fields()),
		)
	case ev.Text != "" && (ev.Kind == codeinput.EventCharacter || ev.Kind == codeinput.EventPaste):
		m.setStatus(statusWarn, rejectionText(ev, m.input.Pattern()))
	}
	return res
}

func rejectionText(ev codeinput.Event, p *codeinput.Pattern) string {
	what := "character"
	if ev.Kind == codeinput.EventPaste {
		what = "paste"
	}
	return fmt.Sprintf("%s rejected by pattern %s", what, p)
}

func (m *Model) readClipboard() tea.Cmd {
	read := m.clip
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return pasteErrMsg{err: err}
		}
		return pasteMsg(text)
	}
}

func (m *Model) submit() tea.Cmd {
	if !m.input.Complete() {
		m.setStatus(
			statusWarn,
			fmt.Sprintf("code incomplete: %d of %d filled", m.input.Filled(), m.input.Fields()),
		)
		return nil
	}
	m.submitted = true
	m.setStatus(statusSuccess, "submitted")
	return tea.Quit
}

func (m *Model) setStatus(level statusLevel, text string) {
	m.status = statusMsg{text: text, level: level}
}
