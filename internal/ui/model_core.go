package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/otpfield/internal/bindings"
	"github.com/unkn0wn-root/otpfield/internal/codeinput"
	"github.com/unkn0wn-root/otpfield/internal/telemetry"
	"github.com/unkn0wn-root/otpfield/internal/theme"
)

var _ tea.Model = (*Model)(nil)

const (
	maskGlyph    = "•"
	defaultTitle = "Enter code"
)

type Config struct {
	Input       codeinput.Options
	Theme       *theme.Theme
	Bindings    *bindings.Map
	Telemetry   telemetry.Instrumenter
	Title       string
	Placeholder string
	Mask        bool
	ShowHelp    bool
	// Clipboard reads the system clipboard; atotto/clipboard when nil.
	Clipboard func() (string, error)
}

// Model hosts a single code input. Slot state lives in the shared
// *codeinput.Input, so copies of Model observe the same code.
type Model struct {
	input       *codeinput.Input
	theme       theme.Theme
	keys        *bindings.Map
	help        help.Model
	helpKeys    []key.Binding
	showHelp    bool
	tel         telemetry.Instrumenter
	clip        func() (string, error)
	title       string
	placeholder string
	mask        bool
	status      statusMsg
	width       int
	submitted   bool
	quitting    bool
}

func New(cfg Config) Model {
	th := theme.DefaultTheme()
	if cfg.Theme != nil {
		th = *cfg.Theme
	}
	keys := cfg.Bindings
	if keys == nil {
		keys = bindings.DefaultMap()
	}
	tel := cfg.Telemetry
	if tel == nil {
		tel = telemetry.Noop()
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.ReadAll
	}
	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = " "
	}

	h := help.New()
	h.Styles.ShortKey = th.HelpKey
	h.Styles.ShortDesc = th.HelpDesc
	h.Styles.ShortSeparator = th.HelpSeparator

	return Model{
		input:       codeinput.New(cfg.Input),
		theme:       th,
		keys:        keys,
		help:        h,
		helpKeys:    helpBindings(keys),
		showHelp:    cfg.ShowHelp,
		tel:         tel,
		clip:        clip,
		title:       title,
		placeholder: placeholder,
		mask:        cfg.Mask,
	}
}

// Result returns the aggregate value and whether the user submitted it.
func (m Model) Result() (string, bool) {
	return m.input.Value(), m.submitted
}

func helpBindings(m *bindings.Map) []key.Binding {
	var out []key.Binding
	for _, id := range bindings.Actions() {
		keys := m.Keys(id)
		if len(keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], bindings.Help(id)),
		))
	}
	return out
}
