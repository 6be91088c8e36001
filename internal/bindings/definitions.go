package bindings

const (
	ActionNavigateLeft  ActionID = "navigate_left"
	ActionNavigateRight ActionID = "navigate_right"
	ActionFocusFirst    ActionID = "focus_first"
	ActionFocusLast     ActionID = "focus_last"
	ActionDelete        ActionID = "delete"
	ActionPaste         ActionID = "paste"
	ActionClear         ActionID = "clear"
	ActionSubmit        ActionID = "submit"
	ActionToggleHelp    ActionID = "toggle_help"
	ActionQuit          ActionID = "quit"
)

type definition struct {
	id       ActionID
	help     string
	defaults []string
}

var definitions = []definition{
	{id: ActionNavigateLeft, help: "prev field", defaults: []string{"left", "shift+tab"}},
	{id: ActionNavigateRight, help: "next field", defaults: []string{"right", "tab"}},
	{id: ActionFocusFirst, help: "first field", defaults: []string{"home"}},
	{id: ActionFocusLast, help: "last field", defaults: []string{"end"}},
	{id: ActionDelete, help: "delete", defaults: []string{"backspace", "delete", "ctrl+h"}},
	{id: ActionPaste, help: "paste", defaults: []string{"ctrl+v"}},
	{id: ActionClear, help: "clear", defaults: []string{"ctrl+u"}},
	{id: ActionSubmit, help: "submit", defaults: []string{"enter"}},
	{id: ActionToggleHelp, help: "help", defaults: []string{"f1"}},
	{id: ActionQuit, help: "quit", defaults: []string{"esc", "ctrl+c"}},
}

var definitionLookup = func() map[ActionID]definition {
	out := make(map[ActionID]definition, len(definitions))
	for _, def := range definitions {
		out[def.id] = def
	}
	return out
}()
