package codeinput

// EventKind enumerates the field-level events an Input understands.
type EventKind int

const (
	EventNavigateLeft EventKind = iota
	EventNavigateRight
	EventCharacter
	EventDelete
	EventPaste
	EventFocus
)

func (k EventKind) String() string {
	switch k {
	case EventNavigateLeft:
		return "navigate_left"
	case EventNavigateRight:
		return "navigate_right"
	case EventCharacter:
		return "character"
	case EventDelete:
		return "delete"
	case EventPaste:
		return "paste"
	case EventFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Event is a single input event routed to the focused slot.
// Text is used by EventCharacter and EventPaste, Index by EventFocus.
type Event struct {
	Kind  EventKind
	Text  string
	Index int
}

// Result describes what a dispatched event did.
type Result struct {
	Changed bool
	Moved   bool
}
