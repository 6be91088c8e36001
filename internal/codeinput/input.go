package codeinput

import (
	"strconv"

	"github.com/google/uuid"
)

const (
	DefaultFields = 6
	// NoFocus is returned by Focus before any slot has been focused.
	NoFocus = -1
)

type Options struct {
	// ID prefixes slot identifiers. A random one is generated when empty.
	ID        string
	Fields    int
	Value     string
	Pattern   *Pattern
	Disabled  bool
	AutoFocus bool
	// OnChange receives the aggregate value once per committed mutation.
	OnChange func(value string)
	// Advisory receives the "value longer than field count" diagnostic.
	// Leave nil to suppress it.
	Advisory AdvisoryFunc
}

// Slot is the per-field view consumed by renderers.
type Slot struct {
	ID       string
	Index    int
	Char     string
	Focused  bool
	Disabled bool
}

// Input holds the slot contents and focus of one segmented code field.
// It is not safe for concurrent use; events are expected to arrive from a
// single event loop.
type Input struct {
	id       string
	slots    []string
	focus    int
	hidden   []string
	pattern  *Pattern
	disabled bool
	onChange func(string)
	advise   AdvisoryFunc
}

func New(opts Options) *Input {
	id := opts.ID
	if id == "" {
		id = "code-" + uuid.NewString()
	}
	fields := opts.Fields
	if fields <= 0 {
		fields = DefaultFields
	}
	in := &Input{
		id:       id,
		focus:    NoFocus,
		pattern:  opts.Pattern,
		disabled: opts.Disabled,
		onChange: opts.OnChange,
		advise:   opts.Advisory,
	}
	in.load(opts.Value, fields)
	if opts.AutoFocus {
		in.focus = 0
	}
	return in
}

func (in *Input) ID() string { return in.id }

func (in *Input) Fields() int { return len(in.slots) }

// Focus returns the focused slot index or NoFocus.
func (in *Input) Focus() int { return in.focus }

func (in *Input) Disabled() bool { return in.disabled }

func (in *Input) Pattern() *Pattern { return in.pattern }

// Value returns the aggregate of all slots.
func (in *Input) Value() string { return Join(in.slots) }

// Complete reports whether every slot holds a character.
func (in *Input) Complete() bool {
	for _, s := range in.slots {
		if s == "" {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty slots.
func (in *Input) Filled() int { return countFilled(in.slots) }

func countFilled(slots []string) int {
	n := 0
	for _, s := range slots {
		if s != "" {
			n++
		}
	}
	return n
}

func (in *Input) Slots() []Slot {
	out := make([]Slot, len(in.slots))
	for i, ch := range in.slots {
		out[i] = Slot{
			ID:       in.id + "-" + strconv.Itoa(i),
			Index:    i,
			Char:     ch,
			Focused:  i == in.focus,
			Disabled: in.disabled,
		}
	}
	return out
}

// SetValue re-splits the slots from an externally supplied value.
// It never reports through OnChange.
func (in *Input) SetValue(value string) {
	in.load(value, len(in.slots))
}

// load splits value into fields slots and keeps the characters that did not
// fit so a later SetFields can bring them back.
func (in *Input) load(value string, fields int) {
	in.slots = Split(value, fields, in.advise)
	in.hidden = nil
	if chars := graphemes(value); len(chars) > fields {
		in.hidden = chars[fields:]
	}
}

// SetFields resizes the input. Slots keep their positions: shrinking parks
// the cut-off tail, growing restores it before padding with empty slots.
// Focus is clamped into the new range.
func (in *Input) SetFields(fields int) {
	if fields <= 0 {
		fields = 1
	}
	n := len(in.slots)
	if fields == n {
		return
	}
	if fields < n {
		in.hidden = append(append([]string(nil), in.slots[fields:]...), in.hidden...)
		in.slots = append([]string(nil), in.slots[:fields]...)
		if cut := countFilled(in.hidden); cut > 0 && in.advise != nil {
			in.advise(
				"codeinput: value longer than field count (%d > %d), extra characters hidden",
				in.Filled()+cut,
				fields,
			)
		}
	} else {
		grown := make([]string, fields)
		copy(grown, in.slots)
		k := copy(grown[n:], in.hidden)
		in.hidden = in.hidden[k:]
		in.slots = grown
	}
	if in.focus >= fields {
		in.focus = fields - 1
	}
}

func (in *Input) SetPattern(p *Pattern) { in.pattern = p }

func (in *Input) SetDisabled(disabled bool) { in.disabled = disabled }

// Clear empties every slot and focuses the first one.
func (in *Input) Clear() Result {
	if in.disabled {
		return Result{}
	}
	res := Result{Moved: in.moveTo(0)}
	if in.Filled() == 0 {
		return res
	}
	for i := range in.slots {
		in.slots[i] = ""
	}
	res.Changed = true
	in.commit()
	return res
}

// Dispatch applies ev to the focused slot. Rejected and out-of-range
// events leave the input untouched and return a zero Result.
func (in *Input) Dispatch(ev Event) Result {
	if in.disabled {
		return Result{}
	}
	switch ev.Kind {
	case EventNavigateLeft:
		return in.navigate(-1)
	case EventNavigateRight:
		return in.navigate(1)
	case EventCharacter:
		return in.enter(ev.Text)
	case EventDelete:
		return in.remove()
	case EventPaste:
		return in.paste(ev.Text)
	case EventFocus:
		if ev.Index < 0 || ev.Index >= len(in.slots) {
			return Result{}
		}
		return Result{Moved: in.moveTo(ev.Index)}
	default:
		return Result{}
	}
}

// target is the slot edits apply to; the first slot until something is
// focused.
func (in *Input) target() int {
	if in.focus == NoFocus {
		return 0
	}
	return in.focus
}

func (in *Input) moveTo(i int) bool {
	if in.focus == i {
		return false
	}
	in.focus = i
	return true
}

func (in *Input) navigate(delta int) Result {
	if in.focus == NoFocus {
		return Result{Moved: in.moveTo(0)}
	}
	next := in.focus + delta
	if next < 0 || next >= len(in.slots) {
		return Result{}
	}
	return Result{Moved: in.moveTo(next)}
}

func (in *Input) enter(text string) Result {
	chars := graphemes(text)
	switch {
	case len(chars) == 0:
		return Result{}
	case len(chars) > 1:
		return in.paste(text)
	}
	if !in.pattern.Accepts(text) {
		return Result{}
	}
	i := in.target()
	in.slots[i] = text
	next := i
	if i < len(in.slots)-1 {
		next = i + 1
	}
	res := Result{Changed: true, Moved: in.moveTo(next)}
	in.commit()
	return res
}

func (in *Input) remove() Result {
	i := in.target()
	if in.slots[i] != "" {
		in.slots[i] = ""
		res := Result{Changed: true, Moved: in.moveTo(i)}
		in.commit()
		return res
	}
	if i == 0 {
		return Result{}
	}
	in.slots[i-1] = ""
	res := Result{Changed: true, Moved: in.moveTo(i - 1)}
	in.commit()
	return res
}

// commit reports the visible slots as the new value. Characters parked by an
// earlier shrink are not part of it and are dropped.
func (in *Input) commit() {
	in.hidden = nil
	if in.onChange != nil {
		in.onChange(in.Value())
	}
}
