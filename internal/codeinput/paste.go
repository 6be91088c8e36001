package codeinput

// paste validates text as a whole and then writes it across the slots from
// the focused one onwards. Characters that run past the last slot are
// discarded. One report covers the whole paste.
func (in *Input) paste(text string) Result {
	chars := graphemes(text)
	if len(chars) == 0 || !in.pattern.Accepts(text) {
		return Result{}
	}
	start := in.target()
	last := start
	for k, ch := range chars {
		idx := start + k
		if idx >= len(in.slots) {
			break
		}
		in.slots[idx] = ch
		last = idx
	}
	res := Result{Changed: true, Moved: in.moveTo(last)}
	in.commit()
	return res
}

// Paste is shorthand for dispatching an EventPaste.
func (in *Input) Paste(text string) Result {
	return in.Dispatch(Event{Kind: EventPaste, Text: text})
}
