package form

// Event is a value or command fed to Reduce.
type Event interface {
	isEvent()
}

// ValueChanged is emitted by a field controller on every accepted edit.
type ValueChanged struct {
	Index int
	Value string
}

// ErrorChanged is emitted by a field controller when its message changes.
type ErrorChanged struct {
	Index   int
	Message string
}

// Submit asks the form to accept the current values.
type Submit struct{}

// Reset returns the form to its initial state.
type Reset struct{}

func (ValueChanged) isEvent() {}
func (ErrorChanged) isEvent() {}
func (Submit) isEvent()       {}
func (Reset) isEvent()        {}

// Reduce applies one event and returns the next state. The input state is
// never modified. Events addressing an unknown index are ignored, as is a
// Submit while the gate is closed.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case ValueChanged:
		if !s.inRange(ev.Index) {
			return s
		}
		next := s.withValue(ev.Index, ev.Value)
		if next.phase == PhaseSubmitted && s.def.opts.EditAfterSubmit == RevertToEditing {
			next.snapshot = nil
			next.phase = PhaseEditing
		}
		return next

	case ErrorChanged:
		if !s.inRange(ev.Index) {
			return s
		}
		next := s
		next.errors = clone(s.errors)
		next.errors[ev.Index] = ev.Message
		return next

	case Submit:
		if !s.CanSubmit() {
			return s
		}
		next := s
		next.snapshot = clone(s.values)
		next.phase = PhaseSubmitted
		return next

	case Reset:
		return s.def.Initial()
	}

	return s
}

// Apply folds a sequence of events into s.
func Apply(s State, events ...Event) State {
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}

func (s State) inRange(i int) bool {
	return i >= 0 && i < len(s.values)
}

func (s State) withValue(i int, v string) State {
	next := s
	next.values = clone(s.values)
	next.values[i] = v
	return next
}
