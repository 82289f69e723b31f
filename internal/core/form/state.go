package form

import "strings"

// State is an immutable snapshot of a form. Values and errors hold exactly
// one entry per field; an empty error means the field is valid.
type State struct {
	def      *Definition
	values   []string
	errors   []string
	snapshot []string
	phase    Phase
}

// Initial returns the editing state with every field empty.
func (d *Definition) Initial() State {
	return State{
		def:    d,
		values: make([]string, d.Len()),
		errors: make([]string, d.Len()),
		phase:  PhaseEditing,
	}
}

// Definition returns the form definition.
func (s State) Definition() *Definition { return s.def }

// Phase returns the lifecycle phase.
func (s State) Phase() Phase { return s.phase }

// Value returns the stored value of field i.
func (s State) Value(i int) string { return s.values[i] }

// Error returns the stored validation message of field i.
func (s State) Error(i int) string { return s.errors[i] }

// Values returns a copy of all values in declaration order.
func (s State) Values() []string { return clone(s.values) }

// Errors returns a copy of all messages in declaration order.
func (s State) Errors() []string { return clone(s.errors) }

// HasErrors reports whether any field carries a validation message.
func (s State) HasErrors() bool {
	for _, e := range s.errors {
		if e != "" {
			return true
		}
	}
	return false
}

// AllFilled reports whether every value is non-empty after trimming.
func (s State) AllFilled() bool {
	for _, v := range s.values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// CanSubmit is the submit gate: no errors and every field filled.
func (s State) CanSubmit() bool {
	return !s.HasErrors() && s.AllFilled()
}

// Submitted reports whether a snapshot is present.
func (s State) Submitted() bool { return s.snapshot != nil }

// SummaryEntry is one row of the submitted summary.
type SummaryEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary lists the submitted values in declaration order, or nil when the
// form has not been submitted.
func (s State) Summary() []SummaryEntry {
	if s.snapshot == nil {
		return nil
	}

	out := make([]SummaryEntry, len(s.snapshot))
	for i, v := range s.snapshot {
		f := s.def.Field(i)
		out[i] = SummaryEntry{ID: f.ID, Label: f.Label, Value: v}
	}
	return out
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
