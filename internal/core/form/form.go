// Package form aggregates field values and validation messages for a fixed set
// of fields and gates submission. State changes only through Reduce.
package form

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/formgate/internal/core/field"
)

// Phase is the lifecycle phase of a form.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitted
)

func (p Phase) String() string {
	if p == PhaseSubmitted {
		return "submitted"
	}
	return "editing"
}

// EditAfterSubmit decides what a field edit does to a submitted form.
type EditAfterSubmit string

const (
	// KeepSnapshot leaves the submitted summary in place after further edits.
	KeepSnapshot EditAfterSubmit = "keep"
	// RevertToEditing drops the summary and returns to editing on the first edit.
	RevertToEditing EditAfterSubmit = "revert"
)

// IsValid reports whether the policy is known. The zero value is valid and
// behaves like KeepSnapshot.
func (e EditAfterSubmit) IsValid() bool {
	switch e {
	case "", KeepSnapshot, RevertToEditing:
		return true
	default:
		return false
	}
}

// Options tune form behaviour.
type Options struct {
	EditAfterSubmit EditAfterSubmit
}

// Definition is the immutable shape of a form: its fields in declaration
// order, each addressed by a stable index.
type Definition struct {
	fields []field.Config
	index  map[string]int
	opts   Options
}

// NewDefinition validates the field list and assigns indexes.
func NewDefinition(fields []field.Config, opts Options) (*Definition, error) {
	var errs criterio.FieldErrorsBuilder
	index := make(map[string]int, len(fields))

	for i, f := range fields {
		path := fmt.Sprintf("fields[%d].id", i)
		if strings.TrimSpace(f.ID) == "" {
			errs = errs.Append(path, fmt.Errorf("id is required"))
			continue
		}
		if _, dup := index[f.ID]; dup {
			errs = errs.Append(path, fmt.Errorf("duplicate id %q", f.ID))
			continue
		}
		index[f.ID] = i
	}

	if !opts.EditAfterSubmit.IsValid() {
		errs = errs.Append("edit_after_submit", fmt.Errorf("unknown policy %q", opts.EditAfterSubmit))
	}

	if err := errs.ToError(); err != nil {
		return nil, err
	}

	cp := make([]field.Config, len(fields))
	copy(cp, fields)
	return &Definition{fields: cp, index: index, opts: opts}, nil
}

// Len returns the number of fields.
func (d *Definition) Len() int { return len(d.fields) }

// Field returns the config of the field at index i.
func (d *Definition) Field(i int) field.Config { return d.fields[i] }

// Fields returns a copy of all field configs in declaration order.
func (d *Definition) Fields() []field.Config {
	cp := make([]field.Config, len(d.fields))
	copy(cp, d.fields)
	return cp
}

// Lookup resolves a field id to its index.
func (d *Definition) Lookup(id string) (int, bool) {
	i, ok := d.index[id]
	return i, ok
}

// Options returns the behaviour options.
func (d *Definition) Options() Options { return d.opts }
