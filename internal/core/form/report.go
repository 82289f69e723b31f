package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hay-kot/formgate/internal/core/field"
)

// FieldReport is the outcome for one field of a non-interactive check.
type FieldReport struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Error    string `json:"error,omitempty"`
	State    string `json:"state"`
	Rejected bool   `json:"rejected,omitempty"`
}

// Report is the outcome of feeding a set of values through a session and
// attempting a submit.
type Report struct {
	Submitted bool           `json:"submitted"`
	CanSubmit bool           `json:"can_submit"`
	Fields    []FieldReport  `json:"fields"`
	Summary   []SummaryEntry `json:"summary,omitempty"`
}

// Check feeds values keyed by field id through a fresh session, the same way
// typed input would arrive, then attempts a submit. Values may be strings or
// numbers. Ids not present in def are an error.
func Check(def *Definition, msgs field.Messages, values map[string]any) (Report, error) {
	var unknown []string
	for id := range values {
		if _, ok := def.Lookup(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Report{}, fmt.Errorf("unknown field(s): %s", strings.Join(unknown, ", "))
	}

	s := NewSession(def, msgs)
	rejected := make([]bool, def.Len())

	for i, f := range def.Fields() {
		v, ok := values[f.ID]
		if !ok {
			continue
		}
		if !s.Input(i, field.ValueText(v)) {
			rejected[i] = true
			s.log.Debug().Str("field", f.ID).Msg("value rejected")
		}
	}

	submitted := s.Submit()
	state := s.State()

	report := Report{
		Submitted: submitted,
		CanSubmit: state.CanSubmit(),
		Fields:    make([]FieldReport, def.Len()),
		Summary:   state.Summary(),
	}
	for i, f := range def.Fields() {
		report.Fields[i] = FieldReport{
			ID:       f.ID,
			Label:    f.Label,
			Value:    state.Value(i),
			Error:    state.Error(i),
			State:    s.Controller(i).Display().String(),
			Rejected: rejected[i],
		}
	}

	return report, nil
}
