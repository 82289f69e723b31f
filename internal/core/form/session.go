package form

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/formgate/internal/core/field"
	"github.com/hay-kot/formgate/internal/core/logging"
)

// Session binds one field controller per field to a reducer-driven State.
// Controllers emit ValueChanged and ErrorChanged events through their
// callbacks; after every event the stored values are pushed back down to the
// controllers, so a Reset overrides in-progress edits.
type Session struct {
	state       State
	controllers []*field.Controller
	log         zerolog.Logger
}

// NewSession creates a session in the initial state.
func NewSession(def *Definition, msgs field.Messages) *Session {
	s := &Session{
		state: def.Initial(),
		log:   logging.Component("form"),
	}

	s.controllers = make([]*field.Controller, 0, def.Len())
	for i := 0; i < def.Len(); i++ {
		idx := i
		c := field.NewController(def.Field(i), s.state.Value(i),
			func(v string) { s.Dispatch(ValueChanged{Index: idx, Value: v}) },
			field.WithErrorHandler(func(msg string) { s.Dispatch(ErrorChanged{Index: idx, Message: msg}) }),
			field.WithMessages(msgs),
		)
		s.controllers = append(s.controllers, c)
	}

	return s
}

// State returns the current form state.
func (s *Session) State() State { return s.state }

// Len returns the number of fields.
func (s *Session) Len() int { return len(s.controllers) }

// Controller returns the controller of field i.
func (s *Session) Controller(i int) *field.Controller { return s.controllers[i] }

// Dispatch reduces ev into the state and syncs controllers with the result.
func (s *Session) Dispatch(ev Event) {
	prev := s.state
	s.state = Reduce(s.state, ev)

	if prev.phase != s.state.phase {
		s.log.Debug().
			Str("from", prev.phase.String()).
			Str("to", s.state.phase.String()).
			Msg("form phase changed")
	}

	for i, c := range s.controllers {
		c.Sync(s.state.Value(i))
	}
}

// Input feeds a candidate text to field i. It returns false when the
// controller rejected the keystroke.
func (s *Session) Input(i int, text string) bool {
	return s.controllers[i].Input(text)
}

// Clear empties field i.
func (s *Session) Clear(i int) {
	s.controllers[i].Clear()
}

// Submit attempts a submission and reports whether it was accepted.
func (s *Session) Submit() bool {
	if !s.state.CanSubmit() {
		s.log.Debug().
			Bool("has_errors", s.state.HasErrors()).
			Bool("all_filled", s.state.AllFilled()).
			Msg("submit blocked")
		return false
	}
	s.Dispatch(Submit{})
	s.log.Info().Int("fields", s.Len()).Msg("form submitted")
	return true
}

// Reset returns every field to empty and drops the submitted summary.
func (s *Session) Reset() {
	s.Dispatch(Reset{})
}

// SetMessages switches the message catalog of every controller.
func (s *Session) SetMessages(m field.Messages) {
	for _, c := range s.controllers {
		c.SetMessages(m)
	}
}
