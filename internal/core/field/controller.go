package field

import "strings"

// Display is the presentation state of a field. It is a read-only projection
// of the controller's text and verdict.
type Display int

const (
	DisplayNeutral Display = iota // empty input
	DisplayError                  // verdict carries a message
	DisplaySuccess                // non-empty and valid
)

func (d Display) String() string {
	switch d {
	case DisplayError:
		return "error"
	case DisplaySuccess:
		return "success"
	default:
		return "neutral"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithErrorHandler registers the callback invoked whenever the validation
// message changes. An empty message means the field is valid.
func WithErrorHandler(fn func(msg string)) Option {
	return func(c *Controller) { c.onError = fn }
}

// WithMessages sets the catalog used to render verdict messages.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		if m != nil {
			c.messages = m
		}
	}
}

// Controller owns the editable text of one input. It validates the text
// against its config and pushes value and message changes to its owner
// through callbacks; the owner never reads controller state to learn about
// edits.
type Controller struct {
	cfg      Config
	messages Messages

	external string // last externally supplied value, as text
	text     string // editable text
	reported string // last message sent through onError

	onValue func(string)
	onError func(string)
}

// NewController creates a controller seeded from the externally held value.
// onValue is required. The initial verdict is reported through the error
// handler immediately, mirroring a freshly mounted input.
func NewController(cfg Config, value any, onValue func(string), opts ...Option) *Controller {
	if onValue == nil {
		panic("field: onValue callback is required")
	}

	text := ValueText(value)
	c := &Controller{
		cfg:      cfg,
		messages: DefaultMessages,
		external: text,
		text:     text,
		onValue:  onValue,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.reported = c.Message()
	c.emitError(c.reported)
	return c
}

// Config returns the field config.
func (c *Controller) Config() Config { return c.cfg }

// ID returns the field id.
func (c *Controller) ID() string { return c.cfg.ID }

// Text returns the current editable text.
func (c *Controller) Text() string { return c.text }

// Verdict validates the current text.
func (c *Controller) Verdict() Verdict { return Validate(c.text, c.cfg) }

// Message returns the current validation message, or "" when valid.
func (c *Controller) Message() string { return c.messages.Format(c.Verdict()) }

// Sync pushes the externally held value down. When it differs from the last
// value seen, the editable text is overwritten, discarding local edits.
func (c *Controller) Sync(value any) {
	text := ValueText(value)
	if text == c.external {
		return
	}
	c.external = text
	c.text = text
	c.revalidate()
}

// Input applies a candidate text produced by a keystroke. Number fields
// silently reject candidates containing characters other than digits, '.',
// ',' and '-'; Input then returns false and nothing changes.
func (c *Controller) Input(candidate string) bool {
	if !AcceptsInput(c.cfg.EffectiveKind(), candidate) {
		return false
	}

	c.text = candidate
	c.onValue(candidate)
	c.revalidate()
	return true
}

// Clear empties the field and reports a cleared error right away instead of
// waiting for the next recompute.
func (c *Controller) Clear() {
	c.text = ""
	c.onValue("")
	c.reported = ""
	c.emitError("")
}

// SetConfig replaces the field config (kind or bounds) and revalidates.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
	c.revalidate()
}

// SetMessages swaps the message catalog and revalidates.
func (c *Controller) SetMessages(m Messages) {
	if m == nil {
		return
	}
	c.messages = m
	c.revalidate()
}

// Display projects the current state onto error, success or neutral.
func (c *Controller) Display() Display {
	if c.Message() != "" {
		return DisplayError
	}
	if strings.TrimSpace(c.text) != "" {
		return DisplaySuccess
	}
	return DisplayNeutral
}

// ShowClear reports whether a clear affordance should be offered.
func (c *Controller) ShowClear() bool { return c.text != "" }

func (c *Controller) revalidate() {
	msg := c.Message()
	if msg == c.reported {
		return
	}
	c.reported = msg
	c.emitError(msg)
}

func (c *Controller) emitError(msg string) {
	if c.onError != nil {
		c.onError(msg)
	}
}
