package logging

import "context"

type contextKey string

const (
	formKey    contextKey = "form"
	commandKey contextKey = "command"
)

// WithForm adds the active form title to the context.
func WithForm(ctx context.Context, form string) context.Context {
	return context.WithValue(ctx, formKey, form)
}

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetForm retrieves the form title from the context.
// Returns empty string if not present.
func GetForm(ctx context.Context) string {
	if v, ok := ctx.Value(formKey).(string); ok {
		return v
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}
