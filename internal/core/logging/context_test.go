package logging

import (
	"context"
	"testing"
)

func TestWithForm(t *testing.T) {
	ctx := WithForm(context.Background(), "Signup")

	if got := GetForm(ctx); got != "Signup" {
		t.Errorf("GetForm() = %q, want %q", got, "Signup")
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "check")

	if got := GetCommand(ctx); got != "check" {
		t.Errorf("GetCommand() = %q, want %q", got, "check")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetForm(ctx); got != "" {
		t.Errorf("GetForm() = %q, want empty string", got)
	}
	if got := GetCommand(ctx); got != "" {
		t.Errorf("GetCommand() = %q, want empty string", got)
	}
}
