// Package printer writes status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/formgate/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human readable status output.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.Printf("%s %s", styles.FormSuccessStyle.Render(styles.IconSuccess), fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.Printf("%s %s", styles.TextMutedStyle.Render("•"), fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.Printf("%s %s", styles.FormHelpStyle.Render("!"), fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.Printf("%s %s", styles.FormErrorStyle.Render(styles.IconError), fmt.Sprintf(format, args...))
}

// Section prints a header line.
func (p *Printer) Section(title string) {
	p.Printf("%s", styles.HeaderStyle.Render(title))
}
