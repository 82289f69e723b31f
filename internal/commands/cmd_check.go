package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/logging"
	"github.com/hay-kot/formgate/internal/core/styles"
	"github.com/hay-kot/formgate/pkg/iojson"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type CheckCmd struct {
	flags  *Flags
	input  iojson.FileReader[map[string]any]
	format string
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate a set of values without opening the form",
		UsageText: "formgate check [-f values.json] [--format json|markdown]",
		Description: `Reads a JSON object mapping field ids to values, feeds each value through
the form exactly as typed input would be, and attempts a submit.

Values may be strings or numbers:

  {"firstName": "Ann", "age": 30}

Exits non-zero when the form cannot be submitted.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, markdown); markdown when stdout is a terminal",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "check")

	values, err := cmd.input.Read()
	if err != nil {
		return err
	}

	def, err := cmd.flags.Definition()
	if err != nil {
		return err
	}

	catalog, err := cmd.flags.Catalog()
	if err != nil {
		return err
	}

	report, err := form.Check(def, catalog, values)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Bool("submitted", report.Submitted).
		Int("values", len(values)).
		Msg("check complete")

	if err := cmd.write(c.Root().Writer, report); err != nil {
		return err
	}

	if !report.Submitted {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *CheckCmd) write(out io.Writer, report form.Report) error {
	interactive := out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))

	format := cmd.format
	if format == "" {
		format = formatJSON
		if interactive {
			format = formatMarkdown
		}
	}

	switch format {
	case formatJSON:
		return iojson.WriteWith(out, os.Stderr, report)
	case formatMarkdown:
		rendered, err := renderMarkdown(reportMarkdown(report))
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected json or markdown)", format)
	}
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// reportMarkdown renders a report as a markdown document with one table row
// per field.
func reportMarkdown(report form.Report) string {
	var b strings.Builder

	b.WriteString("# Check\n\n")
	if report.Submitted {
		b.WriteString("**Submitted**\n\n")
	} else {
		b.WriteString("**Not submitted:** every field must be filled and valid\n\n")
	}

	b.WriteString("| Field | Value | State | Message |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range report.Fields {
		msg := f.Error
		if f.Rejected {
			msg = strings.TrimSpace("input rejected " + msg)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(f.Label), escapeCell(f.Value), f.State, escapeCell(msg))
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
