package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/formgate/internal/core/field"
	"github.com/hay-kot/formgate/pkg/iojson"
)

type FieldsCmd struct {
	flags      *Flags
	jsonOutput bool
}

// NewFieldsCmd creates a new fields command
func NewFieldsCmd(flags *Flags) *FieldsCmd {
	return &FieldsCmd{flags: flags}
}

// Register adds the fields command to the application
func (cmd *FieldsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fields",
		Usage:     "List the configured form fields",
		UsageText: "formgate fields [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output one JSON object per field",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *FieldsCmd) run(ctx context.Context, c *cli.Command) error {
	def, err := cmd.flags.Definition()
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, f := range def.Fields() {
			info := fieldInfo{
				ID:          f.ID,
				Label:       f.Label,
				Kind:        string(f.EffectiveKind()),
				Constraints: describeConstraints(f),
				Placeholder: f.PlaceholderText(),
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode field: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tKIND\tCONSTRAINTS")
	for _, f := range def.Fields() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Label, f.EffectiveKind(), describeConstraints(f))
	}
	return w.Flush()
}

// fieldInfo is the JSON output format for formgate fields --json.
type fieldInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Constraints string `json:"constraints"`
	Placeholder string `json:"placeholder"`
}

func describeConstraints(f field.Config) string {
	if f.EffectiveKind() == field.KindNumber {
		lo, hi := f.MinValue, f.MaxValue
		switch {
		case lo != nil && hi != nil:
			return fmt.Sprintf("%s to %s", formatBound(*lo), formatBound(*hi))
		case lo != nil:
			return ">= " + formatBound(*lo)
		case hi != nil:
			return "<= " + formatBound(*hi)
		}
		return "any number"
	}

	switch {
	case f.MinChars > 0 && f.MaxChars > 0:
		return fmt.Sprintf("%d-%d chars", f.MinChars, f.MaxChars)
	case f.MinChars > 0:
		return fmt.Sprintf("at least %d chars", f.MinChars)
	case f.MaxChars > 0:
		return fmt.Sprintf("at most %d chars", f.MaxChars)
	}
	return "any text"
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
