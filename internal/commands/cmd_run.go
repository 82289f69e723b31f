package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/internal/core/logging"
	"github.com/hay-kot/formgate/internal/printer"
	"github.com/hay-kot/formgate/internal/tui"
)

type RunCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags, build tui.BuildInfo) *RunCmd {
	return &RunCmd{
		flags: flags,
		build: build,
	}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Open the interactive form",
		UsageText: "formgate run",
		Description: `Opens the configured form in the terminal.

Fields validate as you type. Submit stays disabled until every field is
filled and valid. Press ctrl+s to submit, ctrl+r to reset and esc to quit.`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *RunCmd) Run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "run")

	def, err := cmd.flags.Definition()
	if err != nil {
		return err
	}

	catalog, err := cmd.flags.Catalog()
	if err != nil {
		return err
	}

	m := tui.New(tui.Deps{
		Config:     cmd.flags.Config,
		Definition: def,
		Translator: catalog,
		BuildInfo:  cmd.build,
	})

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	state := finalModel.(tui.Model).State()
	log.Info().Ctx(ctx).Bool("submitted", state.Submitted()).Msg("tui exited")

	if summary := state.Summary(); summary != nil {
		p := printer.Ctx(ctx)
		p.Successf("%s", catalog.T(i18n.MsgSubmittedBanner))
		for _, entry := range summary {
			p.Printf("  %s: %s", entry.Label, entry.Value)
		}
	}

	return nil
}
