// Package initcmd implements the interactive first-run wizard.
package initcmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/formgate/internal/core/config"
	"github.com/hay-kot/formgate/internal/core/form"
	"github.com/hay-kot/formgate/internal/core/i18n"
	"github.com/hay-kot/formgate/internal/core/styles"
	"github.com/hay-kot/formgate/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Answers are the choices collected by the wizard.
type Answers struct {
	Locale          string
	Theme           string
	Title           string
	EditAfterSubmit string
}

// DefaultAnswers returns the answers used with --yes.
func DefaultAnswers() Answers {
	d := config.DefaultConfig()
	return Answers{
		Locale:          d.Locale,
		Theme:           d.Theme,
		Title:           d.Form.Title,
		EditAfterSubmit: string(d.Form.EditAfterSubmit),
	}
}

// GenerateConfig builds a starter config from the answers. The form uses the
// built-in person fields so there is something to try right away.
func GenerateConfig(a Answers) config.Config {
	cfg := config.DefaultConfig()
	cfg.Locale = a.Locale
	cfg.Theme = a.Theme
	if a.Title != "" {
		cfg.Form.Title = a.Title
	}
	cfg.Form.EditAfterSubmit = form.EditAfterSubmit(a.EditAfterSubmit)
	return cfg
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := w.promptUser(&answers); err != nil {
			return err
		}
	}

	cfg := GenerateConfig(answers)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("generated config is invalid: %w", err)
	}

	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	if err := cfg.Save(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Edit the fields under 'form.fields' in %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'formgate config validate' to check your changes")
	p.Printf("  3. Run 'formgate' to open the form")

	return nil
}

func (w *Wizard) promptUser(a *Answers) error {
	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Form title").
			Description("Shown above the fields").
			Value(&a.Title),
		huh.NewSelect[string]().
			Title("Language").
			Description("Used for validation messages and buttons").
			Options(huh.NewOptions(i18n.Supported()...)...).
			Value(&a.Locale),
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&a.Theme),
		huh.NewSelect[string]().
			Title("Editing after submit").
			Description("keep: summary stays until reset\nrevert: any edit hides the summary").
			Options(huh.NewOptions(string(form.KeepSnapshot), string(form.RevertToEditing))...).
			Value(&a.EditAfterSubmit),
	))

	return f.Run()
}
