package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/worksheet"
)

type editOpts struct {
	form      formFlags
	output    string
	pageSize  string
	landscape bool
}

func (c *CLI) editCommand() *cobra.Command {
	opts := &editOpts{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a number bond worksheet with a live preview",
		Long: `Open an interactive editor for number bond settings. Every change redraws
a sample problem; ctrl+g writes the worksheet and exits.

Flags and --config set the starting values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd, opts)
		},
	}

	opts.form.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default from the title)")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "A4", "page size: A4, Letter or Legal")
	cmd.Flags().BoolVar(&opts.landscape, "landscape", false, "print pages in landscape orientation (3x2 always is)")

	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, opts *editOpts) error {
	ctx := cmd.Context()

	form, err := opts.form.form(cmd)
	if err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	session := worksheet.NewSession(loggerFromContext(ctx))
	session.DocumentOptions = documentOptions(opts.pageSize, opts.landscape)

	screen := cmd.OutOrStdout()
	if opts.output == stdoutPath {
		screen = cmd.ErrOrStderr()
	}
	program := tea.NewProgram(
		NewEditorModel(ctx, session, form),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(screen),
	)
	final, err := program.Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "run editor")
	}
	m, ok := final.(EditorModel)
	if !ok || !m.Generate {
		printInfo(screen, "No worksheet written")
		return nil
	}

	cfg, _ := session.Config()
	out, err := newOutput(cmd, opts.output, cfg.Filename(session.Notice()))
	if err != nil {
		return err
	}
	status := out.status(cmd)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Generating %s...", plural(cfg.Count, "problem")))
	res, err := generate(ctx, session, out, spinner)
	if err != nil {
		return err
	}

	printSuccess(status, "Generated %s", StyleHighlight.Render(cfg.Title))
	printFile(status, out.display())
	printStats(status, plural(len(res.Problems), "problem"), plural(res.Pages, "page"), fmt.Sprintf("seed %d", cfg.Seed))
	return nil
}
