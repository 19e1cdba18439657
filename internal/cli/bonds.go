package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/observability"
	"github.com/matzehuels/worksheets/pkg/surface"
	"github.com/matzehuels/worksheets/pkg/worksheet"
)

// =============================================================================
// Form Flags
// =============================================================================

// formFlags are the number bond settings shared by bonds, preview and edit.
type formFlags struct {
	config       string
	title        string
	instructions string
	footer       string
	min, max     string
	types        []string
	dots         bool
	lines        bool
	tenFrame     bool
	layout       string
	count        int
	seed         uint64
}

func (f *formFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "load settings from a TOML or YAML file; explicit flags override it")
	fl.StringVarP(&f.title, "title", "t", "", "worksheet title (default \""+worksheet.DefaultTitle+"\")")
	fl.StringVar(&f.instructions, "instructions", "", "instructions printed under the title")
	fl.StringVar(&f.footer, "footer", "", "footer text (default \""+worksheet.DefaultFooter+"\")")
	fl.StringVar(&f.min, "min", fmt.Sprint(bond.DefaultMin), "smallest whole number (0-19)")
	fl.StringVar(&f.max, "max", fmt.Sprint(bond.DefaultMax), "largest whole number (min+1 to 20)")
	fl.StringSliceVar(&f.types, "types", []string{bond.FindWhole.String()}, "problem types: "+strings.Join(bond.KindNames(bond.Kinds), ", "))
	fl.BoolVar(&f.dots, "dots", false, "draw dot groups next to the circles")
	fl.BoolVar(&f.lines, "lines", false, "draw a number line under each diagram")
	fl.BoolVar(&f.tenFrame, "ten-frame", false, "draw ten frames (not available yet)")
	fl.StringVar(&f.layout, "layout", worksheet.DefaultLayout, "page layout: 2x2, or 3x2 on landscape pages")
	fl.IntVarP(&f.count, "count", "n", 0, "number of problems (default one full page)")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed for a reproducible worksheet (default random)")

	_ = cmd.RegisterFlagCompletionFunc("types", fixedCompletion(bond.KindNames(bond.Kinds)...))
	_ = cmd.RegisterFlagCompletionFunc("layout", fixedCompletion(worksheet.Layout2x2, worksheet.Layout3x2))
	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
}

// form builds the raw form: the config file first, then every flag the user
// set explicitly. Without a config file the flag defaults apply.
func (f *formFlags) form(cmd *cobra.Command) (worksheet.Form, error) {
	var form worksheet.Form
	if f.config != "" {
		var err error
		if form, err = worksheet.LoadForm(f.config); err != nil {
			return worksheet.Form{}, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if f.config == "" || fl.Changed(name) {
			apply()
		}
	}
	set("title", func() { form.Title = f.title })
	set("instructions", func() { form.Instructions = f.instructions })
	set("footer", func() { form.Footer = f.footer })
	set("min", func() { form.Min = worksheet.Field(f.min) })
	set("max", func() { form.Max = worksheet.Field(f.max) })
	set("types", func() { form.Kinds = f.types })
	set("dots", func() { form.Aids.Dots = f.dots })
	set("lines", func() { form.Aids.NumberLine = f.lines })
	set("ten-frame", func() { form.Aids.TenFrame = f.tenFrame })
	set("layout", func() { form.Layout = f.layout })
	set("count", func() { form.Count = f.count })
	set("seed", func() { form.Seed = f.seed })
	return form, nil
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// =============================================================================
// Bonds Command
// =============================================================================

type bondsOpts struct {
	form      formFlags
	output    string
	pageSize  string
	landscape bool
	dryRun    bool
}

func (c *CLI) bondsCommand() *cobra.Command {
	opts := &bondsOpts{}

	cmd := &cobra.Command{
		Use:   "bonds",
		Short: "Generate a number bond worksheet",
		Long: `Generate a printable number bond worksheet.

Each problem shows three connected circles: two parts on top and their whole
below. One number is left blank for the student to fill in, depending on the
problem type:

  whole   both parts given, find the whole   (3 + 4 = ?)
  part    whole and one part given           (7 - 3 = ?)
  mixed   all numbers shown                  (3 + 4 = 7)

Out-of-range numbers are clamped to 0-20 and reported as warnings.`,
		Example: `  # Four problems per page, wholes between 3 and 7
  worksheets bonds --min 3 --max 7

  # Twelve addition and subtraction problems with dots and number lines,
  # six per landscape page
  worksheets bonds --types whole,part --dots --lines --layout 3x2 -n 12

  # Settings from a file, written to stdout
  worksheets bonds -c week3.toml -o - > week3.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBonds(cmd, opts)
		},
	}

	opts.form.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default from the title)")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "A4", "page size: A4, Letter or Legal")
	cmd.Flags().BoolVar(&opts.landscape, "landscape", false, "print pages in landscape orientation (3x2 always is)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "lay out the worksheet and list the problems without writing a file")
	_ = cmd.RegisterFlagCompletionFunc("page-size", fixedCompletion("A4", "Letter", "Legal"))

	return cmd
}

func (c *CLI) runBonds(cmd *cobra.Command, opts *bondsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	form, err := opts.form.form(cmd)
	if err != nil {
		return err
	}
	session := worksheet.NewSession(logger)
	session.DocumentOptions = documentOptions(opts.pageSize, opts.landscape)

	cfg, notice, err := session.Configure(ctx, form)
	if err != nil {
		return err
	}
	out, err := newOutput(cmd, opts.output, cfg.Filename(notice))
	if err != nil {
		return err
	}
	status := out.status(cmd)
	printNotices(status, notice.Messages())

	if opts.dryRun {
		return printPlan(status, cfg, session.DocumentOptions)
	}

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Generating %s...", plural(cfg.Count, "problem")))
	res, err := generate(ctx, session, out, spinner)
	if err != nil {
		return err
	}

	printSuccess(status, "Generated %s", StyleHighlight.Render(cfg.Title))
	printFile(status, out.display())
	printStats(status,
		plural(len(res.Problems), "problem"),
		plural(res.Pages, "page"),
		fmt.Sprintf("seed %d", cfg.Seed))
	return nil
}

// generate runs the session into out and reports the delivery.
func generate(ctx context.Context, session *worksheet.Session, out output, busy worksheet.Busy) (*worksheet.Result, error) {
	w := out.writer()
	res, err := session.Generate(ctx, w, busy)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeDelivery, cerr, "write %s", out.display()).WithHint(deliveryHint)
	}
	if w.n > 0 || errors.Is(err, errors.ErrCodeDelivery) {
		observability.Delivery().OnDeliver(ctx, out.path, w.n, err)
	}
	return res, err
}

func documentOptions(pageSize string, landscape bool) []surface.DocumentOption {
	var opts []surface.DocumentOption
	if pageSize != "" {
		opts = append(opts, surface.WithPageSize(pageSize))
	}
	if landscape {
		opts = append(opts, surface.WithLandscape())
	}
	return opts
}

// printPlan lists what a run would produce without drawing it.
func printPlan(w io.Writer, cfg worksheet.Config, docOpts []surface.DocumentOption) error {
	pageW, pageH := surface.NewDocument(cfg.Grid(), cfg.Header(), docOpts...).PageSize()
	plan, err := worksheet.PlanRun(cfg, pageW, pageH)
	if err != nil {
		return err
	}

	printInfo(w, "Dry run: %s on %s", plural(len(plan.Problems), "problem"), plural(len(plan.Pages), "page"))
	printKeyValue(w, "Title", cfg.Title)
	printKeyValue(w, "Range", fmt.Sprintf("%d-%d", cfg.Range.Min, cfg.Range.Max))
	printKeyValue(w, "Types", strings.Join(bond.KindNames(cfg.Kinds), ", "))
	printKeyValue(w, "Layout", fmt.Sprintf("%s (%.0fx%.0f mm page)", cfg.Layout, pageW, pageH))
	for i, n := range plan.Pages {
		printDetail(w, "page %d: %s", i+1, plural(n, "problem"))
	}
	for i, p := range plan.Problems {
		printKeyValue(w, fmt.Sprintf("#%d", i+1), p.Caption())
	}
	printStats(w, fmt.Sprintf("%d draw calls", plan.Calls()), fmt.Sprintf("seed %d", cfg.Seed))
	printNextStep(w, "Keep these problems when writing the file", fmt.Sprintf("--seed %d", cfg.Seed))
	return nil
}
