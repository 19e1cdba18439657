package cli

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/observability"
	"github.com/matzehuels/worksheets/pkg/phonics"
)

// defaultSuggestions is the number of example words picked when none are
// given.
const defaultSuggestions = 6

type phonicsOpts struct {
	kind         string
	examples     []string
	suggest      int
	seed         uint64
	color        string
	title        string
	instructions string
	output       string
	list         bool
}

func (c *CLI) phonicsCommand() *cobra.Command {
	opts := &phonicsOpts{}

	cmd := &cobra.Command{
		Use:   "phonics <sound>",
		Short: "Generate a phonics sound sheet",
		Long: `Generate a one-page phonics sheet: the target sound in a colored box and
two to nine example words that contain it.

Without --examples, words are suggested from the built-in sound table. The
box color follows the difficulty of the sound type unless --color is given.`,
		Example: `  worksheets phonics sh --type digraph
  worksheets phonics a --examples apple,ant,axe --color "#FFF2CC"
  worksheets phonics --list --type blend`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			kind, err := phonics.ParseKind(opts.kind)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return phonics.DefaultTable().Sounds(kind), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return listSounds(cmd.OutOrStdout(), opts.kind)
			}
			return runPhonics(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "type", "sound", "sound type: sound, blend or digraph")
	cmd.Flags().StringSliceVarP(&opts.examples, "examples", "e", nil, "example words (2-9)")
	cmd.Flags().IntVar(&opts.suggest, "suggest", defaultSuggestions, "number of suggested words when --examples is not given")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for suggestions (default random)")
	cmd.Flags().StringVar(&opts.color, "color", "", "box color as hex, e.g. #FFE0E0 (default by difficulty)")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "sheet title (default \"Phonics Practice: <SOUND>\")")
	cmd.Flags().StringVar(&opts.instructions, "instructions", "", "instructions printed under the title")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default phonics_<sound>.pdf)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the sounds of --type and exit")
	_ = cmd.RegisterFlagCompletionFunc("type", fixedCompletion("sound", "blend", "digraph"))

	return cmd
}

func runPhonics(cmd *cobra.Command, sound string, opts *phonicsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	kind, err := phonics.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	sheet := phonics.Sheet{
		Title:        opts.title,
		Instructions: opts.instructions,
		Kind:         kind,
		Sound:        strings.ToLower(strings.TrimSpace(sound)),
		Examples:     opts.examples,
		Color:        opts.color,
	}

	if len(sheet.Examples) == 0 {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		n := min(max(opts.suggest, phonics.MinExamples), phonics.MaxExamples)
		rng := rand.New(rand.NewPCG(seed, seed))
		if sheet.Examples, err = phonics.DefaultTable().Suggest(rng, kind, sheet.Sound, n); err != nil {
			return err
		}
		logger.Debug("suggested examples", "sound", sheet.Sound, "words", sheet.Examples, "seed", seed)
	}
	if err := sheet.Validate(); err != nil {
		return err
	}
	out, err := newOutput(cmd, opts.output, sheet.Filename())
	if err != nil {
		return err
	}

	start := time.Now()
	hooks := observability.Worksheet()
	hooks.OnGenerateStart(ctx, phonics.Tool, len(sheet.Examples))
	var buf bytes.Buffer
	err = phonics.Render(&buf, sheet)
	pages := 1
	if err != nil {
		pages = 0
	}
	hooks.OnGenerateComplete(ctx, phonics.Tool, pages, time.Since(start), err)
	if err != nil {
		return err
	}

	if err := out.deliver(ctx, buf.Bytes()); err != nil {
		return err
	}

	status := out.status(cmd)
	printSuccess(status, "Generated %s", StyleHighlight.Render(sheet.DisplayTitle()))
	printFile(status, out.display())
	printStats(status, strings.Join(sheet.Examples, ", "), phonics.Difficulty(kind))
	return nil
}

func listSounds(w io.Writer, kindName string) error {
	kind, err := phonics.ParseKind(kindName)
	if err != nil {
		return err
	}
	table := phonics.DefaultTable()
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s (%s)", kind, phonics.Difficulty(kind))))
	for _, s := range table.Sounds(kind) {
		entry, _ := table.Lookup(kind, s)
		printKeyValue(w, s, entry.Type)
		printDetail(w, "%s", strings.Join(entry.Examples, ", "))
	}
	return nil
}
