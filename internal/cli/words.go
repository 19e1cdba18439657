package cli

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/observability"
	"github.com/matzehuels/worksheets/pkg/wordgrid"
)

type wordsOpts struct {
	title       string
	description string
	output      string
}

func (c *CLI) wordsCommand() *cobra.Command {
	opts := &wordsOpts{}

	cmd := &cobra.Command{
		Use:   "words [file]",
		Short: "Generate a word grid worksheet",
		Long: `Generate a worksheet that lists words in a four-column grid.

Words are read one per line from the file, or from stdin when the file is
omitted or "-". Blank lines are ignored. Long lists continue on new pages.`,
		Example: `  worksheets words spelling.txt --title "Week 3 Spelling"
  printf 'cat\ndog\nsun\n' | worksheets words -t "Short Words"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := stdinPath
			if len(args) == 1 {
				src = args[0]
			}
			return runWords(cmd, src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "worksheet title (required)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "description printed under the title")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default from the title)")

	return cmd
}

func runWords(cmd *cobra.Command, src string, opts *wordsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	text, err := readSource(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}
	sheet := wordgrid.Sheet{
		Title:       opts.title,
		Description: opts.description,
		Words:       wordgrid.ParseWords(text),
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
	hooks.OnGenerateStart(ctx, wordgrid.Tool, len(sheet.Words))
	prog := newProgress(logger)

	var buf bytes.Buffer
	pages, err := wordgrid.Render(&buf, sheet)
	hooks.OnGenerateComplete(ctx, wordgrid.Tool, pages, time.Since(start), err)
	if err != nil {
		return err
	}
	prog.done("Rendered " + plural(len(sheet.Words), "word"))

	if err := out.deliver(ctx, buf.Bytes()); err != nil {
		return err
	}

	status := out.status(cmd)
	printSuccess(status, "Generated %s", StyleHighlight.Render(sheet.Title))
	printFile(status, out.display())
	printStats(status, plural(len(sheet.Words), "word"), plural(pages, "page"))
	return nil
}

// readSource reads a whole file, or stdin for "-".
func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read words from %s", sourceName(path))
	}
	return string(data), nil
}

func sourceName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}
