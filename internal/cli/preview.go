package cli

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
	"github.com/matzehuels/worksheets/pkg/worksheet"
)

// Preview image formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
)

type previewOpts struct {
	form   formFlags
	output string
	format string
	scale  float64
}

func (c *CLI) previewCommand() *cobra.Command {
	opts := &previewOpts{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one number bond diagram as SVG or PNG",
		Long: `Render a single number bond problem with the same settings as the bonds
command. The diagram is drawn on a 160x100 mm canvas.

The format follows the output file extension unless --format is given.`,
		Example: `  worksheets preview --min 3 --max 7 --dots -o bond.svg
  worksheets preview --lines --format png --scale 8 -o - > bond.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, opts)
		},
	}

	opts.form.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default preview.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "image format: svg or png")
	cmd.Flags().Float64Var(&opts.scale, "scale", surface.DefaultScale, "pixels per millimeter")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(formatSVG, formatPNG))

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, opts *previewOpts) error {
	ctx := cmd.Context()

	format, err := previewFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	form, err := opts.form.form(cmd)
	if err != nil {
		return err
	}
	out, err := newOutput(cmd, opts.output, "preview."+format)
	if err != nil {
		return err
	}
	status := out.status(cmd)

	session := worksheet.NewSession(loggerFromContext(ctx))
	_, notice, err := session.Configure(ctx, form)
	if err != nil {
		return err
	}
	printNotices(status, notice.Messages())

	p, err := session.Preview(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	scene := session.Scene()
	if format == formatPNG {
		err = scene.WritePNG(&buf, surface.WithScale(opts.scale))
	} else {
		err = scene.WriteSVG(&buf, surface.WithScale(opts.scale))
	}
	if err != nil {
		return err
	}
	if err := out.deliver(ctx, buf.Bytes()); err != nil {
		return err
	}

	printSuccess(status, "Previewed %s", StyleHighlight.Render(p.Caption()))
	printFile(status, out.display())
	return nil
}

// previewFormat picks the image format from the flag, then the output
// extension, then SVG.
func previewFormat(flag, output string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch format {
	case "", formatSVG:
		return formatSVG, nil
	case formatPNG:
		return formatPNG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported preview format: %q", format).
		WithHint("use svg or png")
}
