package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/observability"
)

const deliveryHint = "check that the output directory exists and is writable, or pass -o - to write to stdout"

// output resolves the -o flag. An empty flag means name the file after the
// sheet; "-" writes to the command's standard output.
type output struct {
	path   string
	stdout io.Writer
}

func newOutput(cmd *cobra.Command, flag, fallback string) (output, error) {
	path := flag
	if path == "" {
		path = fallback
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return output{}, err
	}
	return output{path: path, stdout: cmd.OutOrStdout()}, nil
}

func (o output) toStdout() bool { return o.path == stdoutPath }

// status returns where progress and summaries go. When the document itself
// goes to stdout they move to stderr.
func (o output) status(cmd *cobra.Command) io.Writer {
	if o.toStdout() {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// writer returns a sink that creates the target file on first write, so a
// failed render leaves nothing behind.
func (o output) writer() *sink {
	return &sink{path: o.path, stdout: o.stdout}
}

// deliver writes data in one go and reports the delivery.
func (o output) deliver(ctx context.Context, data []byte) error {
	s := o.writer()
	n, err := s.Write(data)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = errors.Wrap(errors.ErrCodeDelivery, err, "write %s", o.display()).WithHint(deliveryHint)
	}
	observability.Delivery().OnDeliver(ctx, o.path, n, err)
	return err
}

func (o output) display() string {
	if o.toStdout() {
		return "stdout"
	}
	return o.path
}

// sink is an io.WriteCloser over a lazily created file or stdout.
type sink struct {
	path   string
	stdout io.Writer
	f      *os.File
	n      int
}

func (s *sink) Write(p []byte) (int, error) {
	if s.path == stdoutPath {
		n, err := s.stdout.Write(p)
		s.n += n
		return n, err
	}
	if s.f == nil {
		f, err := os.Create(s.path)
		if err != nil {
			return 0, err
		}
		s.f = f
	}
	n, err := s.f.Write(p)
	s.n += n
	return n, err
}

func (s *sink) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
