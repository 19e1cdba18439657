package surface

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/matzehuels/worksheets/pkg/errors"
)

// WinAnsi converts s to the Windows-1252 bytes expected by PDF core fonts.
// Runes outside that character set are an error.
func WinAnsi(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "text %q cannot be printed with the built-in PDF fonts", s).
			WithHint("use characters from the Latin-1 range")
	}
	return out, nil
}
