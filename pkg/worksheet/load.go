package worksheet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/worksheets/pkg/errors"
)

// Config file formats recognized by LoadForm.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatOf returns the config format implied by a file extension.
func FormatOf(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// LoadForm reads a Form from a .toml, .yaml or .yml file.
func LoadForm(path string) (Form, error) {
	format, ok := FormatOf(path)
	if !ok {
		return Form{}, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported config file %q (use .toml, .yaml or .yml)", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return DecodeForm(data, format)
}

// DecodeForm parses a Form. Unknown keys are rejected so a typo does not
// silently fall back to a default.
func DecodeForm(data []byte, format string) (Form, error) {
	var f Form
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return Form{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml config")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Form{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return Form{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml config")
		}
	default:
		return Form{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	return f, nil
}
