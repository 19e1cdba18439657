// Package phonics renders phonics sound sheets: a colored box with the
// target sound followed by example words that contain it.
package phonics

import (
	_ "embed"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/worksheets/pkg/errors"
)

//go:embed data.yaml
var tableData []byte

// Kind groups sounds by difficulty.
type Kind string

const (
	SingleSounds Kind = "singleSounds"
	Blends       Kind = "blends"
	Digraphs     Kind = "digraphs"
)

// Kinds lists every kind from easiest to hardest.
var Kinds = []Kind{SingleSounds, Blends, Digraphs}

// ParseKind accepts the table keys and the short names sound, blend and
// digraph.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singlesounds", "sound", "sounds", "single":
		return SingleSounds, nil
	case "blends", "blend":
		return Blends, nil
	case "digraphs", "digraph":
		return Digraphs, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "invalid sound type: %q (must be sound, blend or digraph)", s)
}

// Noun is the word used for the kind in default instructions.
func (k Kind) Noun() string {
	switch k {
	case Blends:
		return "blend"
	case Digraphs:
		return "digraph"
	}
	return "sound"
}

// Sound describes one entry of the table.
type Sound struct {
	Type       string   `yaml:"type"`
	Examples   []string `yaml:"examples"`
	Alternates []string `yaml:"alternates"`
}

// Words returns the examples followed by the alternates, without duplicates.
func (s Sound) Words() []string {
	var out []string
	for _, w := range append(slices.Clone(s.Examples), s.Alternates...) {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// Table maps kind and sound to its example words.
type Table map[Kind]map[string]Sound

// DefaultTable returns the built-in table.
var DefaultTable = sync.OnceValue(func() Table {
	t, err := ParseTable(tableData)
	if err != nil {
		panic(err)
	}
	return t
})

// ParseTable decodes a YAML sound table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse sound table")
	}
	return t, nil
}

// Sounds returns the sounds of a kind in alphabetical order.
func (t Table) Sounds(kind Kind) []string {
	sounds := make([]string, 0, len(t[kind]))
	for s := range t[kind] {
		sounds = append(sounds, s)
	}
	sort.Strings(sounds)
	return sounds
}

// Lookup returns the entry for sound.
func (t Table) Lookup(kind Kind, sound string) (Sound, error) {
	s, ok := t[kind][strings.ToLower(sound)]
	if !ok {
		return Sound{}, errors.New(errors.ErrCodeInvalidInput, "unknown %s %q", kind.Noun(), sound).
			WithHint("choose one of: %s", strings.Join(t.Sounds(kind), ", "))
	}
	return s, nil
}

// Suggest returns up to n example words for sound in random order.
func (t Table) Suggest(rng *rand.Rand, kind Kind, sound string, n int) ([]string, error) {
	s, err := t.Lookup(kind, sound)
	if err != nil {
		return nil, err
	}
	words := s.Words()
	rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	return words[:max(0, min(n, len(words)))], nil
}
