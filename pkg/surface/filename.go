package surface

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	// Characters that are unsafe in file names on common systems.
	unsafeName = regexp.MustCompile(`[/\\:*?"<>|\x00]`)
)

// Filename derives a document file name from a title: whitespace runs become
// underscores, path separators and other unsafe characters are dropped and
// ".pdf" is appended. An empty or unusable title yields fallback.
func Filename(title, fallback string) string {
	name := unsafeName.ReplaceAllString(strings.TrimSpace(title), "")
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
	if strings.Trim(name, "._") == "" {
		return fallback
	}
	return name + ".pdf"
}
