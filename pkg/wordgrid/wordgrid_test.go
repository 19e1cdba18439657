package wordgrid

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/worksheets/pkg/errors"
)

func TestParseWords(t *testing.T) {
	got := ParseWords("cat\n\n  dog \r\n\t\nbird")
	want := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWords() = %q, want %q", got, want)
	}
	if ParseWords("  \n ") != nil {
		t.Error("blank input should yield no words")
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		words []string
		want  [][]string
	}{
		{nil, nil},
		{[]string{"a"}, [][]string{{"a", "", "", ""}}},
		{[]string{"a", "b", "c", "d"}, [][]string{{"a", "b", "c", "d"}}},
		{[]string{"a", "b", "c", "d", "e", "f"}, [][]string{{"a", "b", "c", "d"}, {"e", "f", "", ""}}},
	}
	for _, tt := range tests {
		if got := Rows(tt.words, Columns); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Rows(%q) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		sheet Sheet
		ok    bool
	}{
		{"ok", Sheet{Title: "Sight Words", Words: []string{"the"}}, true},
		{"no title", Sheet{Title: "  ", Words: []string{"the"}}, false},
		{"no words", Sheet{Title: "Sight Words"}, false},
		{"long word", Sheet{Title: "T", Words: []string{strings.Repeat("a", 300)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sheet.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v", err)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{" Week 2  Sight\tWords ", "Week_2_Sight_Words.pdf"},
		{"Grade 1/2 words", "Grade_12_words.pdf"},
		{"///", DefaultFilename},
	}
	for _, tt := range tests {
		if got := (Sheet{Title: tt.title}).Filename(); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	var words []string
	for i := 0; i < 100; i++ {
		words = append(words, "word")
	}

	var buf bytes.Buffer
	pages, err := Render(&buf, Sheet{Title: "Sight Words", Description: "Read each word.", Words: words})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// 25 rows of 10 mm do not fit below a 45 mm header on A4.
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Render(&buf, Sheet{}); err == nil {
		t.Error("Render(empty sheet) should fail")
	}
	_, err := Render(&buf, Sheet{Title: "Emoji", Words: []string{"🙂"}})
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Render(emoji) error = %v, want render error", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
