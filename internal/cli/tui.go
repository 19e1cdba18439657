package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/surface"
	"github.com/matzehuels/worksheets/pkg/worksheet"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 3)
)

// =============================================================================
// EditorModel - Interactive number bond editor
// =============================================================================

type editorField int

const (
	fieldTitle editorField = iota
	fieldInstructions
	fieldMin
	fieldMax
	fieldTypes
	fieldDots
	fieldLines
	fieldLayout
	fieldCount
	numFields
)

var fieldLabels = [numFields]string{
	"Title", "Instructions", "Min", "Max", "Types", "Dots", "Number line", "Layout", "Count",
}

// typeChoices are the problem type combinations the editor cycles through.
// The empty choice shows how the worksheet falls back to "whole".
var typeChoices = [][]string{
	{"whole"},
	{"part"},
	{"mixed"},
	{"whole", "part"},
	{"whole", "part", "mixed"},
	{},
}

// maxCountDigits bounds typing into the count field.
const maxCountDigits = 4

// EditorModel is the bubbletea model for the number bond editor. Every edit
// reconfigures the session and redraws the preview problem.
type EditorModel struct {
	ctx     context.Context
	session *worksheet.Session

	Form    worksheet.Form
	Cursor  int
	Problem bond.Problem
	Notices []string
	Err     error

	// Generate is set when the user asked for the document on exit.
	Generate bool
}

// NewEditorModel creates an editor for form and draws the first preview.
func NewEditorModel(ctx context.Context, session *worksheet.Session, form worksheet.Form) EditorModel {
	m := EditorModel{ctx: ctx, session: session, Form: form}
	m.refresh()
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+g":
		if m.Err != nil {
			return m, nil
		}
		m.Generate = true
		return m, tea.Quit
	case "ctrl+r":
		m.preview()
	case "up", "shift+tab":
		if m.Cursor > 0 {
			m.Cursor--
			m.syncForm()
		}
	case "down", "tab":
		if m.Cursor < int(numFields)-1 {
			m.Cursor++
			m.syncForm()
		}
	case "left":
		m.adjust(-1)
	case "right", "enter":
		m.adjust(1)
	case "backspace":
		m.erase()
	default:
		switch key.Type {
		case tea.KeySpace:
			m.typeRunes([]rune{' '})
		case tea.KeyRunes:
			m.typeRunes(key.Runes)
		}
	}
	return m, nil
}

func (m *EditorModel) field() editorField { return editorField(m.Cursor) }

// adjust steps the current field: toggles flip, choices cycle and numbers
// move by one.
func (m *EditorModel) adjust(dir int) {
	switch m.field() {
	case fieldTypes:
		i := slices.IndexFunc(typeChoices, func(c []string) bool { return slices.Equal(c, m.Form.Kinds) })
		if i < 0 {
			i = 0
		}
		i = (i + dir + len(typeChoices)) % len(typeChoices)
		m.Form.Kinds = slices.Clone(typeChoices[i])
	case fieldDots:
		m.Form.Aids.Dots = !m.Form.Aids.Dots
	case fieldLines:
		m.Form.Aids.NumberLine = !m.Form.Aids.NumberLine
	case fieldLayout:
		if m.Form.Layout == worksheet.Layout3x2 {
			m.Form.Layout = worksheet.Layout2x2
		} else {
			m.Form.Layout = worksheet.Layout3x2
		}
	case fieldMin:
		m.Form.Min = stepField(m.Form.Min, dir)
	case fieldMax:
		m.Form.Max = stepField(m.Form.Max, dir)
	case fieldCount:
		m.Form.Count = max(0, m.Form.Count+dir)
	default:
		return
	}
	m.refresh()
}

func stepField(f worksheet.Field, dir int) worksheet.Field {
	n, _ := strconv.Atoi(strings.TrimSpace(string(f)))
	return worksheet.Field(strconv.Itoa(max(0, n+dir)))
}

func (m *EditorModel) typeRunes(runes []rune) {
	switch m.field() {
	case fieldTitle:
		m.Form.Title += string(runes)
	case fieldInstructions:
		m.Form.Instructions += string(runes)
	case fieldMin, fieldMax:
		digits := onlyDigits(runes)
		if digits == "" {
			return
		}
		if m.field() == fieldMin {
			m.Form.Min += worksheet.Field(digits)
		} else {
			m.Form.Max += worksheet.Field(digits)
		}
	case fieldCount:
		digits := onlyDigits(runes)
		s := strconv.Itoa(m.Form.Count) + digits
		if digits == "" || len(strings.TrimLeft(s, "0")) > maxCountDigits {
			return
		}
		m.Form.Count, _ = strconv.Atoi(s)
	default:
		if string(runes) == " " {
			m.adjust(1)
		}
		return
	}
	m.refresh()
}

func (m *EditorModel) erase() {
	switch m.field() {
	case fieldTitle:
		m.Form.Title = dropLast(m.Form.Title)
	case fieldInstructions:
		m.Form.Instructions = dropLast(m.Form.Instructions)
	case fieldMin:
		m.Form.Min = worksheet.Field(dropLast(string(m.Form.Min)))
	case fieldMax:
		m.Form.Max = worksheet.Field(dropLast(string(m.Form.Max)))
	case fieldCount:
		m.Form.Count /= 10
	default:
		return
	}
	m.refresh()
}

// refresh reconfigures the session and, when the form is valid, draws a new
// preview problem. An invalid form keeps the last preview on screen.
func (m *EditorModel) refresh() {
	_, n, err := m.session.Configure(m.ctx, m.Form)
	m.Err = err
	if err != nil {
		return
	}
	m.Notices = n.Messages()
	m.syncForm()
	m.preview()
}

// syncForm writes the resolved problem types and range back into the form,
// so a forced "whole" or a clamped number shows in its field. A number field
// under the cursor keeps the digits being typed until the cursor leaves it.
func (m *EditorModel) syncForm() {
	if m.Err != nil {
		return
	}
	cfg, ok := m.session.Config()
	if !ok {
		return
	}
	resolved := cfg.Form()
	m.Form.Kinds = resolved.Kinds
	if m.field() != fieldMin {
		m.Form.Min = resolved.Min
	}
	if m.field() != fieldMax {
		m.Form.Max = resolved.Max
	}
}

func (m *EditorModel) preview() {
	p, err := m.session.Preview(m.ctx)
	if err != nil {
		m.Err = err
		return
	}
	m.Problem = p
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Number Bond Editor"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ field  ←/→ change  type to edit  ctrl+r new problem  ctrl+g generate  esc quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, numFields)
	for i := range int(numFields) {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fieldLabels[i], m.value(editorField(i))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Setting", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 1:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, t.Render(), "  ", m.previewPanel()))
	b.WriteString("\n\n")

	for _, n := range m.Notices {
		b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(n) + "\n")
	}
	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + StyleError.Render(errors.UserMessage(m.Err)) + "\n")
	}
	return b.String()
}

func (m EditorModel) value(f editorField) string {
	switch f {
	case fieldTitle:
		return orDefault(m.Form.Title, worksheet.DefaultTitle)
	case fieldInstructions:
		return orDefault(m.Form.Instructions, "none")
	case fieldMin:
		return orDefault(string(m.Form.Min), strconv.Itoa(bond.DefaultMin))
	case fieldMax:
		return orDefault(string(m.Form.Max), strconv.Itoa(bond.DefaultMax))
	case fieldTypes:
		return orDefault(strings.Join(m.Form.Kinds, ", "), "none")
	case fieldDots:
		return onOff(m.Form.Aids.Dots)
	case fieldLines:
		return onOff(m.Form.Aids.NumberLine)
	case fieldLayout:
		return orDefault(m.Form.Layout, worksheet.DefaultLayout)
	case fieldCount:
		if m.Form.Count == 0 {
			return listDimStyle.Render("one page")
		}
		return strconv.Itoa(m.Form.Count)
	}
	return ""
}

// previewPanel draws the preview scene as text: three labeled nodes, the
// links between them and the caption.
func (m EditorModel) previewPanel() string {
	scene := m.session.Scene()
	label := func(slot surface.Slot) string {
		if e, ok := scene.Slot(slot); ok {
			return e.Text
		}
		return ""
	}
	node := func(slot surface.Slot) string {
		return "(" + lipgloss.PlaceHorizontal(4, lipgloss.Center, label(slot)) + ")"
	}

	lines := []string{
		node(surface.SlotLeftLabel) + "      " + node(surface.SlotRightLabel),
		`\      /`,
		node(surface.SlotBottomLabel),
		"",
		StyleHighlight.Render(label(surface.SlotCaption)),
	}
	if m.Form.Aids.Dots {
		l, r, btm := m.Problem.DotCounts()
		lines = append(lines, listDimStyle.Render(fmt.Sprintf("dots %d · %d · %d", l, r, btm)))
	}
	if m.Form.Aids.NumberLine {
		cfg, _ := m.session.Config()
		lines = append(lines, listDimStyle.Render(fmt.Sprintf("number line %d-%d", cfg.Range.Min, cfg.Range.Max)))
	}
	return previewBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// =============================================================================
// Helpers
// =============================================================================

func onlyDigits(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dropLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return listDimStyle.Render(def)
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
