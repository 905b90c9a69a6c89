// Package tui implements the interactive syllable explorer: type Korean
// text and watch each syllable block fall apart into its jamo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ippo615/study-korean/internal/clipboard"
	"github.com/ippo615/study-korean/internal/hangul"
	"github.com/ippo615/study-korean/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 2)

	syllableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	bigCharStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Padding(0, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Model is the bubbletea model for the explorer.
type Model struct {
	input  textinput.Model
	status string
	width  int
}

// New creates the explorer model.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "한글을 입력하세요..."
	ti.Focus()
	ti.CharLimit = 32
	return Model{input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.status = m.copyJamos()
			return m, nil
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// copyJamos puts the flattened jamo sequence of the current input on the
// clipboard and returns a status line.
func (m Model) copyJamos() string {
	var jamos []rune
	for _, r := range m.input.Value() {
		s, err := hangul.FromSyllable(r)
		if err != nil {
			continue
		}
		jamos = append(jamos, s.Lead(), s.Vowel())
		if s.HasTrail() {
			jamos = append(jamos, s.Trail())
		}
	}
	if len(jamos) == 0 {
		return "nothing to copy"
	}
	if !clipboard.Available() {
		return "no clipboard tool found"
	}
	if err := clipboard.Write(string(jamos)); err != nil {
		return "clipboard error: " + err.Error()
	}
	return fmt.Sprintf("copied %s", string(jamos))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("study-korean · syllable explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	text := m.input.Value()
	var panels []string
	for _, r := range text {
		panels = append(panels, renderSyllable(r))
	}
	if len(panels) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
		b.WriteString("\n")
	}

	if last := lastSyllable(text); last != 0 && bigchar.Available() {
		art := bigchar.Render(last, 24, 10)
		if art != "" {
			b.WriteString("\n")
			b.WriteString(bigCharStyle.Render(art))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: copy jamo · esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderSyllable draws one character panel: the syllable with its jamo
// rows, or a short note for runes outside the Hangul Syllables block.
func renderSyllable(r rune) string {
	s, err := hangul.FromSyllable(r)
	if err != nil {
		note := "not a syllable"
		if hangul.IsLead(r) || hangul.IsVowel(r) || hangul.IsTrail(r) {
			note = "bare jamo"
		}
		return boxStyle.Render(fmt.Sprintf("%s\n%s",
			syllableStyle.Render(padCell(string(r))),
			errorStyle.Render(note)))
	}

	rows := []string{
		syllableStyle.Render(padCell(s.String())) + valueStyle.Render(fmt.Sprintf(" U+%04X", s.Codepoint())),
		labelStyle.Render("lead") + valueStyle.Render(fmt.Sprintf("%c (%d)", s.Lead(), s.LeadIndex())),
		labelStyle.Render("vowel") + valueStyle.Render(fmt.Sprintf("%c (%d)", s.Vowel(), s.VowelIndex())),
	}
	if s.HasTrail() {
		rows = append(rows, labelStyle.Render("trail")+valueStyle.Render(fmt.Sprintf("%c (%d)", s.Trail(), s.TrailIndex())))
	} else {
		rows = append(rows, labelStyle.Render("trail")+valueStyle.Render("(none)"))
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}

// padCell pads a string to a fixed display width so narrow and wide runes
// line up across panels.
func padCell(s string) string {
	const w = 4
	pad := w - runewidth.StringWidth(s)
	if pad < 0 {
		pad = 0
	}
	return s + strings.Repeat(" ", pad)
}

func lastSyllable(text string) rune {
	var last rune
	for _, r := range text {
		if hangul.IsSyllable(r) {
			last = r
		}
	}
	return last
}

// Run starts the explorer in the alternate screen.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
