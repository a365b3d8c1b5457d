package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/charmbracelet/lipgloss"
)

const separator = "--------------------------------"

// Report is the result of one file check.
type Report struct {
	DictionaryWords int
	CheckedWords    int
	Misspellings    []checker.MisspelledWord
	Elapsed         time.Duration
}

// Printer renders reports with styles suited to its writer.
type Printer struct {
	w       io.Writer
	label   lipgloss.Style
	word    lipgloss.Style
	faint   lipgloss.Style
	summary lipgloss.Style
}

// NewPrinter creates a printer whose color profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		label:   r.NewStyle().Bold(true),
		word:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		faint:   r.NewStyle().Faint(true),
		summary: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
	}
}

// PrintReport writes the full check report.
func (p *Printer) PrintReport(r Report) {
	p.printf("%s\n", p.summary.Render(fmt.Sprintf("Using dictionary with %s %s.",
		utils.FormatWithCommas(r.DictionaryWords), utils.Plural(r.DictionaryWords, "word", "words"))))
	p.printf("%s\n", p.summary.Render(fmt.Sprintf("Spell checking %s %s.",
		utils.FormatWithCommas(r.CheckedWords), utils.Plural(r.CheckedWords, "word", "words"))))
	p.printf("%s\n", p.summary.Render(fmt.Sprintf("Found %d misspelled %s:",
		len(r.Misspellings), utils.Plural(len(r.Misspellings), "word", "words"))))
	p.printf("%s\n", p.faint.Render(separator))

	p.PrintMisspellings(r.Misspellings)

	p.printf("%s\n", p.faint.Render(separator))
	p.printf("Spell check finished in %v\n", r.Elapsed.Round(time.Microsecond))
}

// PrintMisspellings writes one block per misspelling.
func (p *Printer) PrintMisspellings(found []checker.MisspelledWord) {
	for _, m := range found {
		p.printf("%s\n", p.faint.Render(separator))
		p.printf("%s %s\n", p.label.Render("Misspelled Word:"), p.word.Render(m.Word))
		p.printf("%s %s\n", p.label.Render("Context:"), m.Context)
		p.printf("%s %s\n", p.label.Render("Suggested Replacements:"), strings.Join(m.Suggestions, ", "))
	}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
