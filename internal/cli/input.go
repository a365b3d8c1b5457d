// Package cli handles report output and an interactive prompt for checking text line by line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
)

const (
	completeCmd = ":c "
	quitCmd     = ":q"
)

// InputHandler reads lines, spell checks each one and prints the result.
// Lines starting with ":c " ask the completer for the rest of the line.
type InputHandler struct {
	checker      *checker.Checker
	completer    suggest.ICompleter
	printer      *Printer
	in           io.Reader
	out          io.Writer
	suggestLimit int
	noFilter     bool
	requestCount int
}

// NewInputHandler wires a prompt to in/out. completer may be nil.
func NewInputHandler(c *checker.Checker, completer suggest.ICompleter, limit int, noFilter bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		checker:      c,
		completer:    completer,
		printer:      NewPrinter(out),
		in:           in,
		out:          out,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start runs the prompt until EOF or ":q".
func (h *InputHandler) Start() error {
	reader := bufio.NewReader(h.in)
	fmt.Fprintln(h.out, "type a sentence and press Enter to check it, ':c <prefix>' to complete, ':q' to quit")

	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == quitCmd {
			return nil
		}
		if line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// RequestCount is the number of non-empty lines handled.
func (h *InputHandler) RequestCount() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if prefix, ok := strings.CutPrefix(line, completeCmd); ok {
		h.handleComplete(strings.TrimSpace(prefix))
		return
	}

	start := time.Now()
	words := checker.ParseWords(line)
	found := h.checker.Check(words)
	log.Debugf("Took [ %v ] for %d words", time.Since(start), len(words))

	if len(found) == 0 {
		fmt.Fprintln(h.out, "No misspellings found.")
		return
	}
	h.printer.PrintMisspellings(found)
}

func (h *InputHandler) handleComplete(prefix string) {
	if h.completer == nil {
		log.Warn("Completion is not available")
		return
	}
	if !h.noFilter && !utils.IsValidInput(prefix) {
		fmt.Fprintf(h.out, "No completions for prefix: '%s' (filtered out)\n", prefix)
		return
	}

	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "No completions for prefix: '%s'\n", prefix)
		return
	}

	fmt.Fprintf(h.out, "Found %d completions for prefix '%s':\n", len(suggestions), prefix)
	for i, s := range suggestions {
		fmt.Fprintf(h.out, "%2d. %-30s (freq: %8s)\n", i+1, s.Word, utils.FormatWithCommas(s.Frequency))
	}
}
