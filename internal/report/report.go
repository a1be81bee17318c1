// Package report renders a Diagnosis for humans (text) or tools (json).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lucasnoah/nodediag/internal/engine"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 72

// Options controls text rendering.
type Options struct {
	Color bool
	Width int
	// SourceLine returns the source text at the crime scene, or "".
	// Nil disables the lookup.
	SourceLine func(d engine.Diagnosis) string
}

type palette struct {
	rule, title, label, code, where, source, dim *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		rule:   mk(color.FgRed),
		title:  mk(color.FgRed, color.Bold),
		label:  mk(color.Bold),
		code:   mk(color.FgYellow),
		where:  mk(color.FgCyan, color.Underline),
		source: mk(color.FgWhite, color.Faint),
		dim:    mk(color.Faint),
	}
}

// Text writes the human-facing report.
func Text(w io.Writer, d engine.Diagnosis, exitCode int, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	p := newPalette(opts.Color)
	bar := p.rule.Sprint(strings.Repeat("─", width))
	rec := d.Record

	var b strings.Builder
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, " %s %s %s\n", d.Entry.Icon, p.title.Sprint(rec.Kind), p.dim.Sprintf("[%s]", d.Pattern))
	fmt.Fprintln(&b, bar)
	fmt.Fprintf(&b, " %s %s\n", p.label.Sprint("Message:"), rec.Message)
	if rec.Location != nil {
		fmt.Fprintf(&b, " %s   %s\n", p.label.Sprint("Where:"), p.where.Sprint(rec.Location.String()))
		if opts.SourceLine != nil {
			if src := opts.SourceLine(d); src != "" {
				fmt.Fprintf(&b, "          %s\n", p.source.Sprint("> "+src))
			}
		}
	}
	if rec.HasSystemCode() {
		fmt.Fprintf(&b, " %s    %s\n", p.label.Sprint("Code:"), p.code.Sprint(rec.SystemCode))
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, " %s\n", p.label.Sprint("What happened"))
	writeWrapped(&b, d.Entry.Summary, width)
	fmt.Fprintf(&b, " %s\n", p.label.Sprint("How to fix"))
	writeWrapped(&b, d.Entry.Remedy, width)
	if d.Entry.Extra != "" {
		fmt.Fprintf(&b, " %s\n", p.label.Sprint("Note"))
		writeWrapped(&b, d.Entry.Extra, width)
	}
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, p.dim.Sprintf(" process exited with code %d", exitCode))

	_, err := io.WriteString(w, b.String())
	return err
}

// NoDetails writes the notice for a failed child that left no stderr.
func NoDetails(w io.Writer, exitCode int, opts Options) error {
	p := newPalette(opts.Color)
	_, err := fmt.Fprintf(w, "%s process exited with code %d; no error output was captured, no details available\n",
		p.title.Sprint("✖"), exitCode)
	return err
}

type jsonReport struct {
	ExitCode  int               `json:"exit_code"`
	Diagnosis *engine.Diagnosis `json:"diagnosis,omitempty"`
}

// JSON writes the diagnosis as one JSON document. A nil d produces a report
// carrying only the exit code.
func JSON(w io.Writer, d *engine.Diagnosis, exitCode int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{ExitCode: exitCode, Diagnosis: d}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// writeWrapped writes text indented by three spaces, wrapped at width.
func writeWrapped(b *strings.Builder, text string, width int) {
	const indent = "   "
	limit := width - len(indent)
	if limit < 20 {
		limit = 20
	}
	line := 0
	b.WriteString(indent)
	for i, word := range strings.Fields(text) {
		n := len([]rune(word))
		if i > 0 {
			if line+1+n > limit {
				b.WriteString("\n" + indent)
				line = 0
			} else {
				b.WriteByte(' ')
				line++
			}
		}
		b.WriteString(word)
		line += n
	}
	b.WriteByte('\n')
}
