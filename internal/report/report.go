// Package report collects diagnostics emitted by expansions run on behalf of the CLI.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/fatih/color"

	"github.com/sirkon/reuseid/internal/expand"
	"github.com/sirkon/reuseid/internal/rules"
)

// Collector is an expansion context safe for concurrent use. It keeps diagnostics in
// arrival order.
type Collector struct {
	mu    sync.Mutex
	diags []expand.Diagnostic
}

var _ expand.Context = (*Collector)(nil)

// Diagnose records the diagnostic.
func (c *Collector) Diagnose(d expand.Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a snapshot of collected diagnostics ordered by position.
func (c *Collector) Diagnostics() []expand.Diagnostic {
	c.mu.Lock()
	out := slices.Clone(c.diags)
	c.mu.Unlock()

	slices.SortStableFunc(out, func(a, b expand.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// HasErrors reports whether any error diagnostic was collected.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.diags {
		if d.Severity >= rules.SeverityError {
			return true
		}
	}
	return false
}

// Printer renders diagnostics in a compact, human-readable form.
type Printer struct {
	w        io.Writer
	severity map[rules.Severity]*color.Color
	id       *color.Color
}

// NewPrinter creates a printer. Colors are disabled when colorize is false regardless of
// the terminal.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	p := &Printer{
		w: w,
		severity: map[rules.Severity]*color.Color{
			rules.SeverityError:   color.New(color.FgRed, color.Bold),
			rules.SeverityWarning: color.New(color.FgYellow, color.Bold),
			rules.SeverityNote:    color.New(color.FgCyan),
		},
		id: color.New(color.Faint),
	}

	for _, c := range p.severity {
		setColor(c, colorize)
	}
	setColor(p.id, colorize)

	return p
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Print writes a single diagnostic line.
func (p *Printer) Print(d expand.Diagnostic) error {
	sev := d.Severity.String()
	if c, ok := p.severity[d.Severity]; ok {
		sev = c.Sprint(sev)
	}

	if _, err := fmt.Fprintf(p.w, "%s: %s: %s %s\n", d.Pos, sev, d.Message, p.id.Sprintf("[%s]", d.ID)); err != nil {
		return fmt.Errorf("print diagnostic: %w", err)
	}

	return nil
}

// PrintAll writes every diagnostic collected by c.
func (p *Printer) PrintAll(c *Collector) error {
	for _, d := range c.Diagnostics() {
		if err := p.Print(d); err != nil {
			return err
		}
	}

	return nil
}
