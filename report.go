package slidecheck

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Reporter prints the human readable report of a run
type Reporter struct {
	w       io.Writer
	verbose bool

	ok   *color.Color
	warn *color.Color
}

// NewReporter writes the report to w. Colors are only used when w is the
// stdout of a terminal.
func NewReporter(w io.Writer) *Reporter {
	r := &Reporter{
		w:    w,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow, color.Bold),
	}

	if f, is := w.(*os.File); is && f == os.Stdout && !color.NoColor {
		r.ok.EnableColor()
		r.warn.EnableColor()
	} else {
		r.ok.DisableColor()
		r.warn.DisableColor()
	}

	return r
}

// Verbose appends a table of the overflowing elements to each failed slide
func (r *Reporter) Verbose(enable bool) *Reporter {
	r.verbose = enable
	return r
}

// Total prints the slide count
func (r *Reporter) Total(n int) {
	fmt.Fprintf(r.w, "Total slides: %d\n", n)
}

// Slide prints the result of one slide, one OK line or the overflow details
func (r *Reporter) Slide(s *Slide) {
	if !s.HasOverflow {
		r.ok.Fprintf(r.w, "✓ Slide %d: OK\n", s.Index)
		return
	}

	r.warn.Fprintf(r.w, "\n⚠️  Slide %d has overflowing content:\n", s.Index)
	fmt.Fprintf(r.w, "   Slide size: %spx x %spx\n", px(s.Width), px(s.Height))

	for _, o := range s.Overflows {
		if o.Vertical(Tolerance) {
			fmt.Fprintf(r.w, "   - %s overflows the bottom edge by %.2fpx\n", o.Tag, o.Delta.Bottom)
		}
		if o.Horizontal(Tolerance) {
			fmt.Fprintf(r.w, "   - %s overflows the right edge by %.2fpx\n", o.Tag, o.Delta.Right)
		}
	}

	if r.verbose {
		r.table(s)
	}
}

// Summary prints the final verdict and the affected slides in the order they were checked
func (r *Reporter) Summary(sum *Summary) {
	fmt.Fprintln(r.w, "\n====== Result ======")

	if len(sum.Issues) == 0 {
		r.ok.Fprintln(r.w, "✓ Every slide fits its page: all normal")
		return
	}

	r.warn.Fprintf(r.w, "⚠️  %d slide(s) have overflowing content:\n", len(sum.Issues))
	for _, s := range sum.Issues {
		fmt.Fprintf(r.w, "  - Slide %d\n", s.Index)
	}
}

func (r *Reporter) table(s *Slide) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"tag", "class", "bottom", "right", "Δ bottom", "Δ right"})
	for _, o := range s.Overflows {
		t.AppendRow(table.Row{
			o.Tag,
			o.Class,
			fmt.Sprintf("%.2f", o.Bottom),
			fmt.Sprintf("%.2f", o.Right),
			fmt.Sprintf("%.2f", o.Delta.Bottom),
			fmt.Sprintf("%.2f", o.Delta.Right),
		})
	}
	t.Render()
}

// px formats a length the shortest way, 1123 stays 1123 and 793.5 stays 793.5
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
