package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"swipc/internal/diag"
	"swipc/internal/source"
)

var (
	severityColors = map[diag.Severity]*color.Color{
		diag.SevHelp:    color.New(color.FgGreen, color.Bold),
		diag.SevNote:    color.New(color.FgCyan, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevBug:     color.New(color.FgMagenta, color.Bold),
	}
	secondaryColor = color.New(color.FgBlue)
	gutterColor    = color.New(color.FgHiBlack)
)

// Pretty renders diagnostics human-readably. Expects bag.Sort() to have run
// if stable ordering matters. For each diagnostic it prints
//
//	<path>:<line>:<col>: <SEVERITY> [<CODE>]: <message>
//
// followed by one source snippet per label: the line itself and a marker
// line with '^' carets under primary labels and '-' underlines under
// secondary ones, each trailed by the label message.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColors[d.Severity]
	primary := d.PrimarySpan()
	file := fs.Get(primary.File)
	start, _ := fs.Resolve(primary)

	header := fmt.Sprintf("%s:%d:%d: ", file.Path, start.Line, start.Col)
	if opts.Color {
		header += sev.Sprintf("%s [%s]", d.Severity, d.Code.ID())
	} else {
		header += fmt.Sprintf("%s [%s]", d.Severity, d.Code.ID())
	}
	fmt.Fprintf(w, "%s: %s\n", header, d.Message)

	if !opts.ShowLabels {
		return
	}
	for _, l := range d.Labels {
		prettyLabel(w, l, fs, opts)
	}
}

func prettyLabel(w io.Writer, l diag.Label, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(l.Span.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(l.Span)
	line := file.GetLine(start.Line)

	gutter := fmt.Sprintf(" %4d | ", start.Line)
	pad := strings.Repeat(" ", len(gutter))
	if opts.Color {
		gutter = gutterColor.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// clamp multi-line spans to the first line
	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line {
		width = len(line) - startCol
		if width < 1 {
			width = 1
		}
	}

	lead := runewidth.StringWidth(line[:startCol])
	markByte, markColor := "^", severityColors[diag.SevError]
	if l.Style == diag.LabelSecondary {
		markByte, markColor = "-", secondaryColor
	}
	marks := strings.Repeat(markByte, width)
	if opts.Color {
		marks = markColor.Sprint(marks)
	}
	msg := l.Msg
	if msg != "" {
		msg = " " + msg
	}
	fmt.Fprintf(w, "%s%s%s%s\n", pad, strings.Repeat(" ", lead), marks, msg)
}
