package diagfmt

import (
	"encoding/json"
	"io"

	"swipc/internal/diag"
	"swipc/internal/source"
)

type jsonLabel struct {
	Style   string `json:"style"`
	Path    string `json:"path"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonDiagnostic struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Labels   []jsonLabel `json:"labels"`
}

// JSON renders diagnostics as machine-readable output, one JSON document
// holding the whole array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Labels:   make([]jsonLabel, 0, len(d.Labels)),
		}
		for _, l := range d.Labels {
			style := "primary"
			if l.Style == diag.LabelSecondary {
				style = "secondary"
			}
			jl := jsonLabel{
				Style:   style,
				Start:   l.Span.Start,
				End:     l.Span.End,
				Message: l.Msg,
			}
			if file := fs.Get(l.Span.File); file != nil {
				jl.Path = file.Path
			}
			if opts.IncludePositions {
				start, _ := fs.Resolve(l.Span)
				jl.Line = start.Line
				jl.Col = start.Col
			}
			jd.Labels = append(jd.Labels, jl)
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
