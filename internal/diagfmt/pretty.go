package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cnext/internal/diag"
	"cnext/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics for humans. For each item it prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line and a ^~~~ underline covering the
// span. Callers sort the bag first if they want stable ordering.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, &d, fs, opts)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
	writeUnderline(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeHeader(w, diag.SevInfo, diag.UnknownCode, note.Msg, note.Span, fs, opts)
			writeUnderline(w, note.Span, fs, opts)
		}
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	path := formatPath(fs, span, opts.PathMode)

	sevText := sev.String()
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}
	if code == diag.UnknownCode {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code.String(), msg)
}

// writeUnderline prints the source line and a caret marker under the span.
// The prefix width is measured with runewidth so tabs aside, wide runes
// before the caret keep it aligned.
func writeUnderline(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && start.Col == 1 && span.Len() == 0 {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	markLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		marked := line
		if int(end.Col-1) <= len(line) {
			marked = line[start.Col-1 : end.Col-1]
		}
		markLen = runewidth.StringWidth(marked)
	}
	marker := "^"
	if markLen > 1 {
		marker += strings.Repeat("~", markLen-1)
	}
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPath(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	switch mode {
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	default:
		return f.RelPath(fs.BaseDir())
	}
}
