package diagfmt

import (
	"strings"
	"testing"

	"cnext/internal/diag"
	"cnext/internal/source"
)

func demoBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("demo.cnx", []byte("i32 x <- a ? b;\n"))
	bag := diag.NewBag(8)
	// span covers "a ? b"
	bag.Add(diag.NewError(diag.SynExpectColon,
		source.Span{File: fileID, Start: 9, End: 14},
		"expected ':' in conditional expression"))
	return bag, fs
}

func TestPrettyFormat(t *testing.T) {
	bag, fs := demoBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "demo.cnx:1:10: ERROR SynExpectColon: expected ':' in conditional expression") {
		t.Errorf("header line missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "i32 x <- a ? b;") {
		t.Errorf("source line missing:\n%s", out)
	}
	// caret under column 10, two-space gutter, tilde run covering the span
	if !strings.Contains(out, "  "+strings.Repeat(" ", 9)+"^~~~~") {
		t.Errorf("caret underline misaligned:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("demo.cnx", []byte("bool f;\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SemaDuplicateSymbol,
		source.Span{File: fileID, Start: 5, End: 6}, "duplicate declaration of \"f\"").
		WithNote(source.Span{File: fileID, Start: 5, End: 6}, "first declared here"))

	var withNotes, without strings.Builder
	Pretty(&withNotes, bag, fs, PrettyOpts{ShowNotes: true})
	Pretty(&without, bag, fs, PrettyOpts{})

	if !strings.Contains(withNotes.String(), "first declared here") {
		t.Error("note not rendered with ShowNotes")
	}
	if strings.Contains(without.String(), "first declared here") {
		t.Error("note rendered without ShowNotes")
	}
}

func TestPrettyColorDisabledByDefault(t *testing.T) {
	bag, fs := demoBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if strings.Contains(sb.String(), "\x1b[") {
		t.Error("escape codes leaked into non-color output")
	}
}
