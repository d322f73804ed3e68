package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"cnext/internal/diag"
	"cnext/internal/source"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := demoBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SynExpectColon" {
		t.Errorf("severity/code mismatch: %+v", d)
	}
	if d.Location.File != "demo.cnx" || d.Location.StartLine != 1 || d.Location.StartCol != 10 {
		t.Errorf("location mismatch: %+v", d.Location)
	}
}

func TestJSONMaxTruncation(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("demo.cnx", []byte("x\n"))
	bag := diag.NewBag(8)
	for range 5 {
		bag.Add(diag.NewError(diag.SynUnexpectedToken,
			source.Span{File: fileID, Start: 0, End: 1}, "boom"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("truncation failed: count = %d", out.Count)
	}
}
