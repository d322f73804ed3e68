package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{"disjoint", Span{0, 0, 2}, Span{0, 5, 8}, Span{0, 0, 8}},
		{"nested", Span{0, 2, 10}, Span{0, 4, 6}, Span{0, 2, 10}},
		{"overlap_left", Span{0, 4, 8}, Span{0, 1, 5}, Span{0, 1, 8}},
		{"other_file_ignored", Span{0, 4, 8}, Span{1, 0, 100}, Span{0, 4, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.want {
				t.Errorf("Cover(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.cnx", []byte("abc\ndef\n\nx"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"first_byte", 0, LineCol{Line: 1, Col: 1}},
		{"end_of_first_line", 3, LineCol{Line: 1, Col: 4}},
		{"second_line_start", 4, LineCol{Line: 2, Col: 1}},
		{"second_line_mid", 6, LineCol{Line: 2, Col: 3}},
		{"after_blank_line", 9, LineCol{Line: 4, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve offset %d = %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.cnx", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}
