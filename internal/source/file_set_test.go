package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("a.py", []byte("x = 1\n"), 0)
	id2 := fs.Add("b.py", []byte("y = 2\n"), 0)

	if id1 == id2 {
		t.Fatalf("expected distinct IDs, got %d and %d", id1, id2)
	}
	if fs.Get(id1).Path != "a.py" || fs.Get(id2).Path != "b.py" {
		t.Errorf("paths not stored as expected: %q, %q", fs.Get(id1).Path, fs.Get(id2).Path)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.py", []byte("version 1"), 0)
	id2 := fs.Add("test.py", []byte("version 2"), 0)

	if id2 == id1 {
		t.Error("expected a fresh FileID for the second Add")
	}
	latest, ok := fs.GetLatest("test.py")
	if !ok {
		t.Fatal("expected file to exist")
	}
	if latest != id2 {
		t.Errorf("expected latest ID %d, got %d", id2, latest)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "in.py")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1\r\nb = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "a = 1\nb = 2\n" {
		t.Errorf("content not normalized: %q", string(f.Content))
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.py", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline still belongs to line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tc := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if got != tc.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	// Columns are byte-based: α occupies two bytes.
	id := fs.AddVirtual("test.py", []byte("α\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("unexpected start %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("unexpected end %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.py", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestNumLines(t *testing.T) {
	fs := NewFileSet()

	cases := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"x", 1},
		{"x\n", 1},
		{"x\ny", 2},
		{"x\ny\n", 2},
	}
	for _, tc := range cases {
		id := fs.AddVirtual("n.py", []byte(tc.content))
		if got := fs.Get(id).NumLines(); got != tc.want {
			t.Errorf("NumLines(%q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}
