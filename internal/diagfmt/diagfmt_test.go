package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pyfmt/internal/diag"
	"pyfmt/internal/lexer"
	"pyfmt/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.py", []byte("x = 1)\ny = 2\n"))

	bag := diag.NewBag(diag.DefaultCap)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.FmtUnbalancedBrackets,
		Message:  "closing bracket without a matching open",
		Primary:  source.Span{File: id, Start: 5, End: 6},
	})
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	out := buf.String()
	for _, want := range []string{
		"sample.py:1:6:",
		"WARNING PF2001",
		"closing bracket without a matching open",
		"x = 1)",
		"^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyMarkerAlignment(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", buf.String())
	}
	// Column 6 means five characters of padding before the caret, plus
	// the two-space context indent.
	if lines[2] != "  "+strings.Repeat(" ", 5)+"^" {
		t.Errorf("marker line = %q", lines[2])
	}
}

func TestJSON(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "PF2001" || d.Severity != "WARNING" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 6 {
		t.Errorf("location = %+v", d.Location)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.py", []byte("x\n"))
	bag := diag.NewBag(diag.DefaultCap)
	for i := uint32(0); i < 5; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LexUnknownChar,
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if bag.Len() != 5 {
		t.Errorf("bag truncated to %d", bag.Len())
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.py", []byte("x = 1\n"))
	toks := lexer.ScanAll(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Ident", `"x"`, "Assign", "Number", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.py", []byte("x = 1\n"))
	toks := lexer.ScanAll(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("token count = %d, want 4", len(out))
	}
	if out[0].Kind != "Ident" || out[3].Kind != "EOF" {
		t.Errorf("kinds = %v, %v", out[0].Kind, out[3].Kind)
	}
	if out[1].Leading[0] != "Space" {
		t.Errorf("leading = %v", out[1].Leading)
	}
}
