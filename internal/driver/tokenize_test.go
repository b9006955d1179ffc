package driver

import (
	"testing"

	"pyfmt/internal/diag"
	"pyfmt/internal/token"
)

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "x = \"abc\n")

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", res.Bag.Items())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize("/nonexistent/file.py", 0); err == nil {
		t.Error("expected error")
	}
}
