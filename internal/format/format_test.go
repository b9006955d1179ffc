package format

import (
	"strings"
	"testing"

	"pyfmt/internal/diag"
)

func formatString(t *testing.T, input string) (string, Result, *diag.Bag) {
	t.Helper()
	res, bag := FormatBytes("test.py", []byte(input), DefaultOptions())
	return string(res.Output), res, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestTerminatorInsertion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple assignment", "x = 1\n", "x = 1;\n"},
		{"no trailing newline", "x = 1", "x = 1;"},
		{"call statement", "do_thing()\n", "do_thing();\n"},
		{"import gains terminator", "import os\n", "import os;\n"},
		{"trailing comma continues", "x = 1,\n", "x = 1,\n"},
		{"colon opens block", "if x:\n", "if x:\n"},
		{"backslash continues", "x = 1 + \\\n    2\n", "x = 1 + \\\n    2;\n"},
		{"continuation keyword", "x = a and\n", "x = a and\n"},
		{"open bracket continues", "x = [\n", "x = [\n"},
		{"existing terminator kept", "x = 1;\n", "x = 1;\n"},
		{"two statements", "a = 1\nb = 2\n", "a = 1;\nb = 2;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := formatString(t, tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirectiveExemption(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pass", "pass\n", "pass\n"},
		{"return", "return x\n", "return x\n"},
		{"raise", "raise ValueError(msg)\n", "raise ValueError(msg)\n"},
		{"break", "break\n", "break\n"},
		{"continue", "continue\n", "continue\n"},
		{"yield", "yield item\n", "yield item\n"},
		{"decorator", "@wraps(fn)\n", "@wraps(fn)\n"},
		{"raise with comment", "raise KeyError(k)  # missing\n", "raise KeyError(k)  # missing\n"},
		{"stray terminator stripped", "return x;\n", "return x\n"},
		{"indented directive", "    return x\n", "    return x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := formatString(t, tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminatorBeforeComment(t *testing.T) {
	got, _, _ := formatString(t, "x = 1  # note\n")
	want := "x = 1;  # note\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestColonSemicolonArtifactStripped(t *testing.T) {
	got, _, _ := formatString(t, "if x:;\n")
	want := "if x:\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBracketPadding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"insert missing padding", "x = (1==1)\n", "x = ( 1==1 );\n"},
		{"normalize wide padding", "x = (  1==1   )\n", "x = ( 1==1 );\n"},
		{"already padded unchanged", "x = ( 1==1 )\n", "x = ( 1==1 );\n"},
		{"empty pair untouched", "f()\n", "f();\n"},
		{"empty brackets untouched", "x = []\n", "x = [];\n"},
		{"string content opaque", "x = (\")\")\n", "x = ( \")\" );\n"},
		{"braces padded", "d = {1: 2}\n", "d = { 1: 2 };\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := formatString(t, tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoTerminatorInsideBrackets(t *testing.T) {
	input := "x = [\n    1,\n    2\n"
	got, _, _ := formatString(t, input)
	// The bracket never closes, so nothing inside may gain a terminator.
	if strings.Contains(got, ";") {
		t.Errorf("terminator inserted inside open bracket: %q", got)
	}
}

func TestBlockHeaderSuppression(t *testing.T) {
	input := "def f(\n    a,\n    b\n):\n    pass\n"
	got, _, _ := formatString(t, input)
	want := "def f( a, b ):\n    pass\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFStringPrefixStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no placeholders stripped", "x = f\"hello\"\n", "x = \"hello\";\n"},
		{"placeholders kept", "x = f\"{v}\"\n", "x = f\"{v}\";\n"},
		{"uppercase prefix", "x = F'hi'\n", "x = 'hi';\n"},
		{"rf keeps r", "x = rf\"hi\"\n", "x = r\"hi\";\n"},
		{"noqa suppresses", "x = f\"hi\"  # noqa: F541\n", "x = f\"hi\";  # noqa: F541\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res, _ := formatString(t, tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.name == "noqa suppresses" {
				reasons := res.SkippedReasons(DecisionFString)
				if len(reasons) != 1 || reasons[0] != "noqa" {
					t.Errorf("skipped reasons = %v, want [noqa]", reasons)
				}
			}
		})
	}
}

func TestCollapseBlock(t *testing.T) {
	input := "my_list = [\n    1,\n    2,\n    3\n]\n"
	got, res, _ := formatString(t, input)
	want := "my_list = [ 1, 2, 3 ];\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if n := res.AppliedCount(DecisionCollapse); n != 1 {
		t.Errorf("applied collapse count = %d, want 1", n)
	}
}

func TestCollapseNested(t *testing.T) {
	input := "x = f(a, [\n    1,\n    2\n])\n"
	got, _, _ := formatString(t, input)
	want := "x = f( a, [ 1, 2 ] );\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCollapseKeepsTrailingComment(t *testing.T) {
	input := "x = [\n    1\n]  # done\n"
	got, _, _ := formatString(t, input)
	want := "x = [ 1 ];  # done\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCollapseSkipsInteriorComment(t *testing.T) {
	input := "x = [\n    1,  # one\n    2\n]\n"
	got, res, _ := formatString(t, input)
	want := "x = [\n    1,  # one\n    2\n];\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	reasons := res.SkippedReasons(DecisionCollapse)
	if len(reasons) != 1 || reasons[0] != "interior comment" {
		t.Errorf("skipped reasons = %v, want [interior comment]", reasons)
	}
}

func TestCollapseSkipsMultiLineString(t *testing.T) {
	input := "x = [\n    \"\"\"a\n    b\"\"\"\n]\n"
	got, res, _ := formatString(t, input)
	if got != strings.Replace(input, "]", "];", 1) {
		t.Errorf("got %q", got)
	}
	reasons := res.SkippedReasons(DecisionCollapse)
	if len(reasons) != 1 || reasons[0] != "multi-line string" {
		t.Errorf("skipped reasons = %v, want [multi-line string]", reasons)
	}
}

func TestCollapseRespectsBudget(t *testing.T) {
	long := strings.Repeat("a", 210)
	input := "x = [\n    \"" + long + "\",\n    1\n]\n"
	got, res, _ := formatString(t, input)
	want := "x = [\n    \"" + long + "\",\n    1\n];\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	reasons := res.SkippedReasons(DecisionCollapse)
	if len(reasons) != 1 || reasons[0] != "exceeds length budget" {
		t.Errorf("skipped reasons = %v, want [exceeds length budget]", reasons)
	}
}

func TestCollapseEmptyPair(t *testing.T) {
	input := "x = {\n}\n"
	got, _, _ := formatString(t, input)
	want := "x = {};\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocstringPassThrough(t *testing.T) {
	input := "def f():\n    \"\"\"One.\n\n    Two.\n    \"\"\"\n    pass\n"
	got, res, _ := formatString(t, input)
	if got != input {
		t.Errorf("docstring body altered:\ngot  %q\nwant %q", got, input)
	}
	if res.Changed {
		t.Error("Changed = true for pass-through input")
	}
}

func TestSingleLineTripleString(t *testing.T) {
	got, _, _ := formatString(t, "x = \"\"\"a\"\"\"\n")
	// An assignment line starting with an identifier still takes a
	// terminator even when its value is triple-quoted.
	want := "x = \"\"\"a\"\"\";\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnbalancedBracketPassThrough(t *testing.T) {
	input := "x = 1)\ny = 2\n"
	got, _, bag := formatString(t, input)
	want := "x = 1)\ny = 2;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !hasCode(bag, diag.FmtUnbalancedBrackets) {
		t.Error("missing unbalanced-brackets warning")
	}
}

func TestUnterminatedStringPassThrough(t *testing.T) {
	input := "x = \"abc\n"
	got, res, bag := formatString(t, input)
	if got != input {
		t.Errorf("got %q, want input unchanged", got)
	}
	if !hasCode(bag, diag.LexUnterminatedString) {
		t.Error("missing unterminated-string warning")
	}
	reasons := res.SkippedReasons(DecisionTerminator)
	found := false
	for _, r := range reasons {
		if r == "unterminated string" {
			found = true
		}
	}
	if !found {
		t.Errorf("skipped terminator reasons = %v, want unterminated string", reasons)
	}
}

func TestIndentDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"short indent after header", "def f():\n  x = 1\n", diag.IndentUnexpected},
		{"dedent without match", "if a:\n    x = 1\n  y = 2\n", diag.IndentNoOuterMatch},
		{"tabs mixed with spaces", "if a:\n\t  x = 1\n", diag.IndentTabSpaceMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag := formatString(t, tt.input)
			if !hasCode(bag, tt.code) {
				t.Errorf("missing %s diagnostic; got %v", tt.code.ID(), bag.Items())
			}
		})
	}
}

func TestIndentCleanInput(t *testing.T) {
	input := "def f():\n    if x:\n        return 1\n    return 0\n"
	_, _, bag := formatString(t, input)
	for _, d := range bag.Items() {
		t.Errorf("unexpected diagnostic on clean input: %s %s", d.Code.ID(), d.Message)
	}
}

func TestIndentSkipsStringsAndComments(t *testing.T) {
	input := "def f():\n    s = \"\"\"\nnot code\n      also not\n\"\"\"\n    # odd comment indent is fine\n    return s\n"
	_, _, bag := formatString(t, input)
	for _, d := range bag.Items() {
		t.Errorf("unexpected diagnostic: %s %s", d.Code.ID(), d.Message)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"my_list = [\n    1,\n    2,\n    3\n]\n",
		"x = ( 1==1 )\n",
		"x = (1==1)\n",
		"def f():\n    \"\"\"doc\"\"\"\n    return 1\n",
		"a = 1\nb = f(a)\nif b:\n    pass\n",
		"x = f\"hello\"\n",
		"d = {1: 2}\n",
	}
	for _, input := range inputs {
		first, _, _ := formatString(t, input)
		second, res, _ := formatString(t, first)
		if second != first {
			t.Errorf("not idempotent for %q:\nfirst  %q\nsecond %q", input, first, second)
		}
		if res.Changed {
			t.Errorf("Changed = true on second run for %q", input)
		}
	}
}

func TestChangedFlag(t *testing.T) {
	_, res, _ := formatString(t, "x = 1\n")
	if !res.Changed {
		t.Error("Changed = false after inserting terminator")
	}
	_, res, _ = formatString(t, "x = 1;\n")
	if res.Changed {
		t.Error("Changed = true for already-formatted input")
	}
}
