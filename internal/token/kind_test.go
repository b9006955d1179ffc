package token

import "testing"

func TestBracketClassification(t *testing.T) {
	opens := []Kind{LParen, LBracket, LBrace}
	closes := []Kind{RParen, RBracket, RBrace}

	for i, k := range opens {
		if !k.IsOpenBracket() {
			t.Errorf("%s should be an open bracket", k)
		}
		if k.IsCloseBracket() {
			t.Errorf("%s should not be a close bracket", k)
		}
		if k.MatchingBracket() != closes[i] {
			t.Errorf("%s should match %s, got %s", k, closes[i], k.MatchingBracket())
		}
	}
	for i, k := range closes {
		if !k.IsCloseBracket() {
			t.Errorf("%s should be a close bracket", k)
		}
		if k.MatchingBracket() != opens[i] {
			t.Errorf("%s should match %s, got %s", k, opens[i], k.MatchingBracket())
		}
	}
	if Comma.MatchingBracket() != Invalid {
		t.Error("non-bracket kinds must return Invalid")
	}
}

func TestDirectiveClass(t *testing.T) {
	directives := []Kind{KwPass, KwReturn, KwRaise, KwBreak, KwContinue, KwYield}
	for _, k := range directives {
		if !k.IsDirective() {
			t.Errorf("%s should be a directive keyword", k)
		}
	}
	for _, k := range []Kind{KwIf, KwAnd, Ident, KwDef} {
		if k.IsDirective() {
			t.Errorf("%s should not be a directive keyword", k)
		}
	}
}

func TestContinuationClass(t *testing.T) {
	for _, k := range []Kind{KwAnd, KwOr, KwNot, KwIn, KwIs} {
		if !k.IsContinuation() {
			t.Errorf("%s should be a continuation keyword", k)
		}
	}
	if KwReturn.IsContinuation() || Comma.IsContinuation() {
		t.Error("unexpected continuation classification")
	}
}

func TestKindStringCovered(t *testing.T) {
	for k := Invalid; k <= Ellipsis; k++ {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", uint8(k))
		}
	}
}
