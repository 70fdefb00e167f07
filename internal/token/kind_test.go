package token

import "testing"

func TestLookupKeywordReservedOnly(t *testing.T) {
	cases := []struct {
		text string
		want Kind
	}{
		{"class", Class},
		{"return", Return},
		{"instanceof", Instanceof},
		{"true", TrueLiteral},
		{"false", FalseLiteral},
		{"null", NullLiteral},
		{"foo", Identifier},
	}
	for _, c := range cases {
		if got := LookupKeyword(c.text); got != c.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

// Contextual keywords must never be promoted by LookupKeyword: the lexer
// always lexes them as Identifier, and only the parser decides, by
// position, whether they play a keyword role (invariant 5).
func TestLookupKeywordLeavesContextualKeywordsAsIdentifier(t *testing.T) {
	for text := range contextualKeywords {
		if got := LookupKeyword(text); got != Identifier {
			t.Errorf("LookupKeyword(%q) = %v, want Identifier", text, got)
		}
	}
}

func TestContextualKind(t *testing.T) {
	cases := []struct {
		text   string
		want   Kind
		wantOk bool
	}{
		{"var", Var, true},
		{"record", Record, true},
		{"sealed", Sealed, true},
		{"permits", Permits, true},
		{"when", When, true},
		{"module", Module, true},
		{"foo", 0, false},
		{"class", 0, false},
	}
	for _, c := range cases {
		got, ok := ContextualKind(c.text)
		if ok != c.wantOk || (ok && got != c.want) {
			t.Errorf("ContextualKind(%q) = (%v, %v), want (%v, %v)", c.text, got, ok, c.want, c.wantOk)
		}
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if Class.String() != "class" {
		t.Errorf("Class.String() = %q, want %q", Class.String(), "class")
	}
	if got := Kind(-1).String(); got != "Unknown" {
		t.Errorf("Kind(-1).String() = %q, want %q", got, "Unknown")
	}
}

func TestTokenPredicates(t *testing.T) {
	eof := Token{Kind: EOF}
	if !eof.IsEOF() {
		t.Error("EOF token IsEOF() = false, want true")
	}

	for _, k := range []Kind{Whitespace, Comment, LineComment, JavadocComment} {
		tok := Token{Kind: k}
		if !tok.IsTrivia() {
			t.Errorf("Token{Kind: %v}.IsTrivia() = false, want true", k)
		}
	}
	if (Token{Kind: Identifier}).IsTrivia() {
		t.Error("Identifier token IsTrivia() = true, want false")
	}

	for _, k := range []Kind{Comment, LineComment, JavadocComment} {
		tok := Token{Kind: k}
		if !tok.IsComment() {
			t.Errorf("Token{Kind: %v}.IsComment() = false, want true", k)
		}
	}
	if (Token{Kind: Whitespace}).IsComment() {
		t.Error("Whitespace token IsComment() = true, want false")
	}
}
