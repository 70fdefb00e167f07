package lexer

import (
	"testing"

	"github.com/dhamidi/jparse/internal/token"
)

// significant strips trivia tokens and the trailing EOF marker, leaving
// only the tokens a parser would actually see.
func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if t.IsTrivia() || t.Kind == token.EOF {
			continue
		}
		out = append(out, t)
	}
	return out
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, diags := New([]byte(src)).Tokenize()
	if len(diags) != 0 {
		t.Fatalf("Tokenize(%q) diags = %v, want none", src, diags)
	}
	sig := significant(toks)
	got := kinds(sig)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) kinds = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q) kinds = %v, want %v", src, got, want)
		}
	}
	return sig
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	toks, _ := New([]byte("x")).Tokenize()
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
}

func TestIdentifiersAndReservedKeywords(t *testing.T) {
	assertKinds(t, "class Foo extends Bar", token.Class, token.Identifier, token.Extends, token.Identifier)
}

func TestContextualKeywordsLexAsIdentifier(t *testing.T) {
	for _, text := range []string{"var", "record", "sealed", "permits", "when", "module", "yield"} {
		sig := assertKinds(t, text, token.Identifier)
		if sig[0].Text != text {
			t.Errorf("Text = %q, want %q", sig[0].Text, text)
		}
	}
}

func TestNonSealedIsOneToken(t *testing.T) {
	sig := assertKinds(t, "non-sealed", token.NonSealed)
	if sig[0].Text != "non-sealed" {
		t.Errorf("Text = %q, want %q", sig[0].Text, "non-sealed")
	}
}

func TestNonSealedFollowedByIdentCharDoesNotMatch(t *testing.T) {
	// "non-sealedness" must not be mistaken for "non-sealed" + garbage: the
	// hyphen stops "non" as its own identifier instead.
	toks, _ := New([]byte("non-sealedness")).Tokenize()
	sig := significant(toks)
	if sig[0].Kind != token.Identifier || sig[0].Text != "non" {
		t.Fatalf("first token = %v %q, want Identifier \"non\"", sig[0].Kind, sig[0].Text)
	}
}

func TestIntegerLiteralForms(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLiteral},
		{"42L", token.LongLiteral},
		{"0x2A", token.IntLiteral},
		{"0x2AL", token.LongLiteral},
		{"0b101", token.IntLiteral},
		{"010", token.IntLiteral},
		{"1_000_000", token.IntLiteral},
	}
	for _, c := range cases {
		sig := assertKinds(t, c.src, c.kind)
		if sig[0].Text != c.src {
			t.Errorf("Text for %q = %q, want %q", c.src, sig[0].Text, c.src)
		}
	}
}

func TestFloatingPointLiteralForms(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"3.14", token.DoubleLiteral},
		{"3.14f", token.FloatLiteral},
		{"3.14d", token.DoubleLiteral},
		{"3e10", token.DoubleLiteral},
		{"1.", token.DoubleLiteral},
	}
	for _, c := range cases {
		assertKinds(t, c.src, c.kind)
	}
}

func TestHexFloatRequiresExponent(t *testing.T) {
	toks, diags := New([]byte("0x1.8p1")).Tokenize()
	if len(diags) != 0 {
		t.Fatalf("diags = %v, want none", diags)
	}
	sig := significant(toks)
	if sig[0].Kind != token.DoubleLiteral {
		t.Fatalf("kind = %v, want DoubleLiteral", sig[0].Kind)
	}

	_, diags = New([]byte("0x1.8")).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a hex float missing its p/P exponent")
	}
}

func TestDotFollowedByIdentifierSplitsIntoTwoTokens(t *testing.T) {
	assertKinds(t, "1.foo", token.IntLiteral, token.Dot, token.Identifier)
}

func TestCharAndStringLiterals(t *testing.T) {
	assertKinds(t, `'a'`, token.CharLiteral)
	assertKinds(t, `"hello"`, token.StringLiteral)
	assertKinds(t, `"with \"escape\""`, token.StringLiteral)
}

func TestUnterminatedStringLiteralDiagnoses(t *testing.T) {
	_, diags := New([]byte(`"unterminated`)).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an unterminated string literal")
	}
}

func TestUnterminatedCharLiteralDiagnoses(t *testing.T) {
	_, diags := New([]byte(`'x`)).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an unterminated character literal")
	}
}

func TestTextBlockLiteral(t *testing.T) {
	src := "\"\"\"\n    hello\n    \"\"\""
	sig := assertKinds(t, src, token.TextBlockLiteral)
	if sig[0].Text != src {
		t.Errorf("Text = %q, want %q", sig[0].Text, src)
	}
}

func TestUnterminatedTextBlockDiagnoses(t *testing.T) {
	_, diags := New([]byte("\"\"\"\nhello")).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an unterminated text block")
	}
}

func TestUnterminatedBlockCommentDiagnoses(t *testing.T) {
	_, diags := New([]byte("/* never closed")).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an unterminated block comment")
	}
}

func TestJavadocCommentKind(t *testing.T) {
	toks, _ := New([]byte("/** doc */ x")).Tokenize()
	var found bool
	for _, tok := range toks {
		if tok.Kind == token.JavadocComment {
			found = true
		}
		if tok.Kind == token.Comment {
			t.Errorf("ordinary Comment kind seen for a javadoc comment")
		}
	}
	if !found {
		t.Fatal("no JavadocComment token produced")
	}
}

func TestPlainBlockCommentIsNotJavadoc(t *testing.T) {
	toks, _ := New([]byte("/* not doc */ x")).Tokenize()
	for _, tok := range toks {
		if tok.Kind == token.JavadocComment {
			t.Fatal("plain block comment misclassified as JavadocComment")
		}
	}
}

func TestCompoundOperatorsGreedyMatch(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"==", token.Eq}, {"!=", token.Ne}, {"<=", token.Le}, {">=", token.Ge},
		{"&&", token.AndAnd}, {"||", token.OrOr}, {"++", token.Increment}, {"--", token.Decrement},
		{"->", token.Arrow}, {"::", token.ColonColon}, {"...", token.Ellipsis},
		{"<<=", token.ShlAssign}, {">>=", token.ShrAssign}, {">>>=", token.UShrAssign},
	}
	for _, c := range cases {
		assertKinds(t, c.src, c.kind)
	}
}

func TestShrAndUShrAreSplittable(t *testing.T) {
	toks, _ := New([]byte(">>")).Tokenize()
	sig := significant(toks)
	if !sig[0].Splittable {
		t.Fatal(">> token not marked Splittable")
	}

	toks, _ = New([]byte(">>>")).Tokenize()
	sig = significant(toks)
	if !sig[0].Splittable {
		t.Fatal(">>> token not marked Splittable")
	}

	toks, _ = New([]byte(">")).Tokenize()
	sig = significant(toks)
	if sig[0].Splittable {
		t.Fatal("> token marked Splittable, want false")
	}
}

func TestUnexpectedCharacterDiagnoses(t *testing.T) {
	_, diags := New([]byte("#")).Tokenize()
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an unexpected character")
	}
}

func TestUTF16OffsetTrackingAcrossAstralLetter(t *testing.T) {
	// U+1D54F (MATHEMATICAL DOUBLE-STRUCK CAPITAL X) is a Java letter
	// outside the BMP: a surrogate pair, 2 UTF-16 code units. Followed by
	// an ordinary letter, both must lex as one identifier whose column
	// span accounts for both code units of the astral letter.
	src := "\U0001D54Fx"
	sig := assertKinds(t, src, token.Identifier)
	if sig[0].Text != src {
		t.Fatalf("Text = %q, want %q", sig[0].Text, src)
	}
	gotWidth := sig[0].Span.End.Column - sig[0].Span.Start.Column
	if gotWidth != 3 {
		t.Fatalf("column width = %d, want 3 (2 UTF-16 units for the astral letter + 1 for 'x')", gotWidth)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks, _ := New([]byte("a\nbb")).Tokenize()
	sig := significant(toks)
	if sig[0].Span.Start.Line != 1 || sig[0].Span.Start.Column != 1 {
		t.Fatalf("first token start = %+v, want line 1 col 1", sig[0].Span.Start)
	}
	if sig[1].Span.Start.Line != 2 || sig[1].Span.Start.Column != 1 {
		t.Fatalf("second token start = %+v, want line 2 col 1", sig[1].Span.Start)
	}
}
