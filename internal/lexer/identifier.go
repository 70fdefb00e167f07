package lexer

import "github.com/dhamidi/jparse/internal/token"

func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // first letter already validated by caller's dispatch

	for !l.eof() {
		c := l.peekByte()
		if c < utf8RuneSelf {
			if isJavaLetterStart(c) || isDigit(c) {
				l.advance()
				continue
			}
			break
		}
		if r := l.peekRune(); isJavaLetterOrDigit(r) {
			l.advance()
			continue
		}
		break
	}

	text := string(l.input[startPos:l.pos])

	// "non-sealed" is lexed as a single three-part contextual-keyword
	// token (spec §4.2): the only hyphenated token in the language.
	if text == "non" && l.peekByte() == '-' && l.hasLiteralAhead("-sealed") {
		l.advance() // '-'
		for i := 0; i < len("sealed"); i++ {
			l.advance()
		}
		return l.tok(token.NonSealed, start, "non-sealed")
	}

	return l.tok(token.LookupKeyword(text), start, text)
}

// hasLiteralAhead reports whether the bytes immediately following the
// current position spell lit exactly, with no further identifier
// character right after it (so "non-sealedness" is not mistaken for
// "non-sealed" followed by garbage).
func (l *Lexer) hasLiteralAhead(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if l.peekByteAt(i) != lit[i] {
			return false
		}
	}
	after := l.pos + len(lit)
	if r, w := l.decodeRune(after); w > 0 && isJavaLetterOrDigit(r) {
		return false
	}
	return true
}

const utf8RuneSelf = 0x80
