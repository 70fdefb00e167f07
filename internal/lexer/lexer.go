// Package lexer turns a Java source buffer into a flat ordered token
// sequence ending with a synthetic EOF token (spec §4.2). It is a
// byte-oriented scanner modeled on dhamidi-sai/java/parser/lexer.go, fixing
// that lexer's single-byte Unicode-decoding bug (see DESIGN.md) and adding
// octal-literal support and UTF-16 offset tracking.
package lexer

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/token"
)

// Lexer scans a byte buffer into tokens. Not safe for concurrent use.
type Lexer struct {
	input  []byte
	pos    int // byte offset into input
	offset uint32
	line   uint32
	column uint32
	diags  []diagnostic.Diagnostic
}

// New creates a Lexer over input.
func New(input []byte) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

func (l *Lexer) position() token.Position {
	return token.Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.input) }

// decodeRune returns the rune at pos and its byte width without consuming
// it. This is the corrected counterpart of the teacher's isJavaLetter,
// which wrongly called utf8.DecodeRune on a single byte; here the full
// remaining slice is always decoded.
func (l *Lexer) decodeRune(pos int) (rune, int) {
	if pos >= len(l.input) {
		return 0, 0
	}
	if l.input[pos] < utf8.RuneSelf {
		return rune(l.input[pos]), 1
	}
	return utf8.DecodeRune(l.input[pos:])
}

func (l *Lexer) peekRune() rune {
	r, _ := l.decodeRune(l.pos)
	return r
}

func (l *Lexer) peekRuneAt(offset int) rune {
	r, _ := l.decodeRune(l.pos + offset)
	return r
}

func (l *Lexer) peekByte() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekByteAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

// advance consumes one rune and updates offset/line/column in UTF-16
// code units per spec §6.
func (l *Lexer) advance() rune {
	r, width := l.decodeRune(l.pos)
	if width == 0 {
		return 0
	}
	l.pos += width
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column += uint32(utf16.RuneLen(r))
	}
	l.offset += uint32(utf16.RuneLen(r))
	return r
}

func (l *Lexer) match(b byte) bool {
	if l.peekByte() == b {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) addDiag(kind diagnostic.Kind, pos token.Position, msg string) {
	l.diags = append(l.diags, diagnostic.New(kind, pos.Offset, pos.Line, pos.Column, msg))
}

func (l *Lexer) tok(kind token.Kind, start token.Position, text string) token.Token {
	return token.Token{Kind: kind, Span: token.Span{Start: start, End: l.position()}, Text: text}
}

// Tokenize scans the entire buffer, returning every token including
// trivia (whitespace, comments) interleaved with significant tokens, and
// any diagnostics accumulated along the way (spec §4.2, §7).
func (l *Lexer) Tokenize() ([]token.Token, []diagnostic.Diagnostic) {
	var tokens []token.Token
	for {
		t := l.next()
		tokens = append(tokens, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return tokens, l.diags
}

func (l *Lexer) next() token.Token {
	if l.eof() {
		start := l.position()
		return l.tok(token.EOF, start, "")
	}

	start := l.position()
	c := l.peekByte()

	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f':
		return l.scanWhitespace(start)
	case c == '/' && l.peekByteAt(1) == '/':
		return l.scanLineComment(start)
	case c == '/' && l.peekByteAt(1) == '*':
		return l.scanBlockComment(start)
	case isJavaLetterStart(c) || (c >= 0x80 && isJavaLetter(l.peekRune())):
		return l.scanIdentOrKeyword(start)
	case c == '$' || c == '_':
		return l.scanIdentOrKeyword(start)
	case isDigit(c):
		return l.scanNumber(start)
	case c == '.' && isDigit(l.peekByteAt(1)):
		return l.scanNumber(start)
	case c == '\'':
		return l.scanCharLiteral(start)
	case c == '"':
		if l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' {
			return l.scanTextBlock(start)
		}
		return l.scanStringLiteral(start)
	default:
		return l.scanOperator(start)
	}
}

func (l *Lexer) scanWhitespace(start token.Position) token.Token {
	startPos := l.pos
	for !l.eof() {
		c := l.peekByte()
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' {
			l.advance()
			continue
		}
		break
	}
	return l.tok(token.Whitespace, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanLineComment(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // '/'
	l.advance() // '/'
	for !l.eof() && l.peekByte() != '\n' {
		l.advance()
	}
	return l.tok(token.LineComment, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanBlockComment(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // '/'
	l.advance() // '*'
	isJavadoc := l.peekByte() == '*' && l.peekByteAt(1) != '/'
	for !l.eof() {
		if l.peekByte() == '*' && l.peekByteAt(1) == '/' {
			l.advance()
			l.advance()
			kind := token.Comment
			if isJavadoc {
				kind = token.JavadocComment
			}
			return l.tok(kind, start, string(l.input[startPos:l.pos]))
		}
		l.advance()
	}
	l.addDiag(diagnostic.LexError, start, "unterminated block comment")
	kind := token.Comment
	if isJavadoc {
		kind = token.JavadocComment
	}
	return l.tok(kind, start, string(l.input[startPos:l.pos]))
}
