package lexer

import (
	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/token"
)

// scanEscape consumes one escape sequence from the JLS set recognized inside
// char and string literals: \b \s \t \n \f \r \" \' \\ \0-\7 (octal) and \uXXXX.
func (l *Lexer) scanEscape() {
	escapePos := l.position()
	l.advance() // backslash
	if l.eof() {
		return
	}
	c := l.peekByte()
	switch c {
	case 'b', 's', 't', 'n', 'f', 'r', '"', '\'', '\\':
		l.advance()
	case 'u':
		l.advance()
		for i := 0; i < 4 && isHexDigit(l.peekByte()); i++ {
			l.advance()
		}
	case '{':
		// String-template embedded-expression opener (spec §2 overview);
		// the grammar of the embedded expression is not part of this
		// lexer's contract, so it is skipped as balanced-brace content,
		// the same technique dhamidi-sai's skipEmbeddedExpression uses.
		l.skipEmbeddedExpression()
	default:
		if isOctalDigit(c) {
			l.advance()
			for i := 0; i < 2 && isOctalDigit(l.peekByte()); i++ {
				l.advance()
			}
		} else {
			l.addDiag(diagnostic.LexError, escapePos, "invalid escape sequence")
		}
	}
}

func (l *Lexer) skipEmbeddedExpression() {
	l.advance() // '{'
	depth := 1
	for !l.eof() && depth > 0 {
		switch l.peekByte() {
		case '{':
			depth++
			l.advance()
		case '}':
			depth--
			l.advance()
		case '"':
			l.scanStringLiteral(l.position())
		case '\'':
			l.scanCharLiteral(l.position())
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanCharLiteral(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // opening '
	for !l.eof() && l.peekByte() != '\'' {
		if l.peekByte() == '\n' {
			break
		}
		if l.peekByte() == '\\' {
			l.scanEscape()
			continue
		}
		l.advance()
	}
	if l.peekByte() == '\'' {
		l.advance()
	} else {
		l.addDiag(diagnostic.LexError, start, "unterminated character literal")
	}
	return l.tok(token.CharLiteral, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanStringLiteral(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // opening "
	for !l.eof() && l.peekByte() != '"' {
		if l.peekByte() == '\n' {
			break
		}
		if l.peekByte() == '\\' {
			l.scanEscape()
			continue
		}
		l.advance()
	}
	if l.peekByte() == '"' {
		l.advance()
	} else {
		l.addDiag(diagnostic.LexError, start, "unterminated string literal")
	}
	return l.tok(token.StringLiteral, start, string(l.input[startPos:l.pos]))
}

// scanTextBlock scans a """ ... """ text block, emitted as a single
// STRING_LITERAL-kind token per spec §4.2 (indentation stripping is left
// to consumers).
func (l *Lexer) scanTextBlock(start token.Position) token.Token {
	startPos := l.pos
	l.advance() // "
	l.advance() // "
	l.advance() // "
	// Text blocks require a line terminator right after the opening
	// delimiter; skip remaining horizontal whitespace first.
	for l.peekByte() == ' ' || l.peekByte() == '\t' {
		l.advance()
	}
	if l.peekByte() == '\r' {
		l.advance()
	}
	if l.peekByte() == '\n' {
		l.advance()
	}

	for !l.eof() {
		if l.peekByte() == '"' && l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			return l.tok(token.TextBlockLiteral, start, string(l.input[startPos:l.pos]))
		}
		if l.peekByte() == '\\' {
			l.scanEscape()
			continue
		}
		l.advance()
	}
	l.addDiag(diagnostic.LexError, start, "unterminated text block")
	return l.tok(token.TextBlockLiteral, start, string(l.input[startPos:l.pos]))
}
