package lexer

import (
	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/token"
)

// scanNumber recognizes decimal, hex (0x…), binary (0b…) and octal (0…)
// integer forms with underscore separators, and decimal/hex floating
// point forms, per spec §4.2. On a malformed lexeme it still emits the
// best-matching literal kind plus a diagnostic, never panics.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	startPos := l.pos

	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		return l.scanHexNumber(start, startPos)
	}
	if l.peekByte() == '0' && (l.peekByteAt(1) == 'b' || l.peekByteAt(1) == 'B') {
		return l.scanBinaryNumber(start, startPos)
	}
	if l.peekByte() == '0' && isOctalDigit(l.peekByteAt(1)) {
		return l.scanOctalNumber(start, startPos)
	}

	l.scanDigitRun(isDigit)

	isFloat := false
	// A '.' continues the literal only when it is not immediately followed
	// by an identifier-starting character (so "1.foo" tokenizes as "1"
	// then "."), and never followed by another '.' (no ".." in Java).
	if l.peekByte() == '.' && l.peekByteAt(1) != '.' && !isJavaLetterStart(l.peekByteAt(1)) {
		isFloat = true
		l.advance()
		l.scanDigitRun(isDigit)
	}
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		isFloat = true
		l.scanExponent()
	}

	kind := token.IntLiteral
	switch l.peekByte() {
	case 'l', 'L':
		l.advance()
		kind = token.LongLiteral
	case 'f', 'F':
		l.advance()
		kind = token.FloatLiteral
	case 'd', 'D':
		l.advance()
		kind = token.DoubleLiteral
	default:
		if isFloat {
			kind = token.DoubleLiteral
		}
	}
	return l.tok(kind, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanDigitRun(pred func(byte) bool) {
	for !l.eof() {
		c := l.peekByte()
		if pred(c) || c == '_' {
			l.advance()
			continue
		}
		break
	}
}

func (l *Lexer) scanExponent() {
	l.advance() // e/E
	if l.peekByte() == '+' || l.peekByte() == '-' {
		l.advance()
	}
	l.scanDigitRun(isDigit)
}

func (l *Lexer) scanHexNumber(start token.Position, startPos int) token.Token {
	l.advance() // '0'
	l.advance() // x/X
	l.scanDigitRun(isHexDigit)

	isFloat := false
	if l.peekByte() == '.' {
		isFloat = true
		l.advance()
		l.scanDigitRun(isHexDigit)
	}
	if l.peekByte() == 'p' || l.peekByte() == 'P' {
		// Hex floats require a p/P exponent (spec §4.2).
		isFloat = true
		l.advance()
		if l.peekByte() == '+' || l.peekByte() == '-' {
			l.advance()
		}
		l.scanDigitRun(isDigit)
	} else if isFloat {
		l.addDiag(diagnostic.LexError, start, "hex float requires a p/P exponent")
	}

	kind := token.IntLiteral
	switch l.peekByte() {
	case 'l', 'L':
		l.advance()
		kind = token.LongLiteral
	case 'f', 'F':
		l.advance()
		kind = token.FloatLiteral
	case 'd', 'D':
		l.advance()
		kind = token.DoubleLiteral
	default:
		if isFloat {
			kind = token.DoubleLiteral
		}
	}
	return l.tok(kind, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanBinaryNumber(start token.Position, startPos int) token.Token {
	l.advance() // '0'
	l.advance() // b/B
	l.scanDigitRun(isBinaryDigit)
	kind := token.IntLiteral
	if l.peekByte() == 'l' || l.peekByte() == 'L' {
		l.advance()
		kind = token.LongLiteral
	}
	return l.tok(kind, start, string(l.input[startPos:l.pos]))
}

func (l *Lexer) scanOctalNumber(start token.Position, startPos int) token.Token {
	l.advance() // leading '0'
	l.scanDigitRun(isOctalDigit)
	kind := token.IntLiteral
	if l.peekByte() == 'l' || l.peekByte() == 'L' {
		l.advance()
		kind = token.LongLiteral
	}
	return l.tok(kind, start, string(l.input[startPos:l.pos]))
}
