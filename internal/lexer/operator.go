package lexer

import (
	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/token"
)

// scanOperator greedily matches the longest punctuator or compound
// operator starting at the current position (spec §4.2). ">>" and ">>>"
// are marked Splittable so the parser may decompose them when closing a
// nested type-argument list (spec §4.3.3).
func (l *Lexer) scanOperator(start token.Position) token.Token {
	startPos := l.pos
	c := l.advance()

	mk := func(kind token.Kind) token.Token {
		return l.tok(kind, start, string(l.input[startPos:l.pos]))
	}
	splittable := func(kind token.Kind) token.Token {
		t := mk(kind)
		t.Splittable = true
		return t
	}

	switch c {
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '@':
		return mk(token.At)
	case '~':
		return mk(token.BitNot)
	case '?':
		return mk(token.Question)
	case ':':
		if l.match(':') {
			return mk(token.ColonColon)
		}
		return mk(token.Colon)
	case '.':
		if l.peekByte() == '.' && l.peekByteAt(1) == '.' {
			l.advance()
			l.advance()
			return mk(token.Ellipsis)
		}
		return mk(token.Dot)
	case '=':
		if l.match('=') {
			return mk(token.Eq)
		}
		return mk(token.Assign)
	case '!':
		if l.match('=') {
			return mk(token.Ne)
		}
		return mk(token.Not)
	case '<':
		if l.match('<') {
			if l.match('=') {
				return mk(token.ShlAssign)
			}
			return mk(token.Shl)
		}
		if l.match('=') {
			return mk(token.Le)
		}
		return mk(token.Lt)
	case '>':
		if l.peekByte() == '>' && l.peekByteAt(1) == '>' && l.peekByteAt(2) == '=' {
			l.advance()
			l.advance()
			l.advance()
			return mk(token.UShrAssign)
		}
		if l.peekByte() == '>' && l.peekByteAt(1) == '>' {
			l.advance()
			l.advance()
			return splittable(token.UShr)
		}
		if l.peekByte() == '>' && l.peekByteAt(1) == '=' {
			l.advance()
			l.advance()
			return mk(token.ShrAssign)
		}
		if l.match('>') {
			return splittable(token.Shr)
		}
		if l.match('=') {
			return mk(token.Ge)
		}
		return mk(token.Gt)
	case '&':
		if l.match('&') {
			return mk(token.AndAnd)
		}
		if l.match('=') {
			return mk(token.AndAssign)
		}
		return mk(token.BitAnd)
	case '|':
		if l.match('|') {
			return mk(token.OrOr)
		}
		if l.match('=') {
			return mk(token.OrAssign)
		}
		return mk(token.BitOr)
	case '^':
		if l.match('=') {
			return mk(token.XorAssign)
		}
		return mk(token.BitXor)
	case '+':
		if l.match('+') {
			return mk(token.Increment)
		}
		if l.match('=') {
			return mk(token.PlusAssign)
		}
		return mk(token.Plus)
	case '-':
		if l.match('-') {
			return mk(token.Decrement)
		}
		if l.match('=') {
			return mk(token.MinusAssign)
		}
		if l.match('>') {
			return mk(token.Arrow)
		}
		return mk(token.Minus)
	case '*':
		if l.match('=') {
			return mk(token.StarAssign)
		}
		return mk(token.Star)
	case '/':
		if l.match('=') {
			return mk(token.SlashAssign)
		}
		return mk(token.Slash)
	case '%':
		if l.match('=') {
			return mk(token.PercentAssign)
		}
		return mk(token.Percent)
	default:
		l.addDiag(diagnostic.LexError, start, "unexpected character")
		return mk(token.Error)
	}
}
