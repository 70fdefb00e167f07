package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

var primitiveTypeKinds = map[token.Kind]bool{
	token.Boolean: true, token.Byte: true, token.Char: true, token.Short: true,
	token.Int: true, token.Long: true, token.Float: true, token.Double: true,
	token.Void: true,
}

func (p *parser) isPrimitiveType() bool { return primitiveTypeKinds[p.peek().Kind] }

// parseType parses a type reference: primitive, qualified, parameterized,
// or array (via trailing `[]` dimensions), with JSR 308 type annotations
// permitted before the type and before each array dimension.
func (p *parser) parseType() arena.NodeIndex {
	if !p.enterRecursion() {
		return p.allocate(arena.KindError, p.startPos(), p.startPos(), nil)
	}
	defer p.exitRecursion()

	start := p.startPos()
	var annotations []arena.NodeIndex
	for p.check(token.At) {
		annotations = append(annotations, p.parseAnnotation())
	}

	var base arena.NodeIndex
	if p.isPrimitiveType() {
		t := p.advance()
		base = p.allocateAttr(arena.KindPrimitiveType, start, p.lastEnd(), annotations, arena.IdentifierAttr{Name: t.Kind.String()})
	} else {
		base = p.parseQualifiedOrParameterizedType(start, annotations)
	}

	for p.check(token.LBracket) && p.peekNKind(1) == token.RBracket {
		dimStart := start
		var dimAnnotations []arena.NodeIndex
		for p.check(token.At) {
			dimAnnotations = append(dimAnnotations, p.parseAnnotation())
		}
		p.advance() // [
		p.advance() // ]
		children := append([]arena.NodeIndex{base}, dimAnnotations...)
		base = p.allocate(arena.KindArrayType, dimStart, p.lastEnd(), children)
	}
	return base
}

// parseQualifiedOrParameterizedType parses Name(.Name)* with optional
// <TypeArguments> after any segment, and intersection types (A & B) when
// used in a cast context (handled by the caller via parseIntersectionRest).
func (p *parser) parseQualifiedOrParameterizedType(start token.Position, leading []arena.NodeIndex) arena.NodeIndex {
	var segments []arena.NodeIndex
	var segAnnotations [][]arena.NodeIndex
	for {
		var segAnn []arena.NodeIndex
		for p.check(token.At) {
			segAnn = append(segAnn, p.parseAnnotation())
		}
		id, ok := p.expect(token.Identifier)
		if !ok {
			break
		}
		nameIdx := p.allocateAttr(arena.KindIdentifier, id.Span.Start, id.Span.End, nil, arena.IdentifierAttr{Name: id.Text})
		cur := nameIdx
		if p.check(token.Lt) && p.looksLikeTypeArgumentList() {
			args := p.parseTypeArguments()
			children := append([]arena.NodeIndex{nameIdx}, args...)
			cur = p.allocate(arena.KindParameterizedType, id.Span.Start, p.lastEnd(), children)
		}
		segments = append(segments, cur)
		segAnnotations = append(segAnnotations, segAnn)
		if p.check(token.Dot) && p.peekNKind(1) == token.Identifier {
			p.advance()
			continue
		}
		break
	}
	if len(segments) == 1 {
		children := append(append([]arena.NodeIndex{}, leading...), segAnnotations[0]...)
		if len(children) == 0 {
			return segments[0]
		}
		n := p.arena.Get(segments[0])
		return p.allocate(n.Kind, start, p.lastEnd(), append(n.Children, children...))
	}
	return p.allocate(arena.KindQualifiedType, start, p.lastEnd(), segments)
}

// parseTypeArguments parses `<T, U, ...>` (or the empty diamond `<>`),
// committing via expectGT which may split a `>>`/`>>>` token in place
// (spec §4.3.3).
func (p *parser) parseTypeArguments() []arena.NodeIndex {
	p.expect(token.Lt)
	var args []arena.NodeIndex
	if p.check(token.Gt) || p.peek().Splittable {
		p.expectGT()
		return args // empty diamond: no child types (scenario C)
	}
	args = append(args, p.parseTypeArgument())
	for p.check(token.Comma) {
		p.advance()
		args = append(args, p.parseTypeArgument())
	}
	p.expectGT()
	return args
}

func (p *parser) parseTypeArgument() arena.NodeIndex {
	start := p.startPos()
	if p.check(token.Question) {
		p.advance()
		var bound arena.NodeIndex
		var children []arena.NodeIndex
		if p.check(token.Extends) || p.check(token.Super) {
			p.advance()
			bound = p.parseType()
			children = append(children, bound)
		}
		return p.allocate(arena.KindWildcardType, start, p.lastEnd(), children)
	}
	return p.allocate(arena.KindTypeArgument, start, p.lastEnd(), []arena.NodeIndex{p.parseType()})
}

// looksLikeTypeArgumentList speculatively scans past a `<...>` region to
// decide whether `<` opens a type-argument list rather than meaning
// less-than (spec §4.3.3). It backtracks unconditionally.
func (p *parser) looksLikeTypeArgumentList() bool {
	save := p.pos
	defer func() { p.pos = save }()

	if !p.skipAngleBracketRegion() {
		return false
	}
	switch p.peek().Kind {
	case token.Dot, token.LParen, token.LBracket, token.ColonColon, token.Identifier:
		return true
	}
	return false
}

// skipAngleBracketRegion consumes a balanced `<...>` region starting at
// the current `<`, honoring the splittable nature of `>>`/`>>>` by
// treating each as closing one or more nesting levels. It does not mutate
// tokens; it only advances p.pos. Returns false if no balanced close is
// found before a token that cannot appear in a type.
func (p *parser) skipAngleBracketRegion() bool {
	if !p.check(token.Lt) {
		return false
	}
	depth := 0
	progress := p.mustProgress()
	for {
		switch p.peek().Kind {
		case token.Lt:
			depth++
			p.advance()
		case token.Gt:
			depth--
			p.advance()
			if depth <= 0 {
				return true
			}
		case token.Shr:
			depth -= 2
			p.advance()
			if depth <= 0 {
				return true
			}
		case token.UShr:
			depth -= 3
			p.advance()
			if depth <= 0 {
				return true
			}
		case token.Ge:
			depth--
			p.advance()
			if depth <= 0 {
				return true
			}
		case token.Identifier, token.Dot, token.Comma, token.Question, token.Extends,
			token.Super, token.LBracket, token.RBracket, token.At:
			p.advance()
		default:
			if primitiveTypeKinds[p.peek().Kind] {
				p.advance()
				continue
			}
			return false
		}
		if !progress() {
			return false
		}
	}
}

// expectGT consumes a closing `>`, splitting a `>>`, `>>>`, `>=`, `>>=` or
// `>>>=` token in place when necessary (spec §4.3.3). Splitting a token
// that was produced as one `>>`/`>>>` vs. two separate `>` tokens must be
// invisible to the resulting tree (spec §8 property 8); both paths here
// consume exactly one `>` of width and leave the remainder, if any, as the
// next token.
func (p *parser) expectGT() {
	t := p.peek()
	switch t.Kind {
	case token.Gt:
		p.advance()
		return
	case token.Shr:
		p.splitToken(token.Gt, 1)
		return
	case token.UShr:
		p.splitToken(token.Shr, 1)
		return
	case token.Ge:
		p.splitToken(token.Assign, 1)
		return
	case token.ShrAssign:
		p.splitToken(token.Ge, 1)
		return
	case token.UShrAssign:
		p.splitToken(token.ShrAssign, 1)
		return
	}
	p.errorf(t, "expected '>', got %s", t.Kind)
}

// splitToken mutates the current token in the stream: it is consumed as
// one `>`, and the token
// at p.pos is rewritten in place to the residual kind/text, with its start
// position advanced by one code unit, rather than re-lexing. This mirrors
// dhamidi-sai's splitShiftToken/splitCompareToken.
func (p *parser) splitToken(remainder token.Kind, consumedWidth int) {
	cur := p.tokens[p.pos]
	newStart := cur.Span.Start
	newStart.Offset += uint32(consumedWidth)
	newStart.Column += uint32(consumedWidth)
	residualText := ""
	if len(cur.Text) > consumedWidth {
		residualText = cur.Text[consumedWidth:]
	}
	p.tokens[p.pos] = token.Token{
		Kind: remainder,
		Span: token.Span{Start: newStart, End: cur.Span.End},
		Text: residualText,
	}
	// The consumed `>` itself is not a separate slot in the stream; treat
	// this call site as having "consumed" it by virtue of rewriting
	// the token in place. advance() would move past the (now-residual)
	// token, so callers that need the residual left for further parsing
	// must NOT call advance() here.
}

func (p *parser) parseTypeParameters() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.Lt)
	var children []arena.NodeIndex
	children = append(children, p.parseTypeParameter())
	for p.check(token.Comma) {
		p.advance()
		children = append(children, p.parseTypeParameter())
	}
	p.expectGT()
	return p.allocate(arena.KindTypeParameters, start, p.lastEnd(), children)
}

func (p *parser) parseTypeParameter() arena.NodeIndex {
	start := p.startPos()
	var annotations []arena.NodeIndex
	for p.check(token.At) {
		annotations = append(annotations, p.parseAnnotation())
	}
	name, _ := p.expect(token.Identifier)
	children := annotations
	if p.check(token.Extends) {
		p.advance()
		children = append(children, p.parseType())
		for p.check(token.BitAnd) {
			p.advance()
			children = append(children, p.parseType())
		}
	}
	return p.allocateAttr(arena.KindTypeParameter, start, p.lastEnd(), children, arena.IdentifierAttr{Name: name.Text})
}

func (p *parser) parseExtendsClause() arena.NodeIndex {
	start := p.startPos()
	p.advance() // extends
	var children []arena.NodeIndex
	children = append(children, p.parseType())
	for p.check(token.Comma) {
		p.advance()
		children = append(children, p.parseType())
	}
	return p.allocate(arena.KindExtendsClause, start, p.lastEnd(), children)
}

func (p *parser) parseImplementsClause() arena.NodeIndex {
	start := p.startPos()
	p.advance() // implements
	var children []arena.NodeIndex
	children = append(children, p.parseType())
	for p.check(token.Comma) {
		p.advance()
		children = append(children, p.parseType())
	}
	return p.allocate(arena.KindImplementsClause, start, p.lastEnd(), children)
}

func (p *parser) parsePermitsClause() arena.NodeIndex {
	start := p.startPos()
	p.advance() // permits
	var children []arena.NodeIndex
	children = append(children, p.parseType())
	for p.check(token.Comma) {
		p.advance()
		children = append(children, p.parseType())
	}
	return p.allocate(arena.KindPermitsClause, start, p.lastEnd(), children)
}
