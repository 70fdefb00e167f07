package token

// Kind is the closed token-kind enumeration: identifiers, reserved
// keywords, contextual keywords, literal kinds, punctuators and compound
// operators up to four characters, plus trivia (whitespace, comments) and
// the synthetic EOF marker.
type Kind int

const (
	EOF Kind = iota
	Error
	Whitespace
	Comment
	LineComment
	JavadocComment

	Identifier

	IntLiteral
	LongLiteral
	FloatLiteral
	DoubleLiteral
	CharLiteral
	StringLiteral
	TextBlockLiteral
	TrueLiteral
	FalseLiteral
	NullLiteral

	// Reserved keywords.
	Abstract
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Void
	Volatile
	While

	// Contextual keywords — lexed as Identifier by the lexer; the parser
	// promotes these to keyword-role handling based on position (see
	// internal/javaparser). The kinds exist so the parser can classify an
	// already-lexed Identifier's text without a second lookup table. The
	// one exception is NonSealed: the lexer emits `non-sealed` as its own
	// NonSealed token.
	Var
	Yield
	Record
	Sealed
	NonSealed // "non-sealed", the only hyphenated token
	Permits
	When
	Module
	Open
	Requires
	ExportsKw
	Opens
	Uses
	Provides
	To
	With
	Transitive

	// Punctuators and operators.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Ellipsis
	At
	ColonColon

	Assign
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	AndAnd
	OrOr
	Not
	BitAnd
	BitOr
	BitXor
	BitNot
	Shl
	Shr
	UShr
	Plus
	Minus
	Star
	Slash
	Percent
	Increment
	Decrement
	Question
	Colon
	Arrow
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	UShrAssign
)

var kindNames = map[Kind]string{
	EOF: "EOF", Error: "Error", Whitespace: "Whitespace", Comment: "Comment",
	LineComment: "LineComment", JavadocComment: "JavadocComment",
	Identifier: "Identifier",
	IntLiteral: "IntLiteral", LongLiteral: "LongLiteral", FloatLiteral: "FloatLiteral",
	DoubleLiteral: "DoubleLiteral", CharLiteral: "CharLiteral", StringLiteral: "StringLiteral",
	TextBlockLiteral: "TextBlockLiteral", TrueLiteral: "true", FalseLiteral: "false", NullLiteral: "null",
	Abstract: "abstract", Assert: "assert", Boolean: "boolean", Break: "break", Byte: "byte",
	Case: "case", Catch: "catch", Char: "char", Class: "class", Const: "const",
	Continue: "continue", Default: "default", Do: "do", Double: "double", Else: "else",
	Enum: "enum", Extends: "extends", Final: "final", Finally: "finally", Float: "float",
	For: "for", Goto: "goto", If: "if", Implements: "implements", Import: "import",
	Instanceof: "instanceof", Int: "int", Interface: "interface", Long: "long", Native: "native",
	New: "new", Package: "package", Private: "private", Protected: "protected", Public: "public",
	Return: "return", Short: "short", Static: "static", Strictfp: "strictfp", Super: "super",
	Switch: "switch", Synchronized: "synchronized", This: "this", Throw: "throw", Throws: "throws",
	Transient: "transient", Try: "try", Void: "void", Volatile: "volatile", While: "while",
	Var: "var", Yield: "yield", Record: "record", Sealed: "sealed", NonSealed: "non-sealed",
	Permits: "permits", When: "when", Module: "module", Open: "open", Requires: "requires",
	ExportsKw: "exports", Opens: "opens", Uses: "uses", Provides: "provides", To: "to",
	With: "with", Transitive: "transitive",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Semicolon: ";", Comma: ",", Dot: ".", Ellipsis: "...", At: "@", ColonColon: "::",
	Assign: "=", Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	AndAnd: "&&", OrOr: "||", Not: "!", BitAnd: "&", BitOr: "|", BitXor: "^", BitNot: "~",
	Shl: "<<", Shr: ">>", UShr: ">>>", Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Increment: "++", Decrement: "--", Question: "?", Colon: ":", Arrow: "->",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=", PercentAssign: "%=",
	AndAssign: "&=", OrAssign: "|=", XorAssign: "^=", ShlAssign: "<<=", ShrAssign: ">>=", UShrAssign: ">>>=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// keywords holds only the RESERVED keywords; contextual keywords are never
// promoted by the lexer (invariant 5: contextual keywords in non-keyword
// contexts are identifiers, never keyword nodes — so the lexer never even
// gets to decide). The parser looks up contextual-keyword text itself via
// ContextualKind.
var keywords = map[string]Kind{
	"abstract": Abstract, "assert": Assert, "boolean": Boolean, "break": Break, "byte": Byte,
	"case": Case, "catch": Catch, "char": Char, "class": Class, "const": Const,
	"continue": Continue, "default": Default, "do": Do, "double": Double, "else": Else,
	"enum": Enum, "extends": Extends, "final": Final, "finally": Finally, "float": Float,
	"for": For, "goto": Goto, "if": If, "implements": Implements, "import": Import,
	"instanceof": Instanceof, "int": Int, "interface": Interface, "long": Long, "native": Native,
	"new": New, "package": Package, "private": Private, "protected": Protected, "public": Public,
	"return": Return, "short": Short, "static": Static, "strictfp": Strictfp, "super": Super,
	"switch": Switch, "synchronized": Synchronized, "this": This, "throw": Throw, "throws": Throws,
	"transient": Transient, "try": Try, "void": Void, "volatile": Volatile, "while": While,
	"true": TrueLiteral, "false": FalseLiteral, "null": NullLiteral,
}

// contextualKeywords maps contextual-keyword text to the Kind the parser
// promotes it to once it decides the position calls for it. The lexer
// never uses this table; see internal/javaparser for the promotion logic.
var contextualKeywords = map[string]Kind{
	"var": Var, "yield": Yield, "record": Record, "sealed": Sealed,
	"permits": Permits, "when": When, "module": Module, "open": Open,
	"requires": Requires, "exports": ExportsKw, "opens": Opens, "uses": Uses,
	"provides": Provides, "to": To, "with": With, "transitive": Transitive,
}

// LookupKeyword returns the reserved-keyword Kind for ident, or Identifier
// if ident is not a reserved keyword (including when it is merely a
// contextual keyword — those stay Identifier at lex time per invariant 5).
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// ContextualKind returns the contextual-keyword Kind for ident and true, or
// (0, false) if ident is not one of the recognized contextual keywords.
func ContextualKind(ident string) (Kind, bool) {
	k, ok := contextualKeywords[ident]
	return k, ok
}
