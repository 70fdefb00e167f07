package arena

// The attribute types below are the typed payloads spec §3 requires for
// node kinds whose identity is not expressible as child position alone.

// PackageAttr is the attribute of a KindPackageDecl node.
type PackageAttr struct {
	Name string // dotted package name
}

// ImportAttr is the attribute of a KindImportDecl node.
type ImportAttr struct {
	Name     string // qualified name, "*"-suffixed for on-demand imports
	IsStatic bool
}

// ModuleImportAttr is the attribute of a KindModuleImportDecl node.
type ModuleImportAttr struct {
	ModuleName string
}

// TypeNameAttr is the attribute of class/interface/enum/record/annotation
// declarations and enum constants: their simple name.
type TypeNameAttr struct {
	Name string
}

// ParameterAttr is the attribute of a KindParameter node.
type ParameterAttr struct {
	Name       string
	IsVarargs  bool
	IsFinal    bool
	IsReceiver bool
}

// LiteralAttr is the attribute of a KindLiteral node: its kind-specific
// textual form, preserved verbatim from the source token.
type LiteralAttr struct {
	Text string
}

// IdentifierAttr is the attribute of KindIdentifier / KindQualifiedName
// nodes.
type IdentifierAttr struct {
	Name string
}

// ModifiersAttr records which modifier keywords were present, in source
// order, on a KindModifiers node.
type ModifiersAttr struct {
	Keywords []string
}

// OperatorAttr records the operator text of a KindBinaryExpr, KindUnaryExpr
// or KindAssignExpr node.
type OperatorAttr struct {
	Operator string
}

// LabelAttr records a label's name on KindLabeledStmt, KindBreakStmt or
// KindContinueStmt.
type LabelAttr struct {
	Name string
}

// JavadocAttr is the optional supplemented attribute (SPEC_FULL §12) on a
// KindJavadocComment node: its parsed tag structure.
type JavadocAttr struct {
	Summary string
	Tags    []JavadocTag
}

// JavadocTag is one @tag entry in a Javadoc comment.
type JavadocTag struct {
	Name string // "param", "return", "throws", ...
	Arg  string // e.g. the parameter name for @param
	Text string
}
