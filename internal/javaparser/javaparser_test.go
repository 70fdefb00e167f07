package javaparser

import (
	"testing"

	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/diagnostic"
)

// walk calls fn for every node reachable from the tree's root, parent
// before its children (the allocation order is the reverse, but the tree
// shape walks root-down regardless of index order).
func walk(t *Tree, i arena.NodeIndex, fn func(arena.NodeIndex, NodeView)) {
	n := t.Node(i)
	fn(i, n)
	for _, c := range n.Children {
		walk(t, c, fn)
	}
}

func mustParse(t *testing.T, src string, opts ...Option) *Tree {
	t.Helper()
	tree, diags := Parse(src, opts...)
	if tree == nil {
		t.Fatalf("Parse(%q) failed: %v", src, diags)
	}
	if len(diags) != 0 {
		t.Fatalf("Parse(%q) diags = %v, want none", src, diags)
	}
	return tree
}

// --- structural invariants (spec §8) ---

func TestSuccessfulParseHasNoDiagnostics(t *testing.T) {
	tree, diags := Parse("class A {}")
	if tree == nil {
		t.Fatalf("Parse failed: %v", diags)
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %v, want none (tree and diagnostics are mutually exclusive)", diags)
	}
}

func TestFailedParseHasNilTree(t *testing.T) {
	tree, diags := Parse("class {")
	if tree != nil {
		t.Fatal("tree != nil alongside diagnostics, want nil (mutual exclusivity)")
	}
	if len(diags) == 0 {
		t.Fatal("expected diagnostics for malformed input")
	}
}

func TestChildIndicesPrecedeParentIndex(t *testing.T) {
	tree := mustParse(t, "class A { int x; void m() { x = 1; } }")
	walk(tree, tree.Root(), func(i arena.NodeIndex, n NodeView) {
		for _, c := range n.Children {
			if !(c < i) {
				t.Errorf("child %d does not precede parent %d (post-order allocation invariant)", c, i)
			}
		}
	})
}

func TestSpanContainsAllChildSpans(t *testing.T) {
	tree := mustParse(t, "class A { int x = 1 + 2 * 3; }")
	walk(tree, tree.Root(), func(i arena.NodeIndex, n NodeView) {
		for _, c := range n.Children {
			cn := tree.Node(c)
			if cn.Start < n.Start || cn.End > n.End {
				t.Errorf("child %d span [%d,%d) escapes parent %d span [%d,%d)",
					c, cn.Start, cn.End, i, n.Start, n.End)
			}
		}
	})
}

func TestRootIsTheHighestIndexedNode(t *testing.T) {
	tree := mustParse(t, "class A {}")
	if int(tree.Root()) != tree.NodeCount()-1 {
		t.Fatalf("root index = %d, want %d (last allocated, post-order)", tree.Root(), tree.NodeCount()-1)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	src := "package p; class A<T> implements java.io.Serializable { T get() { return null; } }"
	t1 := mustParse(t, src)
	t2 := mustParse(t, src)
	if !t1.Equal(t2) {
		t.Fatal("two parses of the same source produced structurally different trees")
	}
}

func TestResourceExhaustedSourceSizeIsFatal(t *testing.T) {
	_, diags := Parse("class A {}", WithMaxSourceBytes(4))
	if len(diags) != 1 || diags[0].Kind != diagnostic.ResourceExhaustedSourceSize {
		t.Fatalf("diags = %v, want a single ResourceExhausted::SourceSize", diags)
	}
	if !diags[0].Kind.Fatal() {
		t.Fatal("ResourceExhaustedSourceSize.Fatal() = false, want true")
	}
}

func TestResourceExhaustedRecursionDepthIsFatal(t *testing.T) {
	deep := "class A { int x = "
	for i := 0; i < 500; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 500; i++ {
		deep += ")"
	}
	deep += "; }"

	tree, diags := Parse(deep, WithMaxRecursionDepth(50))
	if tree != nil {
		t.Fatal("expected parse to fail under a shallow recursion cap")
	}
	found := false
	for _, d := range diags {
		if d.Kind == diagnostic.ResourceExhaustedRecursionDepth {
			found = true
		}
	}
	if !found {
		t.Fatalf("diags = %v, want a ResourceExhausted::RecursionDepth entry", diags)
	}
}

// --- ambiguous-construct scenarios ---

func TestGenericsVsLessThanDisambiguation(t *testing.T) {
	tree := mustParse(t, "class A { void m() { boolean b = x < y; List<String> l = null; } }")
	var sawBinary, sawParamType bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindBinaryExpr {
			sawBinary = true
		}
		if n.Kind == arena.KindParameterizedType {
			sawParamType = true
		}
	})
	if !sawBinary {
		t.Error("no BinaryExpr found for 'x < y'")
	}
	if !sawParamType {
		t.Error("no ParameterizedType found for 'List<String>'")
	}
}

func TestNestedGenericsClosingAngleBracketsSplit(t *testing.T) {
	tree := mustParse(t, "class A { Map<String, List<Integer>> m; }")
	var sawParamType int
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindParameterizedType {
			sawParamType++
		}
	})
	if sawParamType < 2 {
		t.Fatalf("saw %d ParameterizedType nodes, want at least 2 (Map<...> and the nested List<...>)", sawParamType)
	}
}

func TestLambdaVsParenthesizedExpression(t *testing.T) {
	tree := mustParse(t, "class A { Runnable r = () -> {}; int x = (1 + 2); }")
	var sawLambda, sawParen bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindLambdaExpr {
			sawLambda = true
		}
		if n.Kind == arena.KindParenExpr {
			sawParen = true
		}
	})
	if !sawLambda {
		t.Error("no LambdaExpr found for '() -> {}'")
	}
	if !sawParen {
		t.Error("no ParenExpr found for '(1 + 2)'")
	}
}

func TestCastVsParenthesizedExpression(t *testing.T) {
	tree := mustParse(t, "class A { void m() { Object o = (String) x; int y = (x); } }")
	var sawCast, sawParen bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindCastExpr {
			sawCast = true
		}
		if n.Kind == arena.KindParenExpr {
			sawParen = true
		}
	})
	if !sawCast {
		t.Error("no CastExpr found for '(String) x'")
	}
	if !sawParen {
		t.Error("no ParenExpr found for '(x)'")
	}
}

func TestRecordPatternVsMethodCall(t *testing.T) {
	tree := mustParse(t, `class A {
		void m(Object o) {
			if (o instanceof Point(int x, int y)) { }
			int z = compute(1, 2);
		}
	}`)
	var sawRecordPattern, sawInvocation bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindRecordPattern {
			sawRecordPattern = true
		}
		if n.Kind == arena.KindMethodInvocation {
			sawInvocation = true
		}
	})
	if !sawRecordPattern {
		t.Error("no RecordPattern found for 'Point(int x, int y)'")
	}
	if !sawInvocation {
		t.Error("no MethodInvocation found for 'compute(1, 2)'")
	}
}

func TestLambdaAllowedDirectlyAfterTernaryColon(t *testing.T) {
	tree := mustParse(t, "class A { Runnable r = cond ? () -> {} : () -> {}; }")
	var sawLambda int
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindLambdaExpr {
			sawLambda++
		}
	})
	if sawLambda != 2 {
		t.Fatalf("saw %d LambdaExpr nodes, want 2 (both ternary branches)", sawLambda)
	}
}

func TestFlexibleConstructorBodyPrologueStatements(t *testing.T) {
	tree := mustParse(t, `class A extends B {
		A(int x) {
			if (x < 0) throw new IllegalArgumentException();
			super(x);
		}
	}`)
	var sawCtorInvocation, sawIf bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindExplicitConstructorInvocation {
			sawCtorInvocation = true
		}
		if n.Kind == arena.KindIfStmt {
			sawIf = true
		}
	})
	if !sawCtorInvocation {
		t.Error("no ExplicitConstructorInvocation found for 'super(x)'")
	}
	if !sawIf {
		t.Error("no IfStmt found for the prologue 'if' statement before super(x)")
	}
}

func TestSwitchExpressionYieldAndArrowForms(t *testing.T) {
	tree := mustParse(t, `class A {
		int m(int x) {
			return switch (x) {
				case 1 -> 10;
				case 2 -> { yield 20; }
				default -> 0;
			};
		}
	}`)
	var sawSwitchExpr, sawYield bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindSwitchExpr {
			sawSwitchExpr = true
		}
		if n.Kind == arena.KindYieldStmt {
			sawYield = true
		}
	})
	if !sawSwitchExpr {
		t.Error("no SwitchExpr found")
	}
	if !sawYield {
		t.Error("no YieldStmt found for 'yield 20;'")
	}
}

func TestYieldOutsideSwitchExpressionIsAnOrdinaryIdentifier(t *testing.T) {
	// Outside a switch expression, "yield" is just a method name.
	tree := mustParse(t, "class A { void m() { yield(1); } int yield(int x) { return x; } }")
	var sawYieldStmt bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindYieldStmt {
			sawYieldStmt = true
		}
	})
	if sawYieldStmt {
		t.Error("'yield(1);' outside a switch expression parsed as YieldStmt, want an ordinary call statement")
	}
}

func TestPrimitiveTypePattern(t *testing.T) {
	tree := mustParse(t, `class A {
		void m(Object o) {
			if (o instanceof int i) { }
		}
	}`)
	var sawPrimitivePattern bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindPrimitiveTypePattern {
			sawPrimitivePattern = true
		}
	})
	if !sawPrimitivePattern {
		t.Error("no PrimitiveTypePattern found for 'instanceof int i'")
	}
}

func TestModuleImportDecl(t *testing.T) {
	tree := mustParse(t, "import module java.base; class A {}")
	var sawModuleImport bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindModuleImportDecl {
			sawModuleImport = true
		}
	})
	if !sawModuleImport {
		t.Error("no ModuleImportDecl found for 'import module java.base;'")
	}
}

func TestTryWithResourcesAndMultiCatch(t *testing.T) {
	tree := mustParse(t, `class A {
		void m() {
			try (AutoCloseable r = open()) {
				use(r);
			} catch (IOException | RuntimeException e) {
				handle(e);
			} finally {
				cleanup();
			}
		}
	}`)
	var sawResource, sawUnionType, sawFinally bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindResource {
			sawResource = true
		}
		if n.Kind == arena.KindUnionType {
			sawUnionType = true
		}
		if n.Kind == arena.KindFinallyClause {
			sawFinally = true
		}
	})
	if !sawResource {
		t.Error("no Resource found for the try-with-resources declaration")
	}
	if !sawUnionType {
		t.Error("no UnionType found for the multi-catch 'IOException | RuntimeException'")
	}
	if !sawFinally {
		t.Error("no FinallyClause found")
	}
}

func TestMethodArgumentListIsNotConflatedWithArrayInitializer(t *testing.T) {
	tree := mustParse(t, "class A { int[] xs = {1, 2, 3}; void m() { compute(1, 2, 3); } }")
	var sawArgList, sawArrayInit bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindArgumentList {
			sawArgList = true
		}
		if n.Kind == arena.KindArrayInitializer {
			sawArrayInit = true
		}
	})
	if !sawArgList {
		t.Error("no ArgumentList found for 'compute(1, 2, 3)'")
	}
	if !sawArrayInit {
		t.Error("no ArrayInitializer found for '{1, 2, 3}'")
	}
}

func TestJavadocSummaryAndTags(t *testing.T) {
	tree := mustParse(t, `
/**
 * Computes a thing.
 * @param x the input
 * @return the result
 */
class A {}`)
	var found bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind != arena.KindJavadocComment {
			return
		}
		attr, ok := n.Attribute.(arena.JavadocAttr)
		if !ok {
			t.Fatalf("JavadocComment attribute type = %T, want arena.JavadocAttr", n.Attribute)
		}
		found = true
		if attr.Summary == "" {
			t.Error("JavadocAttr.Summary is empty, want the 'Computes a thing.' summary line")
		}
		var sawParam, sawReturn bool
		for _, tag := range attr.Tags {
			if tag.Name == "param" {
				sawParam = true
			}
			if tag.Name == "return" {
				sawReturn = true
			}
		}
		if !sawParam {
			t.Error("no @param tag found")
		}
		if !sawReturn {
			t.Error("no @return tag found")
		}
	})
	if !found {
		t.Fatal("no JavadocComment node found")
	}
}

func TestImplicitClassBody(t *testing.T) {
	tree := mustParse(t, `
void main() {
	System.out.println("hi");
}`)
	var sawImplicit bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindImplicitClassDecl {
			sawImplicit = true
		}
	})
	if !sawImplicit {
		t.Error("no ImplicitClassDecl found for a top-level method with no enclosing class")
	}
}

func TestUnnamedPatternVariable(t *testing.T) {
	tree := mustParse(t, `class A {
		void m(Object o) {
			if (o instanceof Point(int x, var _)) { }
		}
	}`)
	var sawUnnamed bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindUnnamedVariable {
			sawUnnamed = true
		}
	})
	if !sawUnnamed {
		t.Error("no UnnamedVariable found for the '_' record-pattern component")
	}
}

func TestSealedAndPermitsClause(t *testing.T) {
	tree := mustParse(t, "sealed interface Shape permits Circle, Square {} final class Circle implements Shape {} final class Square implements Shape {}")
	var sawPermits bool
	walk(tree, tree.Root(), func(_ arena.NodeIndex, n NodeView) {
		if n.Kind == arena.KindPermitsClause {
			sawPermits = true
		}
	})
	if !sawPermits {
		t.Error("no PermitsClause found for 'permits Circle, Square'")
	}
}
