package sema

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/lexer"
	"ucc/internal/parser"
	"ucc/internal/source"
	"ucc/internal/types"
)

func analyzeSource(t *testing.T, src string) (*ast.Program, Result, *diag.Bag) {
	t.Helper()
	fset := source.NewFileSet()
	f := fset.AddVirtual("test.uc", []byte(src))
	bag := diag.NewBag(f.ID, 0)
	toks := lexer.New(f, bag).Tokens()
	prog := parser.Parse(f, toks, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected syntax errors: %v", bag.Items())
	}
	res := Analyze(prog, bag)
	return prog, res, bag
}

func errorsContaining(bag *diag.Bag, substr string) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range bag.Items() {
		if strings.Contains(d.Message, substr) {
			out = append(out, d)
		}
	}
	return out
}

func TestCleanProgramHasNoErrors(t *testing.T) {
	_, res, bag := analyzeSource(t, `
struct point {
  int x;
  int y;
};

int manhattan(point p) {
  return p.x + p.y;
}

void main() {
  point p = new point(1, 2);
  int d = manhattan(p);
  println(int_to_string(d));
}
`)
	be.Equal(t, res.Errors, 0)
	be.Equal(t, bag.ErrorCount(), 0)
}

func TestStructAndNewScenario(t *testing.T) {
	prog, res, _ := analyzeSource(t, `
struct point {
  int x;
  int y;
};

int use() {
  point p = new point(1, 2);
  return p.x;
}
`)
	be.Equal(t, res.Errors, 0)

	pointType, ok := res.Global.TryType("point")
	be.True(t, ok)

	var newNode *ast.New
	var access *ast.FieldAccess
	ast.Walk(prog, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.New:
			newNode = n
		case *ast.FieldAccess:
			access = n
		}
	})
	be.True(t, newNode != nil)
	be.True(t, newNode.Type() == pointType)
	be.True(t, access != nil)
	be.True(t, access.Type() == res.Global.Builtins().Int)
}

func TestUndefinedFunctionFallback(t *testing.T) {
	prog, _, bag := analyzeSource(t, `
void main() {
  foo(1);
}
`)
	errs := errorsContaining(bag, "undefined function foo")
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].Phase, diag.PhaseResolveCalls)

	fallback, ok := prog.Decls[0].(*ast.FuncDecl)
	be.True(t, ok)
	var call *ast.Call
	ast.Walk(fallback, func(n ast.Node) {
		if cn, isCall := n.(*ast.Call); isCall {
			call = cn
		}
	})
	be.True(t, call != nil)
	be.True(t, call.Fn() != types.UncomputedFn)
	be.Equal(t, call.Fn().Name(), "string_to_int")
}

func TestStringConcatenation(t *testing.T) {
	prog, res, _ := analyzeSource(t, `
void main() {
  "a" + 1;
}
`)
	be.Equal(t, res.Errors, 0)
	var bin *ast.Binary
	ast.Walk(prog, func(n ast.Node) {
		if b, ok := n.(*ast.Binary); ok {
			bin = b
		}
	})
	be.True(t, bin != nil)
	be.True(t, bin.Type() == res.Global.Builtins().String)
}

func TestRedeclarationInSameBlock(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  int x = 0;
  int x = 1;
}
`)
	errs := errorsContaining(bag, "redeclaration of x")
	be.Equal(t, len(errs), 1)
	// cites the first declaration's line
	be.True(t, strings.Contains(errs[0].Message, "line 3:3"))
	be.Equal(t, errs[0].Phase, diag.PhaseCheckNames)
}

func TestShadowingAllowed(t *testing.T) {
	_, res, _ := analyzeSource(t, `
void main() {
  int x = 0;
  {
    double x = 1.5;
    x + 1.0;
  }
  x + 1;
}
`)
	be.Equal(t, res.Errors, 0)
}

func TestBreakContinuePlacement(t *testing.T) {
	_, res, _ := analyzeSource(t, `
void ok() {
  while (true) {
    break;
  }
  for (;;) {
    continue;
  }
}
`)
	be.Equal(t, res.Errors, 0)

	_, _, bag := analyzeSource(t, `
void bad() {
  break;
  continue;
}
`)
	be.Equal(t, len(errorsContaining(bag, "break only allowed within a loop")), 1)
	be.Equal(t, len(errorsContaining(bag, "continue only allowed within a loop")), 1)
	for _, d := range bag.Items() {
		be.Equal(t, d.Phase, diag.PhaseControl)
	}
}

func TestBreakAfterLoopStillReported(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void f() {
  while (true) {
  }
  break;
}
`)
	be.Equal(t, len(errorsContaining(bag, "break only allowed within a loop")), 1)
}

func TestTypeRedefinition(t *testing.T) {
	_, _, bag := analyzeSource(t, `
struct a {
  int x;
};
struct a {
  int y;
};

void use() {
  a v = new a();
  v.x;
}
`)
	errs := errorsContaining(bag, "redefinition of type a")
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].Phase, diag.PhaseDeclare)
	// the original binding stays: field x resolves, field y would not
	be.Equal(t, len(errorsContaining(bag, "not in a")), 0)
}

func TestUndefinedTypeFallsBackToInt(t *testing.T) {
	prog, _, bag := analyzeSource(t, `
void main() {
  widget w = 1;
}
`)
	errs := errorsContaining(bag, "undefined type widget")
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].Phase, diag.PhaseResolveTypes)
	// fallback int makes the initialization well-typed
	be.Equal(t, len(errorsContaining(bag, "cannot be initialized")), 0)

	var tn *ast.SimpleTypeName
	ast.Walk(prog, func(n ast.Node) {
		if s, ok := n.(*ast.SimpleTypeName); ok && s.Name.Raw == "widget" {
			tn = s
		}
	})
	be.True(t, tn != nil)
	be.True(t, tn.Type() != types.Uncomputed)
}

func TestArithmeticOperandChecks(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  1 * true;
}
`)
	errs := errorsContaining(bag, "binary * operator expects int, long, or double, got boolean")
	be.Equal(t, len(errs), 1)
	be.Equal(t, errs[0].Phase, diag.PhaseTypeCheck)
}

// The operator spelling must land in the message verbatim even when it is a
// formatting verb itself.
func TestModuloOperandMessage(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  1 % true;
}
`)
	be.Equal(t, len(bag.Items()), 1)
	be.Equal(t, bag.Items()[0].Message,
		"binary % operator expects int, long, or double, got boolean")
	be.Equal(t, bag.Items()[0].Phase, diag.PhaseTypeCheck)
}

func TestAssignmentRules(t *testing.T) {
	_, _, bag := analyzeSource(t, `
struct box {
  int v;
};

void main() {
  box b = new box(1);
  b.v = 2;
  new box() = b;
}
`)
	errs := errorsContaining(bag, "assignment operator expects l-value")
	be.Equal(t, len(errs), 1)
}

func TestArrayOperations(t *testing.T) {
	prog, res, _ := analyzeSource(t, `
void main() {
  int[] xs = new int[]{1, 2, 3};
  int n = xs.length;
  int first = xs[0];
  xs << 4;
  xs >> xs[0];
}
`)
	be.Equal(t, res.Errors, 0)

	var idx *ast.Index
	ast.Walk(prog, func(n ast.Node) {
		if i, ok := n.(*ast.Index); ok && idx == nil {
			idx = i
		}
	})
	be.True(t, idx != nil)
	be.True(t, idx.Type() == res.Global.Builtins().Int)
}

func TestArrayErrors(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  int[] xs = new int[]{1, 1.5};
  int y = 1;
  y[0];
  xs[true];
  xs.size;
}
`)
	be.Equal(t, len(errorsContaining(bag, "array of int cannot be initialized with double")), 1)
	be.Equal(t, len(errorsContaining(bag, "Cannot index into non-array.")), 1)
	be.Equal(t, len(errorsContaining(bag, "Cannot index non-integer boolean into array.")), 1)
	be.Equal(t, len(errorsContaining(bag, "unknown field size of int[]")), 1)
}

func TestCallArgumentChecks(t *testing.T) {
	_, _, bag := analyzeSource(t, `
int twice(int x) {
  return x + x;
}

void main() {
  twice(1, 2);
  twice("s");
  twice(1);
}
`)
	be.Equal(t, len(errorsContaining(bag, "function twice expected 1 arguments, got 2")), 1)
	be.Equal(t, len(errorsContaining(bag, "type int at 1 not compatible with string parameter")), 1)
}

func TestNewArgumentChecks(t *testing.T) {
	_, _, bag := analyzeSource(t, `
struct pair {
  int a;
  double b;
};

void main() {
  pair ok = new pair(1, 2);
  pair dflt = new pair();
  pair bad = new pair(1, 2, 3);
  pair wrong = new pair(1.5, 2.0);
}
`)
	be.Equal(t, len(errorsContaining(bag, "pair expected 2 arguments, got 3")), 1)
	be.Equal(t, len(errorsContaining(bag, "pair expected int at 1, got double")), 1)
}

func TestWideningInCallsAndInits(t *testing.T) {
	_, res, _ := analyzeSource(t, `
double half(double x) {
  return x / 2.0;
}

void main() {
  long big = 1;
  double d = half(3);
  double e = big;
}
`)
	be.Equal(t, res.Errors, 0)
}

func TestNarrowingInitRejected(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  int x = 1.5;
}
`)
	be.Equal(t, len(errorsContaining(bag, "variable x of type int cannot be initialized with double")), 1)
}

func TestNullConvertsToReferences(t *testing.T) {
	_, res, _ := analyzeSource(t, `
struct node {
  int v;
};

void main() {
  node n = null;
  int[] xs = null;
}
`)
	be.Equal(t, res.Errors, 0)
}

func TestConditionsMustBeBoolean(t *testing.T) {
	_, _, bag := analyzeSource(t, `
void main() {
  if (1) {
  }
  while ("s") {
  }
  assert 2.5;
}
`)
	be.Equal(t, len(errorsContaining(bag, "if condition must be boolean, got int")), 1)
	be.Equal(t, len(errorsContaining(bag, "while condition must be boolean, got string")), 1)
	be.Equal(t, len(errorsContaining(bag, "assert condition must be boolean, got double")), 1)
}

func TestReturnChecks(t *testing.T) {
	_, _, bag := analyzeSource(t, `
int f() {
  return;
}

void g() {
  return 1;
}

int h() {
  return "s";
}
`)
	be.Equal(t, len(errorsContaining(bag, "return statement expects a value of type int")), 1)
	be.Equal(t, len(errorsContaining(bag, "void function cannot return a value")), 1)
	be.Equal(t, len(errorsContaining(bag, "return statement expects int, got string")), 1)
}

func TestForHeaderScopeCoversBody(t *testing.T) {
	_, res, _ := analyzeSource(t, `
void main() {
  for (int i = 0; i < 10; ++i) {
    i + 1;
  }
}
`)
	be.Equal(t, res.Errors, 0)
}

func TestValidatorFindsNoSentinelsInCleanTree(t *testing.T) {
	prog, res, _ := analyzeSource(t, `
struct point {
  int x;
  int y;
};

point origin() {
  return new point(0, 0);
}

void main() {
  point p = origin();
  assert p.x == 0 : "origin must be at zero";
  for (int i = 0; i < p.y; ++i) {
    p.x = p.x + i;
  }
}
`)
	be.Equal(t, res.Errors, 0)
	ast.Walk(prog, func(n ast.Node) {
		if ht, ok := n.(ast.HasType); ok {
			be.True(t, ht.Type() != types.Uncomputed)
		}
		if hf, ok := n.(ast.HasFunc); ok {
			be.True(t, hf.Fn() != types.UncomputedFn)
		}
	})
}

func TestHashOperatorTypesLong(t *testing.T) {
	prog, res, _ := analyzeSource(t, `
struct node {
  int v;
};

void main() {
  node n = new node(1);
  long id = #n;
}
`)
	be.Equal(t, res.Errors, 0)
	var un *ast.Unary
	ast.Walk(prog, func(n ast.Node) {
		if u, ok := n.(*ast.Unary); ok {
			un = u
		}
	})
	be.True(t, un != nil)
	be.True(t, un.Type() == res.Global.Builtins().Long)
}

func TestDuplicateFieldsAndParams(t *testing.T) {
	_, _, bag := analyzeSource(t, `
struct s {
  int a;
  int a;
};

void f(int p, int p) {
}
`)
	be.Equal(t, len(errorsContaining(bag, "redeclaration of a")), 1)
	be.Equal(t, len(errorsContaining(bag, "redeclaration of p")), 1)
}
