package mython

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, src string) *Compound {
	t.Helper()
	lex, err := NewLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	program, err := ParseProgram(lex)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	return program
}

func TestParseArithmeticPrecedence(t *testing.T) {
	program := parseSource(t, "x = 1 + 2 * 3\n")
	assign, ok := program.Statements[0].(*Assignment)
	if !ok {
		t.Fatalf("got %T, want *Assignment", program.Statements[0])
	}
	add, ok := assign.Rv.(*Add)
	if !ok {
		t.Fatalf("got %T, want *Add at the top of 1 + 2 * 3", assign.Rv)
	}
	if _, ok := add.Lhs.(*NumericConst); !ok {
		t.Fatalf("got %T, want *NumericConst for 1", add.Lhs)
	}
	if _, ok := add.Rhs.(*Mult); !ok {
		t.Fatalf("got %T, want *Mult for 2 * 3", add.Rhs)
	}
}

func TestParseComparisonBindsLooserThanAdd(t *testing.T) {
	program := parseSource(t, "x = 1 + 1 < 3\n")
	assign := program.Statements[0].(*Assignment)
	cmp, ok := assign.Rv.(*Comparison)
	if !ok {
		t.Fatalf("got %T, want *Comparison at the top of 1 + 1 < 3", assign.Rv)
	}
	if _, ok := cmp.Lhs.(*Add); !ok {
		t.Fatalf("got %T, want *Add for 1 + 1", cmp.Lhs)
	}
}

func TestParseAndBindsLooserThanComparison(t *testing.T) {
	program := parseSource(t, "x = 1 == 1 and 2 < 3\n")
	assign := program.Statements[0].(*Assignment)
	and, ok := assign.Rv.(*And)
	if !ok {
		t.Fatalf("got %T, want *And", assign.Rv)
	}
	if _, ok := and.Lhs.(*Comparison); !ok {
		t.Fatalf("got %T, want *Comparison for 1 == 1", and.Lhs)
	}
	if _, ok := and.Rhs.(*Comparison); !ok {
		t.Fatalf("got %T, want *Comparison for 2 < 3", and.Rhs)
	}
}

func TestParseDottedFieldReadHasNoCall(t *testing.T) {
	program := parseSource(t, "x = a.b.c\n")
	assign := program.Statements[0].(*Assignment)
	v, ok := assign.Rv.(*VariableValue)
	if !ok {
		t.Fatalf("got %T, want *VariableValue", assign.Rv)
	}
	want := []string{"a", "b", "c"}
	if len(v.Ids) != len(want) {
		t.Fatalf("got ids %v, want %v", v.Ids, want)
	}
	for i := range want {
		if v.Ids[i] != want[i] {
			t.Fatalf("got ids %v, want %v", v.Ids, want)
		}
	}
}

func TestParseBareIdentifierCallIsNewInstance(t *testing.T) {
	program := parseSource(t, "x = A(1)\n")
	assign := program.Statements[0].(*Assignment)
	ni, ok := assign.Rv.(*NewInstance)
	if !ok {
		t.Fatalf("got %T, want *NewInstance", assign.Rv)
	}
	if len(ni.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(ni.Args))
	}
}

func TestParseDottedCallIsMethodCall(t *testing.T) {
	program := parseSource(t, "x = a.b.greet(1, 2)\n")
	assign := program.Statements[0].(*Assignment)
	mc, ok := assign.Rv.(*MethodCall)
	if !ok {
		t.Fatalf("got %T, want *MethodCall", assign.Rv)
	}
	if mc.Method != "greet" {
		t.Fatalf("got method %q, want greet", mc.Method)
	}
	recv, ok := mc.Object.(*VariableValue)
	if !ok || len(recv.Ids) != 2 || recv.Ids[0] != "a" || recv.Ids[1] != "b" {
		t.Fatalf("got receiver %v, want a.b", mc.Object)
	}
	if len(mc.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(mc.Args))
	}
}

func TestParseFieldAssignment(t *testing.T) {
	program := parseSource(t, "self.v = 1\n")
	fa, ok := program.Statements[0].(*FieldAssignment)
	if !ok {
		t.Fatalf("got %T, want *FieldAssignment", program.Statements[0])
	}
	if fa.Field != "v" {
		t.Fatalf("got field %q, want v", fa.Field)
	}
	if fa.Object.Ids[0] != "self" {
		t.Fatalf("got object ids %v, want [self]", fa.Object.Ids)
	}
}

func TestParseClassWithParentResolvesParentPointer(t *testing.T) {
	program := parseSource(t, "class P:\n  def greet():\n    return 1\nclass C(P):\n  def f():\n    return 2\n")
	childDef := program.Statements[1].(*ClassDefinition)
	if childDef.Class.Parent == nil {
		t.Fatalf("expected C's parent to be resolved")
	}
	if childDef.Class.Parent.Name != "P" {
		t.Fatalf("got parent name %q, want P", childDef.Class.Parent.Name)
	}
	if childDef.Class.Parent.GetMethod("greet") == nil {
		t.Fatalf("resolved parent should expose its own methods")
	}
}

func TestParseUnknownBaseClassIsParseError(t *testing.T) {
	lex, err := NewLexer(strings.NewReader("class C(Missing):\n  def f():\n    return 1\n"))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	if _, err := ParseProgram(lex); err == nil {
		t.Fatalf("expected a ParseError for an unresolved base class")
	}
}

func TestParseStrBuiltinProducesStringifyExpr(t *testing.T) {
	program := parseSource(t, "x = str(1)\n")
	assign := program.Statements[0].(*Assignment)
	if _, ok := assign.Rv.(*StringifyExpr); !ok {
		t.Fatalf("got %T, want *StringifyExpr", assign.Rv)
	}
}

func TestParsePrintWithMultipleArgs(t *testing.T) {
	program := parseSource(t, "print 1, 2, 3\n")
	p, ok := program.Statements[0].(*Print)
	if !ok {
		t.Fatalf("got %T, want *Print", program.Statements[0])
	}
	if len(p.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(p.Args))
	}
}
