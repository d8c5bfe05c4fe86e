package mython

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	engine := NewEngine(Config{})
	err := engine.Run(context.Background(), source, &out)
	return out.String(), err
}

func TestEndToEndAddsIntegers(t *testing.T) {
	out, err := runSource(t, "print 1 + 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestEndToEndConcatenatesStrings(t *testing.T) {
	out, err := runSource(t, `print "a" + "b"`+"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ab\n" {
		t.Fatalf("got %q, want %q", out, "ab\n")
	}
}

func TestEndToEndIfElseTakesTrueBranch(t *testing.T) {
	src := "x = 10\nif x > 0:\n  print \"pos\"\nelse:\n  print \"neg\"\n"
	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "pos\n" {
		t.Fatalf("got %q, want %q", out, "pos\n")
	}
}

func TestEndToEndConstructorAndStr(t *testing.T) {
	src := "" +
		"class A:\n" +
		"  def __init__(v):\n" +
		"    self.v = v\n" +
		"  def __str__():\n" +
		"    return self.v\n" +
		"a = A(\"hi\")\n" +
		"print a\n"
	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\n" {
		t.Fatalf("got %q, want %q", out, "hi\n")
	}
}

func TestEndToEndMethodResolutionWalksParentChain(t *testing.T) {
	src := "" +
		"class P:\n" +
		"  def greet():\n" +
		"    return \"hi\"\n" +
		"class C(P):\n" +
		"  def __init__():\n" +
		"    self.x = 1\n" +
		"c = C()\n" +
		"print c.greet()\n"
	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi\n" {
		t.Fatalf("got %q, want %q", out, "hi\n")
	}
}

func TestEndToEndPrintNone(t *testing.T) {
	out, err := runSource(t, "print None\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "None\n" {
		t.Fatalf("got %q, want %q", out, "None\n")
	}
}

func TestEndToEndBooleanAndComparisonPrecedence(t *testing.T) {
	out, err := runSource(t, "print 1 == 1 and 2 < 3\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "True\n" {
		t.Fatalf("got %q, want %q", out, "True\n")
	}
}

func TestEndToEndDivisionByZeroIsRuntimeError(t *testing.T) {
	out, err := runSource(t, "print 1 / 0\n")
	if err == nil {
		t.Fatalf("expected a runtime error dividing by zero")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got error type %T, want *RuntimeError", err)
	}
	if out != "" {
		t.Fatalf("expected no output before the error, got %q", out)
	}
}

func TestStepQuotaAbortsLongRunningProgram(t *testing.T) {
	var out bytes.Buffer
	engine := NewEngine(Config{StepQuota: 2})
	src := "print 1\nprint 2\nprint 3\nprint 4\n"
	err := engine.Run(context.Background(), src, &out)
	if err == nil {
		t.Fatalf("expected the step quota to abort execution")
	}
}

func TestRecursionLimitAbortsDeepMethodCalls(t *testing.T) {
	var out bytes.Buffer
	engine := NewEngine(Config{RecursionLimit: 2})
	src := "" +
		"class A:\n" +
		"  def loop():\n" +
		"    return self.loop()\n" +
		"a = A()\n" +
		"print a.loop()\n"
	err := engine.Run(context.Background(), src, &out)
	if err == nil {
		t.Fatalf("expected the recursion limit to abort execution")
	}
}

func TestRuntimeErrorKeepsEveryFrameThroughNestedCalls(t *testing.T) {
	var out bytes.Buffer
	const limit = runtimeErrorFrameHead + runtimeErrorFrameTail + 4
	engine := NewEngine(Config{RecursionLimit: limit})
	src := "" +
		"class A:\n" +
		"  def loop():\n" +
		"    return self.loop()\n" +
		"a = A()\n" +
		"print a.loop()\n"
	err := engine.Run(context.Background(), src, &out)
	if err == nil {
		t.Fatalf("expected the recursion limit to surface a RuntimeError")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got error type %T, want *RuntimeError", err)
	}
	if len(re.Frames) != limit {
		t.Fatalf("got %d frames, want exactly %d: withFrames must capture the stack at the point of origin, not re-stamp a shrinking slice at every level it unwinds through", len(re.Frames), limit)
	}
}

func TestRuntimeErrorFromRealMethodCallCarriesLineNumbers(t *testing.T) {
	src := "" +
		"class A:\n" +
		"  def fail():\n" +
		"    return 1 / 0\n" +
		"a = A()\n" +
		"print a.fail()\n"
	_, err := runSource(t, src)
	if err == nil {
		t.Fatalf("expected a RuntimeError dividing by zero")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got error type %T, want *RuntimeError", err)
	}
	if len(re.Frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(re.Frames))
	}
	if re.Frames[0].Pos.Line != 5 {
		t.Fatalf("got frame line %d, want 5 (the real a.fail() call site)", re.Frames[0].Pos.Line)
	}
	if !strings.Contains(err.Error(), "line 5") {
		t.Fatalf("expected the rendered error to include the call-site line, got %q", err.Error())
	}
}

func TestCompileSurfacesParseErrorWithoutExecuting(t *testing.T) {
	engine := NewEngine(Config{})
	if _, err := engine.Compile("print\n  1\n"); err == nil {
		t.Fatalf("expected a ParseError for an indented line following a bare print")
	}
}
