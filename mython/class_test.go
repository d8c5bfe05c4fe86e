package mython

import "testing"

func TestClassGetMethodFindsOwnMethod(t *testing.T) {
	m := &Method{Name: "greet", FormalParams: nil, Body: &MethodBody{Body: &Compound{}}}
	cls := NewClass("A", []*Method{m}, nil)
	if got := cls.GetMethod("greet"); got != m {
		t.Fatalf("GetMethod did not find the class's own method")
	}
}

func TestClassGetMethodSearchesParentChain(t *testing.T) {
	base := &Method{Name: "greet", FormalParams: nil, Body: &MethodBody{Body: &Compound{}}}
	parent := NewClass("Base", []*Method{base}, nil)
	child := NewClass("Child", nil, parent)

	if got := child.GetMethod("greet"); got != base {
		t.Fatalf("GetMethod should find an inherited method on the parent")
	}
	if got := child.GetMethod("missing"); got != nil {
		t.Fatalf("GetMethod should return nil for an undefined method, got %v", got)
	}
}

func TestClassHasMethodChecksArity(t *testing.T) {
	m := &Method{Name: "set", FormalParams: []string{"v"}, Body: &MethodBody{Body: &Compound{}}}
	cls := NewClass("A", []*Method{m}, nil)

	if !cls.HasMethod("set", 1) {
		t.Fatalf("HasMethod(set, 1) should be true")
	}
	if cls.HasMethod("set", 0) {
		t.Fatalf("HasMethod(set, 0) should be false: arity mismatch")
	}
	if cls.HasMethod("unset", 1) {
		t.Fatalf("HasMethod(unset, 1) should be false: no such method")
	}
}

func TestNewClassInstanceStartsWithNoFields(t *testing.T) {
	cls := NewClass("A", nil, nil)
	inst := NewClassInstance(cls)
	if len(inst.Fields) != 0 {
		t.Fatalf("a fresh instance should have no fields, got %v", inst.Fields)
	}
}

func TestCallBindsSelfAndFormalParams(t *testing.T) {
	// def set(v): self.v = v
	method := &Method{
		Name:         "set",
		FormalParams: []string{"v"},
		Body: &MethodBody{Body: &Compound{Statements: []Node{
			&FieldAssignment{
				Object: &VariableValue{Ids: []string{"self"}},
				Field:  "v",
				Rv:     &VariableValue{Ids: []string{"v"}},
			},
		}}},
	}
	cls := NewClass("A", []*Method{method}, nil)
	inst := NewClassInstance(cls)
	ctx := NewContext(nil)

	if _, err := inst.Call(ctx, "set", []ObjectHandle{OwnNumber(7)}, Position{Line: 3}); err != nil {
		t.Fatalf("Call returned an error: %v", err)
	}
	got, ok := inst.Fields["v"].AsNumber()
	if !ok || got != 7 {
		t.Fatalf("got field v = (%d, %v), want (7, true)", got, ok)
	}
}

func TestCallReturnsErrorOnArityMismatch(t *testing.T) {
	method := &Method{Name: "set", FormalParams: []string{"v"}, Body: &MethodBody{Body: &Compound{}}}
	cls := NewClass("A", []*Method{method}, nil)
	inst := NewClassInstance(cls)
	ctx := NewContext(nil)

	if _, err := inst.Call(ctx, "set", nil, Position{}); err == nil {
		t.Fatalf("expected an error calling set/1 with zero arguments")
	}
}

func TestCallReturnsErrorForUnknownMethod(t *testing.T) {
	cls := NewClass("A", nil, nil)
	inst := NewClassInstance(cls)
	ctx := NewContext(nil)

	if _, err := inst.Call(ctx, "missing", nil, Position{}); err == nil {
		t.Fatalf("expected an error calling an undefined method")
	}
}

func TestCallRecordsCallSitePositionOnFrame(t *testing.T) {
	// def fail(): return 1 / 0
	method := &Method{
		Name: "fail",
		Body: &MethodBody{Body: &Compound{Statements: []Node{
			&Return{Argument: &Div{Lhs: &NumericConst{Value: 1}, Rhs: &NumericConst{Value: 0}}},
		}}},
	}
	cls := NewClass("A", []*Method{method}, nil)
	inst := NewClassInstance(cls)
	ctx := NewContext(nil)

	_, err := inst.Call(ctx, "fail", nil, Position{Line: 42})
	if err == nil {
		t.Fatalf("expected a RuntimeError dividing by zero")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got error type %T, want *RuntimeError", err)
	}
	if len(re.Frames) != 1 || re.Frames[0].Pos.Line != 42 {
		t.Fatalf("got frames %v, want one frame with Pos.Line == 42", re.Frames)
	}
}

func TestCallCatchesReturnInsideMethodBody(t *testing.T) {
	// def get(): return 99
	method := &Method{
		Name: "get",
		Body: &MethodBody{Body: &Compound{Statements: []Node{
			&Return{Argument: &NumericConst{Value: 99}},
		}}},
	}
	cls := NewClass("A", []*Method{method}, nil)
	inst := NewClassInstance(cls)
	ctx := NewContext(nil)

	result, err := inst.Call(ctx, "get", nil, Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := result.AsNumber()
	if !ok || got != 99 {
		t.Fatalf("got (%d, %v), want (99, true)", got, ok)
	}
}
