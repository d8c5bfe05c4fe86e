package mython

// NumericConst is an integer literal.
type NumericConst struct {
	Value int64
}

func (n *NumericConst) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	return Normal(OwnNumber(n.Value)), nil
}

// StringConst is a string literal.
type StringConst struct {
	Value string
}

func (n *StringConst) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	return Normal(OwnString(n.Value)), nil
}

// BoolConst is a True/False literal.
type BoolConst struct {
	Value bool
}

func (n *BoolConst) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	return Normal(OwnBool(n.Value)), nil
}

// NoneConst is the None literal.
type NoneConst struct{}

func (n *NoneConst) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	return Normal(None()), nil
}

// VariableValue reads a dotted identifier chain: ids[0] is looked up in
// the current scope, and each further id_k reads a field of the
// ClassInstance the previous step produced (spec.md §4.4). A chain of
// length 1 is a plain variable read.
type VariableValue struct {
	Ids []string
	Pos Position
}

func (n *VariableValue) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	value, ok := closure.Get(n.Ids[0])
	if !ok {
		return ExecResult{}, newRuntimeError("RuntimeError", "name %q is not defined", n.Ids[0])
	}
	for _, field := range n.Ids[1:] {
		inst, ok := value.AsInstance()
		if !ok {
			return ExecResult{}, newRuntimeError("RuntimeError", "%q has no fields", field)
		}
		value, ok = inst.Fields[field]
		if !ok {
			return ExecResult{}, newRuntimeError("RuntimeError", "%s has no field %q", inst.Class.Name, field)
		}
	}
	return Normal(value), nil
}
