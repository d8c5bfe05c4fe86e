package mython

// Assignment evaluates Rv and binds Name to the resulting handle in the
// current scope, returning that handle (spec.md §4.4).
type Assignment struct {
	Name string
	Rv   Node
}

func (n *Assignment) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	result, err := n.Rv.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if result.Returned {
		return result, nil
	}
	closure.Set(n.Name, result.Value)
	return result, nil
}

// FieldAssignment evaluates Object to an instance and sets its Field to
// the evaluation of Rv (spec.md §4.4).
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	Rv     Node
}

func (n *FieldAssignment) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	objResult, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if objResult.Returned {
		return objResult, nil
	}
	inst, ok := objResult.Value.AsInstance()
	if !ok {
		return ExecResult{}, newRuntimeError("RuntimeError", "field assignment target is not an object")
	}

	rvResult, err := n.Rv.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if rvResult.Returned {
		return rvResult, nil
	}
	inst.Fields[n.Field] = rvResult.Value
	return rvResult, nil
}
