package mython

// Compound executes its children in order; the result of the overall
// node is always the empty handle — each child's result is discarded
// unless it signals Return, in which case Compound stops and propagates
// it upward unexamined (spec.md §3, §4.4).
type Compound struct {
	Statements []Node
}

func (n *Compound) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	for _, stmt := range n.Statements {
		if err := ctx.step(); err != nil {
			return ExecResult{}, err
		}
		result, err := stmt.Execute(closure, ctx)
		if err != nil {
			return ExecResult{}, err
		}
		if result.Returned {
			return result, nil
		}
	}
	return Normal(None()), nil
}

// Return evaluates Argument and turns the result into a Return signal
// that unwinds to the nearest enclosing MethodBody (spec.md §4.4, §9).
// Every method body a parsed program can produce is wrapped in a
// MethodBody node, so a Return signal never escapes past the method it
// was written in; a top-level Return (outside any method) simply makes
// Compound stop early, same as reaching the end of the program.
type Return struct {
	Argument Node
}

func (n *Return) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	result, err := n.Argument.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	return Returning(result.Value), nil
}

// MethodBody wraps a method's statement body and catches the Return
// signal any nested Return produces: if the body completes normally,
// MethodBody yields the empty handle; if it returns, MethodBody yields
// the returned value as an ordinary (non-returning) result, since the
// signal stops here (spec.md §4.4).
type MethodBody struct {
	Body Node
}

func (n *MethodBody) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	result, err := n.Body.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if result.Returned {
		return Normal(result.Value), nil
	}
	return Normal(None()), nil
}

// ClassDefinition binds Class by its own name in the current scope
// (spec.md §4.4).
type ClassDefinition struct {
	Class *Class
}

func (n *ClassDefinition) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	handle := OwnClass(n.Class)
	closure.Set(n.Class.Name, handle)
	return Normal(handle), nil
}

// NewInstance allocates a ClassInstance referencing ClassExpr's class
// and, if Args are present and the class has a matching __init__,
// invokes it on the new instance before returning a handle to it
// (spec.md §4.4).
type NewInstance struct {
	ClassExpr Node // evaluates to a Class handle
	Args      []Node
	HasArgs   bool
	Pos       Position
}

func (n *NewInstance) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	classResult, err := n.ClassExpr.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if classResult.Returned {
		return classResult, nil
	}
	cls, ok := classResult.Value.AsClass()
	if !ok {
		return ExecResult{}, newRuntimeError("RuntimeError", "cannot construct a non-class value")
	}

	instance := NewClassInstance(cls)

	if n.HasArgs && cls.HasMethod(methodInit, len(n.Args)) {
		args := make([]ObjectHandle, len(n.Args))
		for i, argNode := range n.Args {
			argResult, err := argNode.Execute(closure, ctx)
			if err != nil {
				return ExecResult{}, err
			}
			if argResult.Returned {
				return argResult, nil
			}
			args[i] = argResult.Value
		}
		if _, err := instance.Call(ctx, methodInit, args, n.Pos); err != nil {
			return ExecResult{}, err
		}
	}

	return Normal(ShareInstance(instance)), nil
}

const methodInit = "__init__"

// MethodCall evaluates Object to a ClassInstance, evaluates Args left
// to right, and dispatches Method on the instance (spec.md §4.4).
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
	Pos    Position
}

func (n *MethodCall) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	objResult, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if objResult.Returned {
		return objResult, nil
	}
	inst, ok := objResult.Value.AsInstance()
	if !ok {
		return ExecResult{}, newRuntimeError("RuntimeError", "%s called on a non-object", n.Method)
	}

	args := make([]ObjectHandle, len(n.Args))
	for i, argNode := range n.Args {
		argResult, err := argNode.Execute(closure, ctx)
		if err != nil {
			return ExecResult{}, err
		}
		if argResult.Returned {
			return argResult, nil
		}
		args[i] = argResult.Value
	}

	if ctx.Trace != nil {
		ctx.Trace(n.Method, n.Pos)
	}
	result, err := inst.Call(ctx, n.Method, args, n.Pos)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(result), nil
}
