package mython

// Add evaluates Lhs and Rhs and combines them (spec.md §4.4): if Lhs is
// a ClassInstance exposing __add__/1, dispatch to it; else two strings
// concatenate; else two numbers sum; anything else is a RuntimeError.
type Add struct {
	Lhs, Rhs Node
}

func (n *Add) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	lhs, rhs, early, err := evalOperands(n.Lhs, n.Rhs, closure, ctx)
	if err != nil || early != nil {
		return orZero(early), err
	}

	if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod(methodAdd, 1) {
		v, err := inst.Call(ctx, methodAdd, []ObjectHandle{rhs}, Position{})
		if err != nil {
			return ExecResult{}, err
		}
		return Normal(v), nil
	}
	if a, ok := lhs.AsString(); ok {
		if b, ok := rhs.AsString(); ok {
			return Normal(OwnString(a + b)), nil
		}
	}
	if a, ok := lhs.AsNumber(); ok {
		if b, ok := rhs.AsNumber(); ok {
			return Normal(OwnNumber(a + b)), nil
		}
	}
	return ExecResult{}, newRuntimeError("RuntimeError", "the add operation cannot be performed")
}

// Sub, Mult, and Div all require two Numbers (spec.md §4.4); Div
// additionally rejects a zero divisor, and all three use truncated
// (Go's native) integer division/arithmetic.

type Sub struct{ Lhs, Rhs Node }

func (n *Sub) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	a, b, early, err := evalNumericOperands(n.Lhs, n.Rhs, closure, ctx)
	if err != nil || early != nil {
		return orZero(early), err
	}
	return Normal(OwnNumber(a - b)), nil
}

type Mult struct{ Lhs, Rhs Node }

func (n *Mult) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	a, b, early, err := evalNumericOperands(n.Lhs, n.Rhs, closure, ctx)
	if err != nil || early != nil {
		return orZero(early), err
	}
	return Normal(OwnNumber(a * b)), nil
}

type Div struct{ Lhs, Rhs Node }

func (n *Div) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	a, b, early, err := evalNumericOperands(n.Lhs, n.Rhs, closure, ctx)
	if err != nil || early != nil {
		return orZero(early), err
	}
	if b == 0 {
		return ExecResult{}, newRuntimeError("RuntimeError", "you can't divide by zero")
	}
	return Normal(OwnNumber(a / b)), nil
}

// evalOperands evaluates lhs then rhs. early is non-nil when either
// side produced a Return signal that the caller must propagate
// unexamined instead of combining operands.
func evalOperands(lhsNode, rhsNode Node, closure *Closure, ctx *Context) (lhs, rhs ObjectHandle, early *ExecResult, err error) {
	lhsResult, err := lhsNode.Execute(closure, ctx)
	if err != nil {
		return ObjectHandle{}, ObjectHandle{}, nil, err
	}
	if lhsResult.Returned {
		return ObjectHandle{}, ObjectHandle{}, &lhsResult, nil
	}
	rhsResult, err := rhsNode.Execute(closure, ctx)
	if err != nil {
		return ObjectHandle{}, ObjectHandle{}, nil, err
	}
	if rhsResult.Returned {
		return ObjectHandle{}, ObjectHandle{}, &rhsResult, nil
	}
	return lhsResult.Value, rhsResult.Value, nil, nil
}

// evalNumericOperands wraps evalOperands with the Number/Number check
// Sub, Mult, and Div all need.
func evalNumericOperands(lhsNode, rhsNode Node, closure *Closure, ctx *Context) (a, b int64, early *ExecResult, err error) {
	lhs, rhs, early, err := evalOperands(lhsNode, rhsNode, closure, ctx)
	if err != nil || early != nil {
		return 0, 0, early, err
	}
	a, ok := lhs.AsNumber()
	if !ok {
		return 0, 0, nil, newRuntimeError("RuntimeError", "arguments is not a number")
	}
	b, ok = rhs.AsNumber()
	if !ok {
		return 0, 0, nil, newRuntimeError("RuntimeError", "arguments is not a number")
	}
	return a, b, nil, nil
}

func orZero(early *ExecResult) ExecResult {
	if early == nil {
		return ExecResult{}
	}
	return *early
}
