package mython

// IfElse runs IfBody when Condition is true, ElseBody (if present)
// otherwise, or yields the empty handle with no ElseBody (spec.md §4.4).
type IfElse struct {
	Condition Node
	IfBody    Node
	ElseBody  Node // nil if there is no else clause
}

func (n *IfElse) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	condResult, err := n.Condition.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if condResult.Returned {
		return condResult, nil
	}
	cond, err := IsTrue(condResult.Value)
	if err != nil {
		return ExecResult{}, err
	}
	if cond {
		return n.IfBody.Execute(closure, ctx)
	}
	if n.ElseBody != nil {
		return n.ElseBody.Execute(closure, ctx)
	}
	return Normal(None()), nil
}

// Or short-circuits: true as soon as either side is truthy, and always
// normalizes to Bool rather than returning an operand's own value
// (spec.md §4.4 — unlike languages where or/and return an operand).
type Or struct{ Lhs, Rhs Node }

func (n *Or) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	lhsResult, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if lhsResult.Returned {
		return lhsResult, nil
	}
	lhsTrue, err := IsTrue(lhsResult.Value)
	if err != nil {
		return ExecResult{}, err
	}
	if lhsTrue {
		return Normal(OwnBool(true)), nil
	}

	rhsResult, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if rhsResult.Returned {
		return rhsResult, nil
	}
	rhsTrue, err := IsTrue(rhsResult.Value)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(OwnBool(rhsTrue)), nil
}

// And short-circuits: false as soon as either side is falsy.
type And struct{ Lhs, Rhs Node }

func (n *And) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	lhsResult, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if lhsResult.Returned {
		return lhsResult, nil
	}
	lhsTrue, err := IsTrue(lhsResult.Value)
	if err != nil {
		return ExecResult{}, err
	}
	if !lhsTrue {
		return Normal(OwnBool(false)), nil
	}

	rhsResult, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if rhsResult.Returned {
		return rhsResult, nil
	}
	rhsTrue, err := IsTrue(rhsResult.Value)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(OwnBool(rhsTrue)), nil
}

// Not negates its argument's truthiness, wrapped in Bool.
type Not struct{ Argument Node }

func (n *Not) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	result, err := n.Argument.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if result.Returned {
		return result, nil
	}
	truth, err := IsTrue(result.Value)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(OwnBool(!truth)), nil
}

// Comparator is one of the six comparison operators (spec.md §4.2,
// §4.4): Equal and Less are primitive; NotEqual, Greater, LessOrEqual,
// and GreaterOrEqual are all derived from them.
type Comparator func(lhs, rhs ObjectHandle, ctx *Context) (bool, error)

// Comparison applies Cmp to its evaluated operands and wraps the result
// in Bool.
type Comparison struct {
	Cmp      Comparator
	Lhs, Rhs Node
}

func (n *Comparison) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	lhs, rhs, early, err := evalOperands(n.Lhs, n.Rhs, closure, ctx)
	if err != nil || early != nil {
		return orZero(early), err
	}
	result, err := n.Cmp(lhs, rhs, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(OwnBool(result)), nil
}
