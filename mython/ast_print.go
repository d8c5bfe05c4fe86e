package mython

import "io"

// Print evaluates each argument left to right and writes them to the
// context's output stream, separated by single spaces and terminated
// by a newline (spec.md §4.4, §6). If an argument evaluates to a String
// whose value happens to match a name bound in the current scope, the
// *bound* object is printed instead of the literal string — a
// surprising, user-hostile quirk of the original source that spec.md
// §9 Open Questions flags but preserves.
type Print struct {
	Args []Node
}

func (n *Print) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	for i, arg := range n.Args {
		result, err := arg.Execute(closure, ctx)
		if err != nil {
			return ExecResult{}, err
		}
		if result.Returned {
			return result, nil
		}

		toPrint := result.Value
		if s, ok := result.Value.AsString(); ok {
			if bound, found := closure.Get(s); found {
				toPrint = bound
			}
		}

		text, err := Stringify(toPrint, ctx)
		if err != nil {
			return ExecResult{}, err
		}
		if _, err := io.WriteString(ctx.Out, text); err != nil {
			return ExecResult{}, err
		}
		if i != len(n.Args)-1 {
			if _, err := io.WriteString(ctx.Out, " "); err != nil {
				return ExecResult{}, err
			}
		}
	}
	if _, err := io.WriteString(ctx.Out, "\n"); err != nil {
		return ExecResult{}, err
	}
	return Normal(None()), nil
}

// StringifyExpr is the Stringify AST node (named to avoid clashing with
// the package-level Stringify helper it wraps): it converts its
// argument to its MiniLang string representation (spec.md §4.4).
type StringifyExpr struct {
	Argument Node
}

func (n *StringifyExpr) Execute(closure *Closure, ctx *Context) (ExecResult, error) {
	result, err := n.Argument.Execute(closure, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	if result.Returned {
		return result, nil
	}
	text, err := Stringify(result.Value, ctx)
	if err != nil {
		return ExecResult{}, err
	}
	return Normal(OwnString(text)), nil
}
