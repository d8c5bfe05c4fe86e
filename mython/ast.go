package mython

// Node is the single operation every AST node implements: Execute runs
// the node against a scope and an execution context and produces a
// result (spec.md §3). The result is an ExecResult rather than a bare
// ObjectHandle so that Return's non-local exit can be threaded through
// ordinary Go control flow instead of panics (spec.md §9 Design Notes):
// conceptually Node still exposes one operation, Execute, just with a
// Go-idiomatic signature that separates "produced a value" from
// "produced a value and is unwinding to the nearest MethodBody".
type Node interface {
	Execute(closure *Closure, ctx *Context) (ExecResult, error)
}

// ExecResult is the non-local-return signal. Normal results carry
// Returned == false; a Return statement anywhere inside a method body
// produces Returned == true, which every Compound/IfElse/etc. node must
// propagate upward unexamined until MethodBody catches it and unwraps
// the value (spec.md §4.4, §9).
type ExecResult struct {
	Value    ObjectHandle
	Returned bool
}

// Normal wraps v as a non-returning result.
func Normal(v ObjectHandle) ExecResult { return ExecResult{Value: v} }

// Returning wraps v as a Return signal.
func Returning(v ObjectHandle) ExecResult { return ExecResult{Value: v, Returned: true} }
