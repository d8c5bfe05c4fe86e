package mython

import "fmt"

// Method is a MiniLang method definition: its name, the names of its
// formal parameters (not including self, which is bound implicitly at
// call time), and its body.
type Method struct {
	Name         string
	FormalParams []string
	Body         *MethodBody
}

// Class is a MiniLang class: a name, an optional parent for single
// inheritance, and a method table. Methods are looked up at every call
// rather than bound at class-creation time (spec.md §4.3), so a Parent
// replaced after construction is seen by later lookups. The name index
// is built once by NewClass: methods appended to Methods afterwards are
// not found by GetMethod.
type Class struct {
	Name    string
	Parent  *Class
	Methods []*Method

	index map[string]*Method
}

// NewClass builds a Class and its name->Method index.
func NewClass(name string, methods []*Method, parent *Class) *Class {
	c := &Class{Name: name, Parent: parent, Methods: methods}
	c.index = make(map[string]*Method, len(methods))
	for _, m := range methods {
		c.index[m.Name] = m
	}
	return c
}

// GetMethod searches the class's own method table and, on a miss,
// recurses up the parent chain, returning nil if no ancestor defines
// the method either.
func (c *Class) GetMethod(name string) *Method {
	if m, ok := c.index[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// HasMethod combines lookup with an arity check: the method must exist
// and take exactly argc formal parameters.
func (c *Class) HasMethod(name string, argc int) bool {
	m := c.GetMethod(name)
	return m != nil && len(m.FormalParams) == argc
}

// ClassInstance is a MiniLang object: a reference to the Class that
// created it plus its own field map. Its Class pointer stays valid for
// the instance's whole lifetime because the top-level Compound owns
// every ClassDefinition for as long as execution runs (spec.md §3, §9).
type ClassInstance struct {
	Class  *Class
	Fields map[string]ObjectHandle
}

// NewClassInstance allocates a fresh, fieldless instance of cls.
func NewClassInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: make(map[string]ObjectHandle)}
}

// defaultString is the implementation-defined fallback Stringify uses
// for an instance with no __str__: an address-like identifier, stable
// for the instance's lifetime and distinct across instances.
func (inst *ClassInstance) defaultString() string {
	return fmt.Sprintf("<%s object at %p>", inst.Class.Name, inst)
}

// Call dispatches a method by name on inst: it looks the method up via
// the class's (inheritance-aware) table, checks arity, builds a fresh
// Closure containing self (bound via ShareInstance — self's lifetime is
// the caller's instance, not this call's) plus the actual arguments
// bound to the formal parameter names in declaration order, then
// executes the method body. A Return inside the body is caught by the
// MethodBody node itself; Call never sees a "returned" signal escape.
// pos is the call site's source position, recorded on the pushed Frame
// so a RuntimeError's rendered call stack carries line numbers.
func (inst *ClassInstance) Call(ctx *Context, name string, args []ObjectHandle, pos Position) (ObjectHandle, error) {
	if !inst.Class.HasMethod(name, len(args)) {
		return None(), newRuntimeError("RuntimeError", "%s has no method %s/%d", inst.Class.Name, name, len(args))
	}
	method := inst.Class.GetMethod(name)

	closure := NewClosure()
	closure.Set("self", ShareInstance(inst))
	for i, param := range method.FormalParams {
		closure.Set(param, args[i])
	}

	if err := ctx.enterMethod(name, pos); err != nil {
		return None(), err
	}
	defer ctx.leaveMethod()

	result, err := method.Body.Execute(closure, ctx)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok {
			return None(), re.withFrames(ctx.frames)
		}
		return None(), err
	}
	return result.Value, nil
}
