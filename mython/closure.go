package mython

// Closure is MiniLang's scope: a flat mapping from identifier to
// ObjectHandle (GLOSSARY). There is no parent-pointer chain — every
// method invocation gets a brand-new Closure holding only self and its
// parameters, so a method body cannot see module-level names unless
// they were passed in as arguments. This is an unusual, non-lexical
// choice, but it's the one the original Mython source makes (spec.md
// §9 Open Questions) and this implementation preserves it rather than
// "fixing" it.
type Closure struct {
	values map[string]ObjectHandle
}

// NewClosure returns an empty Closure.
func NewClosure() *Closure {
	return &Closure{values: make(map[string]ObjectHandle)}
}

// Get looks up name, reporting whether it is bound.
func (c *Closure) Get(name string) (ObjectHandle, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (c *Closure) Set(name string, v ObjectHandle) {
	c.values[name] = v
}
