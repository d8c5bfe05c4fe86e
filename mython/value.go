package mython

// ObjectKind discriminates the variants an ObjectHandle can hold.
type ObjectKind int

const (
	// KindNone is the zero value, so an empty ObjectHandle{} already
	// represents None without any constructor call.
	KindNone ObjectKind = iota
	KindNumber
	KindBool
	KindString
	KindClass
	KindInstance
)

func (k ObjectKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindClass:
		return "Class"
	case KindInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// ObjectHandle is a shared handle to a runtime Object (spec.md §3, §4.2,
// GLOSSARY). The C++ original distinguishes an *owning* handle (which
// allocates and frees its referent) from a *non-owning/shared* handle
// (which aliases storage owned elsewhere, used for passing self without
// tying its lifetime to the call) to avoid reference-count cycles. Go's
// garbage collector makes that distinction unnecessary for memory
// safety, but the two constructors are kept — Own and Share — because
// they document intent at each call site exactly as the spec's API
// does: Own marks "this call allocates a fresh value", Share marks
// "this call aliases a value someone else owns".
//
// data holds the payload for the active Kind: nil for KindNone,
// int64 for KindNumber, bool for KindBool, string for KindString,
// *Class for KindClass, *ClassInstance for KindInstance.
type ObjectHandle struct {
	kind ObjectKind
	data any
}

// None returns the empty handle, representing the absence of a value.
func None() ObjectHandle { return ObjectHandle{} }

// OwnNumber allocates a handle to a fresh Number object.
func OwnNumber(v int64) ObjectHandle { return ObjectHandle{kind: KindNumber, data: v} }

// OwnBool allocates a handle to a fresh Bool object.
func OwnBool(v bool) ObjectHandle { return ObjectHandle{kind: KindBool, data: v} }

// OwnString allocates a handle to a fresh String object.
func OwnString(v string) ObjectHandle { return ObjectHandle{kind: KindString, data: v} }

// OwnClass allocates a handle to a Class, used when a ClassDefinition
// binds its name in the enclosing scope.
func OwnClass(c *Class) ObjectHandle { return ObjectHandle{kind: KindClass, data: c} }

// ShareInstance returns a handle aliasing an existing ClassInstance's
// storage — the mode used for self, and for the instance produced by
// NewInstance (the instance's storage is owned by the heap, and every
// handle to it, including self inside its own methods, is a Share).
func ShareInstance(inst *ClassInstance) ObjectHandle {
	return ObjectHandle{kind: KindInstance, data: inst}
}

// Kind reports the handle's active variant.
func (h ObjectHandle) Kind() ObjectKind { return h.kind }

// IsEmpty reports whether h is the empty (None) handle.
func (h ObjectHandle) IsEmpty() bool { return h.kind == KindNone }
