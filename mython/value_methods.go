package mython

import "strconv"

const (
	methodStr = "__str__"
	methodEq  = "__eq__"
	methodLt  = "__lt__"
	methodAdd = "__add__"
)

// IsTrue implements MiniLang truthiness (spec.md §4.2): the empty
// handle is false; a Number is true iff non-zero; a Bool is its own
// value; a String is true iff non-empty; any Class or ClassInstance is
// false. Every other case — none exist today, but the check stays
// total — is a RuntimeError.
func IsTrue(h ObjectHandle) (bool, error) {
	switch h.Kind() {
	case KindNone:
		return false, nil
	case KindNumber:
		n, _ := h.AsNumber()
		return n != 0, nil
	case KindBool:
		b, _ := h.AsBool()
		return b, nil
	case KindString:
		s, _ := h.AsString()
		return s != "", nil
	case KindClass, KindInstance:
		return false, nil
	default:
		return false, newRuntimeError("RuntimeError", "error converting to the bool type")
	}
}

// Equal implements MiniLang equality (spec.md §4.2): both-empty is
// true; same-typed numbers/strings/bools compare by value; a
// ClassInstance exposing __eq__/1 delegates to it; anything else fails.
func Equal(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	if a, ok := lhs.AsNumber(); ok {
		if b, ok := rhs.AsNumber(); ok {
			return a == b, nil
		}
	}
	if a, ok := lhs.AsString(); ok {
		if b, ok := rhs.AsString(); ok {
			return a == b, nil
		}
	}
	if a, ok := lhs.AsBool(); ok {
		if b, ok := rhs.AsBool(); ok {
			return a == b, nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod(methodEq, 1) {
		result, err := inst.Call(ctx, methodEq, []ObjectHandle{rhs}, Position{})
		if err != nil {
			return false, err
		}
		return IsTrue(result)
	}
	return false, newRuntimeError("RuntimeError", "cannot compare objects for equality")
}

// Less implements MiniLang's natural ordering (spec.md §4.2): same-typed
// numbers/strings/bools compare with their natural order; otherwise a
// ClassInstance exposing __lt__/1 is delegated to; anything else fails.
func Less(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	if a, ok := lhs.AsNumber(); ok {
		if b, ok := rhs.AsNumber(); ok {
			return a < b, nil
		}
	}
	if a, ok := lhs.AsString(); ok {
		if b, ok := rhs.AsString(); ok {
			return a < b, nil
		}
	}
	if a, ok := lhs.AsBool(); ok {
		if b, ok := rhs.AsBool(); ok {
			return !a && b, nil
		}
	}
	if inst, ok := lhs.AsInstance(); ok && inst.Class.HasMethod(methodLt, 1) {
		result, err := inst.Call(ctx, methodLt, []ObjectHandle{rhs}, Position{})
		if err != nil {
			return false, err
		}
		return IsTrue(result)
	}
	return false, newRuntimeError("RuntimeError", "cannot compare objects for less")
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are all derived
// from Equal and Less, exactly as spec.md §4.2 defines them.

func NotEqual(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	neq, err := NotEqual(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less && neq, nil
}

func LessOrEqual(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs ObjectHandle, ctx *Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}

// Stringify renders h the way Print and the Stringify AST node do
// (spec.md §4.4): empty -> "None"; a ClassInstance with __str__/0 calls
// it and captures its rendering; a ClassInstance without __str__ falls
// back to an implementation-defined identifier; String copies its
// value; Bool renders as "True"/"False"; Number renders in decimal.
// Anything else has no string representation and is a RuntimeError.
func Stringify(h ObjectHandle, ctx *Context) (string, error) {
	if h.IsEmpty() {
		return "None", nil
	}
	if inst, ok := h.AsInstance(); ok {
		if inst.Class.HasMethod(methodStr, 0) {
			result, err := inst.Call(ctx, methodStr, nil, Position{})
			if err != nil {
				return "", err
			}
			return Stringify(result, ctx)
		}
		return inst.defaultString(), nil
	}
	if s, ok := h.AsString(); ok {
		return s, nil
	}
	if b, ok := h.AsBool(); ok {
		if b {
			return "True", nil
		}
		return "False", nil
	}
	if n, ok := h.AsNumber(); ok {
		return strconv.FormatInt(n, 10), nil
	}
	return "", newRuntimeError("RuntimeError", "there is no string representation")
}
