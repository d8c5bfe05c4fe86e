package mython

// AsNumber is MiniLang's TryAs<Number>(): it returns the held int64 and
// true if h currently holds a Number, else (0, false).
func (h ObjectHandle) AsNumber() (int64, bool) {
	if h.kind != KindNumber {
		return 0, false
	}
	return h.data.(int64), true
}

// AsBool is TryAs<Bool>().
func (h ObjectHandle) AsBool() (bool, bool) {
	if h.kind != KindBool {
		return false, false
	}
	return h.data.(bool), true
}

// AsString is TryAs<String>().
func (h ObjectHandle) AsString() (string, bool) {
	if h.kind != KindString {
		return "", false
	}
	return h.data.(string), true
}

// AsClass is TryAs<Class>().
func (h ObjectHandle) AsClass() (*Class, bool) {
	if h.kind != KindClass {
		return nil, false
	}
	return h.data.(*Class), true
}

// AsInstance is TryAs<ClassInstance>().
func (h ObjectHandle) AsInstance() (*ClassInstance, bool) {
	if h.kind != KindInstance {
		return nil, false
	}
	return h.data.(*ClassInstance), true
}
