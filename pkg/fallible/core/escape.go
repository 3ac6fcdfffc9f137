package core

// Escape carries a failure payload from a Propagate call back to the
// nearest enclosing boundary. It exists only while the stack unwinds;
// a boundary that recovers one must consume it unconditionally.
type Escape struct {
	Err error
}

// IsEscape reports whether a recovered panic value is a propagation escape.
func IsEscape(v any) (*Escape, bool) {
	esc, ok := v.(*Escape)
	return esc, ok
}
