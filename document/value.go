package document

// Document maps field names to raw values, shaped according to a schema's
// raw-type derivation.
type Document map[string]Value

type valueState int

const (
	stateAbsent valueState = iota
	stateString
	stateNested
)

// Value is a single raw field value: a string leaf, a nested document, or an
// absence. The zero Value is absent.
type Value struct {
	state valueState
	str   string
	doc   Document
}

// String wraps a string leaf.
func String(s string) Value {
	return Value{state: stateString, str: s}
}

// Nested wraps a nested document.
func Nested(doc Document) Value {
	return Value{state: stateNested, doc: doc}
}

// Absent returns the absence marker.
func Absent() Value {
	return Value{}
}

// IsAbsent reports whether the value is the absence marker.
func (v Value) IsAbsent() bool {
	return v.state == stateAbsent
}

// AsString returns the string leaf, if the value is one.
func (v Value) AsString() (string, bool) {
	return v.str, v.state == stateString
}

// AsDocument returns the nested document, if the value is one.
func (v Value) AsDocument() (Document, bool) {
	return v.doc, v.state == stateNested
}
