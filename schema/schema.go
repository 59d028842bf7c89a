package schema

import "reflect"

// RawString is the raw type derived for every primitive field: the external
// deserializer populates such fields as plain strings.
const RawString = "string"

// Field describes a single field of a configuration type.
type Field struct {
	// Name is the key under which the field appears in a raw document.
	Name string
	// Kind is the target type the field is parsed into.
	Kind Kind
	// Optional marks fields whose absence is a valid state.
	Optional bool
	// Secret suppresses the field's values in diagnostics and errors.
	Secret bool
	// RawType overrides the derived raw type. Required for non-primitive
	// kinds, forbidden as "string" on primitives.
	RawType string
	// Nested is the schema of the field's target when Kind is KindNested.
	Nested *Schema

	// Index and Type bind the field to a Go struct field. They are set by
	// Infer; hand-built schemas carry Index -1 and a nil Type.
	Index int
	Type  reflect.Type
}

// rawType derives the raw representation type for the field, or reports the
// definition-time misuse.
func (f Field) rawType() (string, error) {
	if f.RawType == "" {
		if f.Kind.IsPrimitive() {
			return RawString, nil
		}
		return "", ErrUnresolvedRawType
	}
	if f.RawType == RawString && f.Kind.IsPrimitive() {
		return "", ErrRedundantAnnotation
	}
	return f.RawType, nil
}

// Schema is an immutable, ordered description of a configuration type's
// fields. Construct with New or Infer; both derive and cache the raw type of
// every field, so a constructed Schema is guaranteed well-formed and may be
// shared read-only across goroutines.
type Schema struct {
	name     string
	fields   []Field
	rawTypes []string
}

// New builds a schema for hand-declared fields, deriving every field's raw
// type. Fields keep their declaration order. Returns a *DefinitionError when
// a field's raw type cannot be derived or is redundantly annotated.
func New(name string, fields []Field) (*Schema, error) {
	s := &Schema{
		name:     name,
		fields:   make([]Field, len(fields)),
		rawTypes: make([]string, len(fields)),
	}
	for i, f := range fields {
		raw, err := f.rawType()
		if err != nil {
			return nil, &DefinitionError{Type: name, Field: f.Name, Err: err}
		}
		if f.Type == nil {
			f.Index = -1
		}
		s.fields[i] = f
		s.rawTypes[i] = raw
	}
	return s, nil
}

// MustNew is New, panicking on definition errors. Intended for package-level
// schema declarations where a misdeclared field should fail startup.
func MustNew(name string, fields []Field) *Schema {
	s, err := New(name, fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of the described type.
func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns a defensive copy of the field descriptions in declaration
// order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the i-th field description.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// RawType returns the derived raw type of the i-th field, computed when the
// schema was constructed.
func (s *Schema) RawType(i int) string {
	return s.rawTypes[i]
}
