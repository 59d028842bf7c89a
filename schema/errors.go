package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedRawType is returned when a non-primitive field does not
	// declare the raw type an external deserializer should populate for it.
	ErrUnresolvedRawType = errors.New("no raw type can be derived; declare one with a raw type override")
	// ErrRedundantAnnotation is returned when a primitive field declares a
	// "string" raw type override, which would be derived anyway.
	ErrRedundantAnnotation = errors.New(`redundant raw type override "string"; primitive fields already read as strings`)
	// ErrNotStruct is returned when schema inference is asked to describe a
	// non-struct type.
	ErrNotStruct = errors.New("schema target must be a struct")
	// ErrDuplicateSchema is returned when a schema name is registered twice.
	ErrDuplicateSchema = errors.New("schema with this name is already registered")
)

// DefinitionError reports a misdeclared field. It is raised when a schema is
// constructed, before any document is loaded, and is not recoverable at load
// time.
type DefinitionError struct {
	Type  string
	Field string
	Err   error
}

func (e *DefinitionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema %s: field %q: %v", e.Type, e.Field, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}
