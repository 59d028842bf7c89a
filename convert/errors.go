package convert

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotBoolean is returned when a boolean field holds anything other
	// than the literals "true" or "false".
	ErrNotBoolean = errors.New(`boolean fields accept only "true" or "false"`)
	// ErrMissingValue is returned when a non-optional field has no value.
	ErrMissingValue = errors.New("required field has no value")
	// ErrNoBinding is returned when a schema without Go type bindings is
	// used to populate a struct. Such schemas can only be checked.
	ErrNoBinding = errors.New("schema is not bound to a Go type")
)

// FieldError reports one field that could not be converted. The dotted Field
// path qualifies nested fields. For secret fields the message carries
// neither the raw value nor any cause text that could embed it.
type FieldError struct {
	Field    string
	RawValue string
	Secret   bool
	Err      error
}

func (e *FieldError) Error() string {
	if e.Secret {
		return fmt.Sprintf("field %q: cannot parse secret value: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("field %q: cannot parse %q: %v", e.Field, e.RawValue, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// errSecretUnparsable replaces causes that might echo the value being
// parsed, such as messages from user TextUnmarshaler implementations.
var errSecretUnparsable = errors.New("value is not parsable as its target type")

// fieldError builds a FieldError, stripping the raw value from the retained
// cause for secret fields.
func fieldError(path, raw string, secret bool, err error) *FieldError {
	if secret {
		return &FieldError{Field: path, Secret: true, Err: secretCause(err)}
	}
	return &FieldError{Field: path, RawValue: raw, Err: err}
}

// secretCause reduces a parse failure to a cause that cannot embed the
// parsed value. strconv errors repeat their input, so only their value-free
// inner error survives; this package's own sentinels are value-free by
// construction; any other cause is replaced wholesale.
func secretCause(err error) error {
	var num *strconv.NumError
	if errors.As(err, &num) {
		return num.Err
	}
	if errors.Is(err, ErrNotBoolean) || errors.Is(err, ErrMissingValue) {
		return err
	}
	return errSecretUnparsable
}
