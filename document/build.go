package document

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eugenenazirov/envconf/schema"
)

var (
	// ErrMissingField is returned when a non-optional field has no value in
	// the source document.
	ErrMissingField = errors.New("required field is missing")
	// ErrWrongShape is returned when a source value cannot populate the raw
	// shape derived from the schema.
	ErrWrongShape = errors.New("value does not match the derived raw shape")
)

// Shape derives the raw tree an external deserializer must be able to
// populate for the schema: leaf fields map to their derived raw type name,
// nested fields to the nested shape. Optional fields are annotated.
func Shape(s *schema.Schema) map[string]any {
	out := make(map[string]any, s.Len())
	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		var v any
		if f.Kind == schema.KindNested {
			v = Shape(f.Nested)
		} else {
			raw := s.RawType(i)
			if f.Optional {
				raw += " (optional)"
			}
			v = raw
		}
		out[f.Name] = v
	}
	return out
}

// Build checks a decoded source document against the schema's raw shape and
// produces the Document the resolution pipeline works on. Missing keys and
// explicit nulls become the absence marker for optional fields and an error
// for required ones. Scalar leaves are kept in their string form; sequences
// or mappings where a string is expected are shape errors. Keys the schema
// does not describe are ignored.
func Build(s *schema.Schema, src map[string]any) (Document, error) {
	return build(s, src, "")
}

func build(s *schema.Schema, src map[string]any, prefix string) (Document, error) {
	doc := make(Document, s.Len())
	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		path := prefix + f.Name

		v, ok := src[f.Name]
		if !ok || v == nil {
			if !f.Optional {
				return nil, fmt.Errorf("field %q: %w", path, ErrMissingField)
			}
			doc[f.Name] = Absent()
			continue
		}

		if f.Kind == schema.KindNested {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("field %q: expected a %s document, got %T: %w", path, s.RawType(i), v, ErrWrongShape)
			}
			nested, err := build(f.Nested, m, path+".")
			if err != nil {
				return nil, err
			}
			doc[f.Name] = Nested(nested)
			continue
		}

		leaf, ok := leafString(v)
		if !ok {
			return nil, fmt.Errorf("field %q: expected a string, got %T: %w", path, v, ErrWrongShape)
		}
		doc[f.Name] = String(leaf)
	}
	return doc, nil
}

// leafString keeps scalar source values in their canonical string form.
// YAML decodes unquoted scalars as typed values; the raw representation of
// every leaf is a string, so they are normalised here instead of forcing
// callers to quote numbers and booleans.
func leafString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	default:
		return "", false
	}
}
