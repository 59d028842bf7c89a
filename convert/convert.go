package convert

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"

	"github.com/eugenenazirov/envconf/document"
	"github.com/eugenenazirov/envconf/schema"
)

// Convert parses a fully resolved document into the struct pointed to by
// out, which must match the type the schema was inferred from.
//
// Every field is attempted and all failures are returned together as an
// aggregate of *FieldError values, walked in schema order. On any failure
// the target is left untouched, so a partially converted value can never
// escape.
func Convert(s *schema.Schema, doc document.Document, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.New("conversion target must be a non-nil pointer to a struct")
	}

	tmp := reflect.New(rv.Elem().Type()).Elem()
	if err := convertInto(s, doc, tmp, ""); err != nil {
		return err
	}
	rv.Elem().Set(tmp)
	return nil
}

func convertInto(s *schema.Schema, doc document.Document, dst reflect.Value, prefix string) error {
	var errs error
	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		path := prefix + f.Name

		if f.Index < 0 || f.Index >= dst.NumField() || f.Type == nil {
			errs = multierr.Append(errs, fmt.Errorf("field %q: %w", path, ErrNoBinding))
			continue
		}
		fv := dst.Field(f.Index)
		v := doc[f.Name]

		if v.IsAbsent() {
			if !f.Optional {
				errs = multierr.Append(errs, fieldError(path, "", f.Secret, ErrMissingValue))
			}
			continue
		}

		if f.Kind == schema.KindNested {
			nested, ok := v.AsDocument()
			if !ok {
				errs = multierr.Append(errs, fieldError(path, "", f.Secret, errors.New("expected a nested document")))
				continue
			}
			target := fv
			if f.Optional {
				target = reflect.New(f.Type).Elem()
			}
			if err := convertInto(f.Nested, nested, target, path+"."); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if f.Optional {
				fv.Set(target.Addr())
			}
			continue
		}

		leaf, ok := v.AsString()
		if !ok {
			errs = multierr.Append(errs, fieldError(path, "", f.Secret, errors.New("expected a string leaf")))
			continue
		}

		if f.Optional && leaf == "" && s.RawType(i) == schema.RawString {
			// Empty optional short-circuit: an empty string leaf means
			// the field is absent, not an empty value.
			continue
		}

		val, err := parseLeaf(f, leaf)
		if err != nil {
			errs = multierr.Append(errs, fieldError(path, leaf, f.Secret, err))
			continue
		}
		if f.Optional {
			ptr := reflect.New(f.Type)
			setLeaf(ptr.Elem(), f, val)
			fv.Set(ptr)
			continue
		}
		setLeaf(fv, f, val)
	}
	return errs
}

// Check parses every field of the document without materializing a target
// value. It applies the same per-kind rules and error policy as Convert and
// works with hand-built schemas that are not bound to a Go type.
func Check(s *schema.Schema, doc document.Document) error {
	return check(s, doc, "")
}

func check(s *schema.Schema, doc document.Document, prefix string) error {
	var errs error
	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		path := prefix + f.Name
		v := doc[f.Name]

		if v.IsAbsent() {
			if !f.Optional {
				errs = multierr.Append(errs, fieldError(path, "", f.Secret, ErrMissingValue))
			}
			continue
		}

		if f.Kind == schema.KindNested {
			nested, ok := v.AsDocument()
			if !ok {
				errs = multierr.Append(errs, fieldError(path, "", f.Secret, errors.New("expected a nested document")))
				continue
			}
			if err := check(f.Nested, nested, path+"."); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}

		leaf, ok := v.AsString()
		if !ok {
			errs = multierr.Append(errs, fieldError(path, "", f.Secret, errors.New("expected a string leaf")))
			continue
		}
		if f.Optional && leaf == "" && s.RawType(i) == schema.RawString {
			continue
		}
		if _, err := parseLeaf(f, leaf); err != nil {
			errs = multierr.Append(errs, fieldError(path, leaf, f.Secret, err))
		}
	}
	return errs
}
