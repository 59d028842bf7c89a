package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// tagName is the struct tag carrying field options. Field names come from
// the yaml tag, so the same struct can be handed to the deserializer.
const tagName = "envconf"

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// inferred caches one Schema per struct type for the lifetime of the
// process. Schemas are immutable, so a cached value can be shared freely.
var inferred sync.Map // reflect.Type -> *Schema

// Infer derives the schema of a struct type by walking its fields.
//
// Optionality comes from pointer fields (*T is an optional T). Field names
// come from the yaml tag, falling back to the lowercased Go name; fields
// tagged yaml:"-" are skipped. The envconf tag accepts the options "secret"
// and "raw=<TypeName>". Nested struct fields must declare raw=<TypeName>;
// non-struct, non-primitive fields must declare raw=string and implement
// encoding.TextUnmarshaler.
//
// The result is computed once per type and cached; repeated calls return
// the identical Schema.
func Infer(t reflect.Type) (*Schema, error) {
	return inferStruct(t, map[reflect.Type]bool{})
}

// inferStruct consults the cache before walking a nested struct so that
// shared nested types are described once.
func inferStruct(t reflect.Type, visiting map[reflect.Type]bool) (*Schema, error) {
	if cached, ok := inferred.Load(t); ok {
		return cached.(*Schema), nil
	}
	s, err := inferType(t, visiting)
	if err != nil {
		return nil, err
	}
	actual, _ := inferred.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

func inferType(t reflect.Type, visiting map[reflect.Type]bool) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, &DefinitionError{Type: t.String(), Err: ErrNotStruct}
	}
	if visiting[t] {
		return nil, &DefinitionError{Type: t.String(), Err: fmt.Errorf("recursive nesting of %s", t)}
	}
	visiting[t] = true
	defer delete(visiting, t)

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf)
		if name == "" {
			continue
		}

		f := Field{Name: name, Index: i}
		if err := applyOptions(&f, sf.Tag.Get(tagName)); err != nil {
			return nil, &DefinitionError{Type: t.String(), Field: name, Err: err}
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			f.Optional = true
			ft = ft.Elem()
		}
		f.Type = ft

		if err := bindKind(&f, ft, visiting); err != nil {
			return nil, &DefinitionError{Type: t.String(), Field: name, Err: err}
		}
		fields = append(fields, f)
	}

	s, err := New(t.String(), fields)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// bindKind decides the field's Kind from its Go type, recursing into nested
// structs. Raw-type validity itself is checked by New.
func bindKind(f *Field, ft reflect.Type, visiting map[reflect.Type]bool) error {
	if k := kindOf(ft.Kind()); k != KindInvalid {
		f.Kind = k
		return nil
	}
	if f.RawType == RawString {
		// A non-primitive field may opt into being read as a string leaf
		// when it can parse itself. Checked before the struct branch so
		// self-parsing structs are not treated as nested documents.
		if !reflect.PointerTo(ft).Implements(textUnmarshalerType) {
			return fmt.Errorf("%s does not implement encoding.TextUnmarshaler: %w", ft, ErrUnresolvedRawType)
		}
		f.Kind = KindText
		return nil
	}
	if ft.Kind() == reflect.Struct {
		nested, err := inferStruct(ft, visiting)
		if err != nil {
			return err
		}
		f.Kind = KindNested
		f.Nested = nested
		return nil
	}
	return fmt.Errorf("unsupported type %s: %w", ft, ErrUnresolvedRawType)
}

func applyOptions(f *Field, tag string) error {
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == "secret":
			f.Secret = true
		case strings.HasPrefix(opt, "raw="):
			f.RawType = strings.TrimPrefix(opt, "raw=")
		default:
			return fmt.Errorf("unknown option %q in %s tag", opt, tagName)
		}
	}
	return nil
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("yaml")
	if tag == "" {
		return strings.ToLower(sf.Name)
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(sf.Name)
	}
	return name
}
