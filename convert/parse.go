package convert

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/eugenenazirov/envconf/schema"
)

// parseLeaf parses a resolved string leaf according to the field's kind.
// Boolean parsing is strict: only the exact literals "true" and "false" are
// accepted. Integers and floats are parsed with the field's exact bit size,
// so overflow fails rather than wrapping.
func parseLeaf(f schema.Field, s string) (any, error) {
	switch {
	case f.Kind == schema.KindString:
		return s, nil
	case f.Kind == schema.KindBool:
		if s != "true" && s != "false" {
			return nil, ErrNotBoolean
		}
		return s == "true", nil
	case f.Kind.IsSigned():
		v, err := strconv.ParseInt(s, 10, f.Kind.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	case f.Kind.IsInteger():
		v, err := strconv.ParseUint(s, 10, f.Kind.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	case f.Kind.IsFloat():
		v, err := strconv.ParseFloat(s, f.Kind.Bits())
		if err != nil {
			return nil, err
		}
		return v, nil
	case f.Kind == schema.KindText:
		if f.Type == nil {
			// Unbound schemas carry no Go type to unmarshal into; the
			// leaf is accepted as text.
			return s, nil
		}
		pv := reflect.New(f.Type)
		if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return pv.Elem().Interface(), nil
	default:
		return nil, fmt.Errorf("cannot parse into kind %s", f.Kind)
	}
}

// setLeaf assigns a value produced by parseLeaf to the destination struct
// field. Set* methods keep named primitive types assignable.
func setLeaf(dst reflect.Value, f schema.Field, val any) {
	switch {
	case f.Kind == schema.KindString:
		dst.SetString(val.(string))
	case f.Kind == schema.KindBool:
		dst.SetBool(val.(bool))
	case f.Kind.IsSigned():
		dst.SetInt(val.(int64))
	case f.Kind.IsInteger():
		dst.SetUint(val.(uint64))
	case f.Kind.IsFloat():
		dst.SetFloat(val.(float64))
	default:
		dst.Set(reflect.ValueOf(val))
	}
}
