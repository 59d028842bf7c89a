package schema

import "reflect"

// Kind identifies the target type of a field.
type Kind int

const (
	KindInvalid Kind = iota

	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	// KindText marks a non-primitive target that is read as a string and
	// parsed through encoding.TextUnmarshaler.
	KindText
	// KindNested marks a field whose target is another schema.
	KindNested
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindText:    "text",
	KindNested:  "nested",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// KindByName returns the Kind named by s, or KindInvalid when s does not
// name a primitive or nested kind. Used when schemas are built from
// definition files rather than Go types.
func KindByName(s string) Kind {
	for k, name := range kindNames {
		if k == KindText {
			continue
		}
		if name == s {
			return k
		}
	}
	return KindInvalid
}

// IsPrimitive reports whether k belongs to the fixed primitive set for
// which the raw representation is always a string.
func (k Kind) IsPrimitive() bool {
	return k >= KindString && k <= KindFloat64
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindInt && k <= KindUint64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindInt && k <= KindInt64
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the bit size used when parsing integer and float kinds.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt, KindUint:
		return 0 // strconv treats 0 as the platform int size
	default:
		return 0
	}
}

var reflectKinds = map[reflect.Kind]Kind{
	reflect.String:  KindString,
	reflect.Bool:    KindBool,
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
}

// kindOf maps a reflect.Kind to the matching primitive Kind. Returns
// KindInvalid for non-primitive reflect kinds.
func kindOf(rk reflect.Kind) Kind {
	return reflectKinds[rk]
}
