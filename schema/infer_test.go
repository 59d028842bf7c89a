package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type inferDatabase struct {
	Host     string  `yaml:"host"`
	Port     uint16  `yaml:"port"`
	Password *string `yaml:"password" envconf:"secret"`
}

type logLevel struct {
	name string
}

func (l *logLevel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info", "debug":
		l.name = string(text)
		return nil
	default:
		return fmt.Errorf("unknown level %q", text)
	}
}

type inferConfig struct {
	TimeoutMS uint32        `yaml:"timeout_ms"`
	Enabled   bool          `yaml:"enabled"`
	Name      *string       `yaml:"name"`
	Token     string        `yaml:"token" envconf:"secret"`
	Level     logLevel      `yaml:"level" envconf:"raw=string"`
	Database  inferDatabase `yaml:"database" envconf:"raw=inferDatabase"`

	skipped  string // unexported fields are not configuration
	Excluded string `yaml:"-"`
}

func TestInfer(t *testing.T) {
	s, err := Infer(reflect.TypeOf(inferConfig{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Len() != 6 {
		t.Fatalf("expected 6 fields, got %d", s.Len())
	}

	want := []struct {
		name     string
		kind     Kind
		optional bool
		secret   bool
		raw      string
	}{
		{"timeout_ms", KindUint32, false, false, RawString},
		{"enabled", KindBool, false, false, RawString},
		{"name", KindString, true, false, RawString},
		{"token", KindString, false, true, RawString},
		{"level", KindText, false, false, RawString},
		{"database", KindNested, false, false, "inferDatabase"},
	}
	for i, w := range want {
		f := s.Field(i)
		if f.Name != w.name || f.Kind != w.kind || f.Optional != w.optional || f.Secret != w.secret {
			t.Fatalf("field %d: got %+v, want %+v", i, f, w)
		}
		if got := s.RawType(i); got != w.raw {
			t.Fatalf("field %q: expected raw type %q, got %q", w.name, w.raw, got)
		}
	}

	db := s.Field(5).Nested
	if db == nil || db.Len() != 3 {
		t.Fatalf("expected nested schema with 3 fields, got %v", db)
	}
	if f := db.Field(2); f.Name != "password" || !f.Optional || !f.Secret {
		t.Fatalf("unexpected nested password field: %+v", f)
	}
}

func TestInferIsCached(t *testing.T) {
	first, err := Infer(reflect.TypeOf(inferConfig{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Infer(reflect.TypeOf(inferConfig{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected the identical schema from the cache")
	}

	nested, err := Infer(reflect.TypeOf(inferDatabase{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nested != first.Field(5).Nested {
		t.Fatalf("expected nested schema to share the cache entry")
	}
}

type redundantString struct {
	V string `yaml:"v" envconf:"raw=string"`
}

type redundantBool struct {
	V bool `yaml:"v" envconf:"raw=string"`
}

type redundantInt struct {
	V int `yaml:"v" envconf:"raw=string"`
}

type redundantInt8 struct {
	V int8 `yaml:"v" envconf:"raw=string"`
}

type redundantInt64 struct {
	V int64 `yaml:"v" envconf:"raw=string"`
}

type redundantUint struct {
	V uint `yaml:"v" envconf:"raw=string"`
}

type redundantUint16 struct {
	V uint16 `yaml:"v" envconf:"raw=string"`
}

type redundantUint64 struct {
	V uint64 `yaml:"v" envconf:"raw=string"`
}

type redundantFloat32 struct {
	V float32 `yaml:"v" envconf:"raw=string"`
}

type redundantFloat64 struct {
	V float64 `yaml:"v" envconf:"raw=string"`
}

func TestInferRedundantAnnotationOnPrimitives(t *testing.T) {
	tests := []struct {
		kind   string
		target any
	}{
		{"string", redundantString{}},
		{"bool", redundantBool{}},
		{"int", redundantInt{}},
		{"int8", redundantInt8{}},
		{"int64", redundantInt64{}},
		{"uint", redundantUint{}},
		{"uint16", redundantUint16{}},
		{"uint64", redundantUint64{}},
		{"float32", redundantFloat32{}},
		{"float64", redundantFloat64{}},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			_, err := Infer(reflect.TypeOf(tc.target))
			if !errors.Is(err, ErrRedundantAnnotation) {
				t.Fatalf("expected ErrRedundantAnnotation for %s, got %v", tc.kind, err)
			}
			if !strings.Contains(err.Error(), `"v"`) {
				t.Fatalf("expected error to name the field: %v", err)
			}
		})
	}
}

type nestedWithoutRaw struct {
	Database inferDatabase `yaml:"database"`
}

type unsupportedField struct {
	Hosts []string `yaml:"hosts"`
}

type unknownOption struct {
	Port uint16 `yaml:"port" envconf:"sneaky"`
}

type selfNested struct {
	Inner *selfNested `yaml:"inner" envconf:"raw=selfNested"`
}

func TestInferDefinitionErrors(t *testing.T) {
	tests := []struct {
		name    string
		target  any
		want    error
		inField string
	}{
		{"nested struct without raw override", nestedWithoutRaw{}, ErrUnresolvedRawType, "database"},
		{"unsupported field type", unsupportedField{}, ErrUnresolvedRawType, "hosts"},
		{"non-struct target", 42, ErrNotStruct, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Infer(reflect.TypeOf(tc.target))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.inField != "" && !strings.Contains(err.Error(), tc.inField) {
				t.Fatalf("expected error to name field %q: %v", tc.inField, err)
			}
		})
	}

	t.Run("unknown tag option", func(t *testing.T) {
		if _, err := Infer(reflect.TypeOf(unknownOption{})); err == nil {
			t.Fatalf("expected error for unknown tag option")
		}
	})

	t.Run("recursive nesting", func(t *testing.T) {
		if _, err := Infer(reflect.TypeOf(selfNested{})); err == nil {
			t.Fatalf("expected error for recursive nesting")
		}
	})
}
