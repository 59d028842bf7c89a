package envconf

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/envconf/convert"
	"github.com/eugenenazirov/envconf/document"
	"github.com/eugenenazirov/envconf/resolve"
	"github.com/eugenenazirov/envconf/schema"
)

// Option configures a load operation.
type Option func(*loader)

// WithLogger sets the sink for placeholder fallback warnings. Without it,
// fallbacks are silent.
func WithLogger(logger *zap.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithEnv overrides the environment lookup used for placeholder resolution
// (primarily for tests).
func WithEnv(env resolve.Env) Option {
	return func(l *loader) {
		l.env = env
	}
}

type loader struct {
	logger *zap.Logger
	env    resolve.Env
}

// Load parses a YAML document and materializes it into the struct pointed
// to by out.
//
// Schema inference failures indicate a misdeclared struct and should abort
// startup. Malformed documents surface as deserialization errors. Field
// parse failures are collected across the whole document and returned
// together as *convert.FieldError values; out is left untouched when any
// field fails.
func Load(data []byte, out any, opts ...Option) error {
	l := &loader{
		logger: zap.NewNop(),
		env:    resolve.OS(),
	}
	for _, opt := range opts {
		opt(l)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("load target must be a non-nil pointer to a struct")
	}
	sch, err := schema.Infer(rv.Type().Elem())
	if err != nil {
		return err
	}

	var src map[string]any
	if err := yaml.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	doc, err := document.Build(sch, src)
	if err != nil {
		return fmt.Errorf("build raw document: %w", err)
	}

	resolver := resolve.New(resolve.WithEnv(l.env), resolve.WithLogger(l.logger))
	resolved := resolver.Resolve(sch, doc)

	return convert.Convert(sch, resolved, out)
}

// LoadFile reads a YAML file and materializes it into out. See Load.
func LoadFile(path string, out any, opts ...Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return Load(data, out, opts...)
}
