package resolve

import (
	"go.uber.org/zap"

	"github.com/eugenenazirov/envconf/document"
	"github.com/eugenenazirov/envconf/schema"
)

// redactedMarker stands in for secret values in diagnostics.
const redactedMarker = "[REDACTED]"

// Resolver substitutes environment placeholders in raw documents.
type Resolver struct {
	env    Env
	logger *zap.Logger
}

// Option configures Resolver behaviour.
type Option func(*Resolver)

// WithEnv overrides the environment lookup (primarily for tests).
func WithEnv(env Env) Option {
	return func(r *Resolver) {
		r.env = env
	}
}

// WithLogger sets the sink for fallback diagnostics. Without it, fallbacks
// are silent.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New constructs a Resolver reading the process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		env:    OS(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the document depth-first and resolves every placeholder
// string leaf, returning a new document of the same shape. Absent values
// stay absent; non-placeholder strings pass through unchanged. Fields are
// independent, so no leaf's resolution depends on another's value.
func (r *Resolver) Resolve(s *schema.Schema, doc document.Document) document.Document {
	out := make(document.Document, len(doc))
	for i := 0; i < s.Len(); i++ {
		f := s.Field(i)
		v := doc[f.Name]

		switch {
		case v.IsAbsent():
			out[f.Name] = v
		case f.Kind == schema.KindNested:
			nested, ok := v.AsDocument()
			if !ok {
				out[f.Name] = v
				continue
			}
			out[f.Name] = document.Nested(r.Resolve(f.Nested, nested))
		default:
			leaf, ok := v.AsString()
			if !ok {
				out[f.Name] = v
				continue
			}
			out[f.Name] = document.String(r.resolveLeaf(f, leaf))
		}
	}
	return out
}

func (r *Resolver) resolveLeaf(f schema.Field, leaf string) string {
	name, def, ok := parsePlaceholder(leaf)
	if !ok {
		return leaf
	}

	value, state := r.env.Lookup(name)
	if state == Found {
		return value
	}

	shown := def
	if f.Secret {
		shown = redactedMarker
	}
	switch state {
	case NotFound:
		r.logger.Warn("environment variable not set, using default",
			zap.String("var", name),
			zap.String("default", shown),
		)
	case Invalid:
		r.logger.Warn("environment variable is not valid text, using default",
			zap.String("var", name),
			zap.String("default", shown),
		)
	}
	return def
}
