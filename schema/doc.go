// Package schema describes the fields of a configuration type: name, target
// kind, optionality, secrecy, and the raw type an external deserializer must
// populate for it. Schemas are immutable after construction and can be built
// either by reflecting over a Go struct (Infer) or by hand (New). Raw types
// are derived and validated once, when the schema is constructed.
package schema
