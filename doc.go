// Package envconf materializes strongly typed configuration structs from
// YAML documents whose leaves may hold ${NAME:default} environment
// placeholders.
//
// A struct type is described once by reflection (see package schema); the
// decoded document is checked against the derived raw shape, placeholders
// are resolved against the process environment with per-field defaults, and
// the resolved strings are parsed into the target field types. Fields
// flagged secret never have their values echoed in diagnostics or errors.
//
//	type Config struct {
//		TimeoutMS uint32  `yaml:"timeout_ms"`
//		Token     string  `yaml:"token" envconf:"secret"`
//		Name      *string `yaml:"name"`
//	}
//
//	var cfg Config
//	err := envconf.Load(data, &cfg, envconf.WithLogger(logger))
package envconf
