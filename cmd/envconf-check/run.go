package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/envconf/convert"
	"github.com/eugenenazirov/envconf/document"
	"github.com/eugenenazirov/envconf/resolve"
	"github.com/eugenenazirov/envconf/schema"
)

// schemaFile is the on-disk schema definition format.
type schemaFile struct {
	Schemas []schemaDef `yaml:"schemas"`
}

type schemaDef struct {
	Name   string     `yaml:"name"`
	Fields []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	Secret   bool   `yaml:"secret"`
	RawType  string `yaml:"raw_type"`
}

func run(schemaPath, configPath, typeName string, printShape bool, out io.Writer, logger *zap.Logger) error {
	registry, last, err := loadSchemas(schemaPath)
	if err != nil {
		return err
	}

	if typeName == "" {
		typeName = last
	}
	root, ok := registry.Get(typeName)
	if !ok {
		return fmt.Errorf("schema %q is not defined in %s (have: %v)", typeName, schemaPath, registry.Names())
	}

	if printShape {
		data, err := yaml.Marshal(document.Shape(root))
		if err != nil {
			return fmt.Errorf("render shape: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if configPath == "" {
		return errors.New("either --config or --print-shape is required")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config document: %w", err)
	}
	var src map[string]any
	if err := yaml.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("parse config document: %w", err)
	}

	doc, err := document.Build(root, src)
	if err != nil {
		return fmt.Errorf("document does not match schema %q: %w", typeName, err)
	}

	resolver := resolve.New(resolve.WithLogger(logger))
	if err := convert.Check(root, resolver.Resolve(root, doc)); err != nil {
		return err
	}

	logger.Info("document is valid",
		zap.String("schema", typeName),
		zap.String("config", configPath),
	)
	return nil
}

// loadSchemas reads a schema definition file and registers every schema in
// declaration order, so nested references resolve against earlier entries.
// It returns the registry and the name of the last schema defined.
func loadSchemas(path string) (*schema.Registry, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read schema definition: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parse schema definition: %w", err)
	}
	if len(file.Schemas) == 0 {
		return nil, "", fmt.Errorf("%s defines no schemas", path)
	}

	registry := schema.NewRegistry()
	var last string
	for _, def := range file.Schemas {
		s, err := buildSchema(registry, def)
		if err != nil {
			return nil, "", err
		}
		if err := registry.Register(s); err != nil {
			return nil, "", err
		}
		last = s.Name()
	}
	return registry, last, nil
}

func buildSchema(registry *schema.Registry, def schemaDef) (*schema.Schema, error) {
	if def.Name == "" {
		return nil, errors.New("schema definition is missing a name")
	}

	fields := make([]schema.Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("schema %q: field definition is missing a name", def.Name)
		}
		kind := schema.KindByName(fd.Type)
		if kind == schema.KindInvalid {
			return nil, fmt.Errorf("schema %q: field %q: unknown type %q", def.Name, fd.Name, fd.Type)
		}

		f := schema.Field{
			Name:     fd.Name,
			Kind:     kind,
			Optional: fd.Optional,
			Secret:   fd.Secret,
			RawType:  fd.RawType,
		}
		if kind == schema.KindNested {
			nested, ok := registry.Get(fd.RawType)
			if !ok {
				return nil, fmt.Errorf("schema %q: field %q: nested schema %q is not defined yet (declare it first)", def.Name, fd.Name, fd.RawType)
			}
			f.Nested = nested
		}
		fields = append(fields, f)
	}

	return schema.New(def.Name, fields)
}
