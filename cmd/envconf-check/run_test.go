package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const testSchemaYAML = `
schemas:
  - name: Database
    fields:
      - name: host
        type: string
      - name: port
        type: uint16
      - name: password
        type: string
        secret: true
        optional: true
  - name: Config
    fields:
      - name: timeout_ms
        type: uint32
      - name: enabled
        type: bool
      - name: database
        type: nested
        raw_type: Database
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunValidDocument(t *testing.T) {
	os.Unsetenv("CHECK_TIMEOUT_MS")
	schemaPath := writeFile(t, "schema.yaml", testSchemaYAML)
	configPath := writeFile(t, "config.yaml", `
timeout_ms: "${CHECK_TIMEOUT_MS:30}"
enabled: "true"
database:
  host: localhost
  port: 5432
`)

	var out bytes.Buffer
	if err := run(schemaPath, configPath, "", false, &out, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunInvalidDocument(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", testSchemaYAML)
	configPath := writeFile(t, "config.yaml", `
timeout_ms: "abc"
enabled: "yes"
database:
  host: localhost
  port: 70000
`)

	var out bytes.Buffer
	err := run(schemaPath, configPath, "Config", false, &out, zap.NewNop())
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"timeout_ms", "enabled", "database.port"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to name %q: %v", want, err)
		}
	}
}

func TestRunPrintShape(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", testSchemaYAML)

	var out bytes.Buffer
	if err := run(schemaPath, "", "Config", true, &out, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shape := out.String()
	for _, want := range []string{"timeout_ms", "database", "port"} {
		if !strings.Contains(shape, want) {
			t.Fatalf("expected shape to mention %q, got:\n%s", want, shape)
		}
	}
}

func TestRunSchemaErrors(t *testing.T) {
	t.Run("unknown schema name", func(t *testing.T) {
		schemaPath := writeFile(t, "schema.yaml", testSchemaYAML)
		var out bytes.Buffer
		if err := run(schemaPath, "", "Nope", true, &out, zap.NewNop()); err == nil {
			t.Fatalf("expected an error for an unknown schema")
		}
	})

	t.Run("nested schema declared later", func(t *testing.T) {
		schemaPath := writeFile(t, "schema.yaml", `
schemas:
  - name: Config
    fields:
      - name: database
        type: nested
        raw_type: Database
  - name: Database
    fields:
      - name: host
        type: string
`)
		var out bytes.Buffer
		err := run(schemaPath, "", "", true, &out, zap.NewNop())
		if err == nil || !strings.Contains(err.Error(), "Database") {
			t.Fatalf("expected a forward-reference error, got %v", err)
		}
	})

	t.Run("unknown field type", func(t *testing.T) {
		schemaPath := writeFile(t, "schema.yaml", `
schemas:
  - name: Config
    fields:
      - name: port
        type: u16
`)
		var out bytes.Buffer
		if err := run(schemaPath, "", "", true, &out, zap.NewNop()); err == nil {
			t.Fatalf("expected an error for an unknown field type")
		}
	})

	t.Run("config required without print-shape", func(t *testing.T) {
		schemaPath := writeFile(t, "schema.yaml", testSchemaYAML)
		var out bytes.Buffer
		if err := run(schemaPath, "", "", false, &out, zap.NewNop()); err == nil {
			t.Fatalf("expected an error when no config is given")
		}
	})
}
