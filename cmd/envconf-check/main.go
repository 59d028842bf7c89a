// Command envconf-check validates a configuration document against a schema
// definition file: it checks the document's shape, resolves environment
// placeholders, and parses every field, reporting all failures at once.
//
// The schema definition is YAML; nested schemas must be declared before the
// schemas that reference them through raw_type:
//
//	schemas:
//	  - name: Database
//	    fields:
//	      - name: host
//	        type: string
//	      - name: password
//	        type: string
//	        secret: true
//	  - name: Config
//	    fields:
//	      - name: timeout_ms
//	        type: uint32
//	      - name: database
//	        type: nested
//	        raw_type: Database
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/envconf/internal/logging"
)

func main() {
	app := kingpin.New("envconf-check", "Validates configuration documents against a schema definition, including environment placeholder resolution")
	schemaFile := app.Flag("schema", "Path to the YAML schema definition").Required().String()
	configFile := app.Flag("config", "Path to the YAML configuration document to validate").String()
	typeName := app.Flag("type", "Schema to validate against (defaults to the last one defined)").String()
	printShape := app.Flag("print-shape", "Print the raw document shape the schema expects and exit").Bool()
	debug := app.Flag("debug", "Enable verbose logging").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(*schemaFile, *configFile, *typeName, *printShape, os.Stdout, logger); err != nil {
		logger.Error("validation failed", zap.Error(err))
		os.Exit(1)
	}
}
