// Command lws validates a JSON data document against a lightweight schema
// document in both directions and prints the resulting mismatch report.
//
// Usage:
//
//	lws [flags] <schema-file> <data-file>
//
// Flags:
//
//	-verbose    Verbose output
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/jsonlws/lws"
	"github.com/jsonlws/lws/internal/dataload"
	"github.com/jsonlws/lws/internal/schemaload"
)

var verbose = flag.Bool("verbose", false, "Verbose output")

func main() {
	color.Output = colorable.NewColorableStdout()
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Println(`lws - JSON Lightweight Schema validator

USAGE:
    lws [flags] <schema-file> <data-file>

FLAGS:`)
		flag.PrintDefaults()
		os.Exit(1)
	}

	schemaPath, dataPath := args[0], args[1]

	if *verbose {
		log.Printf("📄 Loading schema: %s", schemaPath)
	}
	schema, err := schemaload.LoadFile(schemaPath)
	if err != nil {
		log.Fatalf("❌ Failed to load schema: %v", err)
	}

	if *verbose {
		log.Printf("📄 Loading data: %s", dataPath)
	}
	data, err := dataload.LoadFile(dataPath)
	if err != nil {
		log.Fatalf("❌ Failed to load data: %v", err)
	}

	if *verbose {
		log.Printf("🔎 Validating")
	}
	report := lws.Validate(schema, data)

	fmt.Println(report.Text)

	errCount := report.SchemaKeyErrors + report.SchemaValErrors + report.DataKeyErrors + report.DataValErrors
	if errCount == 0 {
		color.New(color.FgGreen).Println("✅ no mismatches found")
	} else {
		color.New(color.FgRed).Printf("❌ %d mismatch(es) found\n", errCount)
	}

	if *verbose {
		log.Printf("🎉 Validation completed")
	}
}
