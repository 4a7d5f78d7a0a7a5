// devicecatalog is a CLI tool for validating, inspecting and exporting the
// hardware device catalog.
package main

import (
	"fmt"
	"os"

	"github.com/expresslrs/devicecatalog/cmd/devicecatalog/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

// Version can be set during build time
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "lint":
		exitCode = commands.RunLint(args, os.Stdout, os.Stderr)
	case "export":
		exitCode = commands.RunExport(args, os.Stdout, os.Stderr)
	case "errors":
		exitCode = commands.RunErrors(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Printf("devicecatalog version %s\n", Version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`devicecatalog - hardware device catalog tool

Usage:
  devicecatalog <command> [options]

Commands:
  validate   Load and validate the catalog
  show       Display devices, targets and user defines
  lint       Report duplicate devices, targets and user defines
  export     Write the validated catalog as JSON or CBOR
  errors     Display a CBOR error log written with -log-file

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

The catalog is read from -catalog, then $DEVICECATALOG_FILE, then the
catalog built into the binary.

Examples:
  devicecatalog validate -catalog devices.json
  devicecatalog show -category "Happymodel 2.4 GHz"
  devicecatalog export -format cbor -o devices.cbor
  devicecatalog errors -json errors.clog`)
}
