package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	CatalogOptions
	JSON bool
}

// ValidationOutput is the JSON result of the validate command.
type ValidationOutput struct {
	Valid      bool     `json:"valid"`
	Source     string   `json:"source"`
	Devices    int      `json:"devices"`
	Categories []string `json:"categories,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	var opts ValidateOptions
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts.register(fs)
	fs.BoolVar(&opts.JSON, "json", false, "Output result as JSON")

	if handled, code := parseFlags(fs, args, stderr, printValidateUsage); handled {
		return code
	}

	sess, err := newSession(opts.CatalogOptions, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer sess.Close()

	result := ValidationOutput{Source: opts.source()}
	svc, err := sess.openCatalog(opts.CatalogOptions)
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Valid = true
		result.Devices = svc.Len()
		result.Categories = svc.Categories()
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(output))
	} else if result.Valid {
		fmt.Fprintf(stdout, "%s: OK (%d devices in %d categories)\n", result.Source, result.Devices, len(result.Categories))
	} else {
		fmt.Fprintf(stdout, "%s: FAILED\n  ERROR %s\n", result.Source, result.Error)
	}

	if !result.Valid {
		return exitValidation
	}
	return exitSuccess
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: devicecatalog validate [options]

Options:
  -catalog string   Catalog file (.json, .yaml)
  -json             Output result as JSON
  -log-level string Log level: debug, info, warn, error (default "error")
  -log-file string  Append load errors to this CBOR log file

Examples:
  devicecatalog validate -catalog devices.json
  devicecatalog validate -json -log-file errors.clog`)
}
