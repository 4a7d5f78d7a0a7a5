package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
)

// LintOptions configures the lint command.
type LintOptions struct {
	CatalogOptions
	Strict bool
	JSON   bool
}

// IssueOutput represents a lint finding.
type IssueOutput struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Device  string `json:"device,omitempty"`
	Index   int    `json:"index"`
}

// LintOutput is the JSON result of the lint command.
type LintOutput struct {
	Source   string        `json:"source"`
	Valid    bool          `json:"valid"`
	Error    string        `json:"error,omitempty"`
	Warnings []IssueOutput `json:"warnings,omitempty"`
}

// RunLint runs the lint command. Duplicates are warnings; with -strict they
// fail the run.
func RunLint(args []string, stdout, stderr io.Writer) int {
	var opts LintOptions
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	opts.register(fs)
	fs.BoolVar(&opts.Strict, "strict", false, "Treat warnings as errors")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")

	if handled, code := parseFlags(fs, args, stderr, printLintUsage); handled {
		return code
	}

	sess, err := newSession(opts.CatalogOptions, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer sess.Close()

	result := LintOutput{Source: opts.source()}

	raw, err := readRaw(opts.CatalogOptions)
	if err == nil {
		_, err = catalog.NewLoader(catalogName(opts.CatalogOptions), sess.logger).Load(raw)
	} else {
		sess.logger.Error(err.Error())
	}
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Valid = true
		for _, issue := range catalog.Lint(raw) {
			result.Warnings = append(result.Warnings, IssueOutput{
				Code:    issue.Code,
				Message: issue.Message,
				Device:  issue.Device,
				Index:   issue.Index,
			})
		}
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(output))
	} else {
		printLintResult(stdout, result)
	}

	if !result.Valid || (opts.Strict && len(result.Warnings) > 0) {
		return exitValidation
	}
	return exitSuccess
}

func printLintResult(w io.Writer, result LintOutput) {
	switch {
	case !result.Valid:
		fmt.Fprintf(w, "%s: FAILED\n  ERROR %s\n", result.Source, result.Error)
		return
	case len(result.Warnings) == 0:
		fmt.Fprintf(w, "%s: OK\n", result.Source)
		return
	}

	fmt.Fprintf(w, "%s: OK (with %d warnings)\n", result.Source, len(result.Warnings))
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "  WARNING [device %d] %s: %s\n", warn.Index, warn.Code, warn.Message)
	}
}

func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: devicecatalog lint [options]

Options:
  -catalog string   Catalog file (.json, .yaml)
  -strict           Treat warnings as errors
  -json             Output results as JSON

Examples:
  devicecatalog lint -catalog devices.json
  devicecatalog lint -strict -json`)
}
