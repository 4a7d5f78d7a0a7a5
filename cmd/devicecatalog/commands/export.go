package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
)

// ExportOptions configures the export command.
type ExportOptions struct {
	CatalogOptions
	Format string
	Output string
}

// RunExport runs the export command.
func RunExport(args []string, stdout, stderr io.Writer) int {
	var opts ExportOptions
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	opts.register(fs)
	fs.StringVar(&opts.Format, "format", "json", "Output format: json, cbor")
	fs.StringVar(&opts.Output, "o", "", "Output file (default stdout)")

	if handled, code := parseFlags(fs, args, stderr, printExportUsage); handled {
		return code
	}

	if opts.Format != "json" && opts.Format != "cbor" {
		fmt.Fprintf(stderr, "Error: unknown format: %s (supported: json, cbor)\n", opts.Format)
		return exitCommandError
	}

	sess, err := newSession(opts.CatalogOptions, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer sess.Close()

	svc, err := sess.openCatalog(opts.CatalogOptions)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	data, err := encodeCatalog(svc.Devices(), opts.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to encode catalog: %v\n", err)
		return exitCommandError
	}

	w := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to create output file: %v\n", err)
			return exitCommandError
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write catalog: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func encodeCatalog(devices []catalog.Device, format string) ([]byte, error) {
	if format == "cbor" {
		return catalog.EncodeSnapshot(devices)
	}
	data, err := json.MarshalIndent(toDeviceOutputs(devices), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: devicecatalog export [options]

Options:
  -catalog string   Catalog file (.json, .yaml)
  -format string    Output format: json, cbor (default "json")
  -o string         Output file (default stdout)

Examples:
  devicecatalog export -o devices.resolved.json
  devicecatalog export -format cbor -o devices.cbor`)
}
