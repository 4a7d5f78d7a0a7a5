package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	CatalogOptions
	JSON     bool
	Verbose  bool
	Category string
	Device   string
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	var opts ShowOptions
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts.register(fs)
	fs.BoolVar(&opts.JSON, "json", false, "Output devices as JSON")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Include user defines")
	fs.BoolVar(&opts.Verbose, "v", false, "Include user defines (shorthand)")
	fs.StringVar(&opts.Category, "category", "", "Only show devices in this category")
	fs.StringVar(&opts.Device, "device", "", "Only show the device with this ID")

	if handled, code := parseFlags(fs, args, stderr, printShowUsage); handled {
		return code
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

	var devices []catalog.Device
	switch {
	case opts.Device != "":
		d, ok := svc.Device(opts.Device)
		if !ok {
			fmt.Fprintf(stderr, "Error: device not found: %s\n", opts.Device)
			return exitCommandError
		}
		devices = []catalog.Device{d}
	case opts.Category != "":
		devices = svc.ByCategory(opts.Category)
	default:
		devices = svc.Devices()
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(toDeviceOutputs(devices), "", "  ")
		fmt.Fprintln(stdout, string(output))
		return exitSuccess
	}

	for _, d := range devices {
		printDevice(stdout, d, opts.Verbose)
	}
	return exitSuccess
}

func printDevice(w io.Writer, d catalog.Device, verbose bool) {
	fmt.Fprintf(w, "%s [%s]\n", d.Name, d.Category)
	if d.WikiURL != "" {
		fmt.Fprintf(w, "  wiki: %s\n", d.WikiURL)
	}
	for _, t := range d.Targets {
		fmt.Fprintf(w, "  target %s (%s)\n", t.Name, t.FlashingMethod)
	}
	if verbose {
		names := make([]string, 0, len(d.UserDefines))
		for _, u := range d.UserDefines {
			names = append(names, u.String())
		}
		fmt.Fprintf(w, "  user defines: %s\n", strings.Join(names, ", "))
	}
}

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: devicecatalog show [options]

Options:
  -catalog string   Catalog file (.json, .yaml)
  -category string  Only show devices in this category
  -device string    Only show the device with this ID
  -json             Output devices as JSON
  -v, -verbose      Include user defines

Examples:
  devicecatalog show -category "Frsky 900 MHz"
  devicecatalog show -json -device "Frsky R9MM"`)
}
