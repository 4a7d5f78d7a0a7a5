package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/expresslrs/devicecatalog/pkg/log"
)

// ErrorsOptions configures the errors command.
type ErrorsOptions struct {
	Session string
	Since   string
	JSON    bool
	File    string
}

// EventOutput is the JSONL form of a logged error.
type EventOutput struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
}

// RunErrors prints the events in a CBOR error log.
func RunErrors(args []string, stdout, stderr io.Writer) int {
	var opts ErrorsOptions
	fs := flag.NewFlagSet("errors", flag.ContinueOnError)
	fs.StringVar(&opts.Session, "session", "", "Only show events from this session ID")
	fs.StringVar(&opts.Since, "since", "", "Only show events at or after this RFC 3339 time")
	fs.BoolVar(&opts.JSON, "json", false, "Output events as JSON lines")

	if handled, code := parseFlags(fs, args, stderr, printErrorsUsage); handled {
		return code
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one log file must be specified")
		printErrorsUsage(stderr)
		return exitCommandError
	}
	opts.File = fs.Arg(0)

	filter := log.Filter{SessionID: opts.Session}
	if opts.Since != "" {
		since, err := time.Parse(time.RFC3339, opts.Since)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid -since: %v\n", err)
			return exitCommandError
		}
		filter.TimeStart = &since
	}

	reader, err := log.NewFilteredReader(opts.File, filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open log file: %v\n", err)
		return exitCommandError
	}
	defer reader.Close()

	encoder := json.NewEncoder(stdout)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to read event: %v\n", err)
			return exitCommandError
		}

		if opts.JSON {
			if err := encoder.Encode(EventOutput{
				Timestamp: event.Timestamp,
				SessionID: event.SessionID,
				Message:   event.Message,
			}); err != nil {
				fmt.Fprintf(stderr, "Error: failed to encode event: %v\n", err)
				return exitCommandError
			}
			continue
		}
		fmt.Fprintf(stdout, "%s [%s] %s\n",
			event.Timestamp.Format(time.RFC3339), shortSession(event.SessionID), event.Message)
	}

	return exitSuccess
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printErrorsUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: devicecatalog errors [options] <file>

Options:
  -session string  Only show events from this session ID
  -since string    Only show events at or after this RFC 3339 time
  -json            Output events as JSON lines

Examples:
  devicecatalog errors errors.clog
  devicecatalog errors -json -since 2024-01-01T00:00:00Z errors.clog`)
}
