package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
	"github.com/expresslrs/devicecatalog/pkg/log"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// CatalogEnv names the environment variable consulted when -catalog is not set.
const CatalogEnv = "DEVICECATALOG_FILE"

// CatalogOptions are the flags shared by every command that loads a catalog.
type CatalogOptions struct {
	Catalog  string
	LogLevel string
	LogFile  string
}

func (o *CatalogOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.Catalog, "catalog", "", "Catalog file (.json, .yaml); defaults to $"+CatalogEnv+" or the builtin catalog")
	fs.StringVar(&o.LogLevel, "log-level", "error", "Log level: debug, info, warn, error")
	fs.StringVar(&o.LogFile, "log-file", "", "Append load errors to this CBOR log file")
}

// path resolves the catalog location.
func (o *CatalogOptions) path() string {
	if o.Catalog != "" {
		return o.Catalog
	}
	return os.Getenv(CatalogEnv)
}

// source names the catalog for display.
func (o *CatalogOptions) source() string {
	if p := o.path(); p != "" {
		return p
	}
	return "builtin " + catalog.DefaultSource
}

// catalogName is the catalog name used in load error messages.
func catalogName(opts CatalogOptions) string {
	if p := opts.path(); p != "" {
		return filepath.Base(p)
	}
	return catalog.DefaultSource
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

// session carries the loggers built for one command run.
type session struct {
	slog   *slog.Logger
	logger log.Logger
	file   *log.FileLogger
}

func newSession(opts CatalogOptions, stderr io.Writer) (*session, error) {
	level, err := parseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	s := &session{
		slog: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	s.logger = log.NewSlogAdapter(s.slog)

	if opts.LogFile != "" {
		s.file, err = log.NewFileLogger(opts.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		s.logger = log.NewMultiLogger(s.logger, s.file)
		s.slog.Debug("error log opened", "path", opts.LogFile, "session", s.file.SessionID())
	}

	return s, nil
}

func (s *session) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// openCatalog loads and validates the catalog selected by opts.
func (s *session) openCatalog(opts CatalogOptions) (*catalog.Service, error) {
	s.slog.Debug("loading catalog", "source", opts.source())
	svc, err := catalog.Open(opts.path(), s.logger)
	if err != nil {
		return nil, err
	}
	s.slog.Info("catalog loaded", "source", opts.source(), "devices", svc.Len())
	return svc, nil
}

// readRaw reads the unvalidated catalog selected by opts.
func readRaw(opts CatalogOptions) ([]catalog.RawDevice, error) {
	if p := opts.path(); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Builtin()
}

// parseFlags parses args, treating -h as a successful request for help.
func parseFlags(fs *flag.FlagSet, args []string, stderr io.Writer, usage func(io.Writer)) (handled bool, code int) {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(stderr)
			return true, exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		usage(stderr)
		return true, exitCommandError
	}
	return false, exitSuccess
}
