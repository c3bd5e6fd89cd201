// Package main provides the petcode command-line tool for inspecting and
// producing share codes.
//
//	petcode decode [--format json|yaml] CODE
//	petcode encode [--file PATH]
//	petcode keys CODE
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/seerbp/petcode/internal/config"
	"github.com/seerbp/petcode/internal/lookup"
	"github.com/seerbp/petcode/internal/observability"
	"github.com/seerbp/petcode/internal/petcode/codec"
)

const usage = `usage:
  petcode [--config PATH] decode [--format json|yaml] CODE
  petcode [--config PATH] encode [--file PATH]
  petcode [--config PATH] keys CODE
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "petcode: %v\n", err)
		os.Exit(1)
	}
}

// env carries what every subcommand needs.
type env struct {
	codec  *codec.Codec
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("petcode", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SetOutput(io.Discard)
	configPath := flags.String("config", "", "path to configuration file")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return errors.New("missing command\n" + usage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "petcode")
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()
	c, err := codec.New(cfg.Codec.Options()...)
	if err != nil {
		return err
	}

	e := &env{codec: c, logger: logger, stdin: stdin, stdout: stdout}
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "decode":
		return e.decode(cmdArgs)
	case "encode":
		return e.encode(cmdArgs)
	case "keys":
		return e.keys(cmdArgs)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func (e *env) decode(args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	format := flags.StringP("format", "f", "json", "output format: json or yaml")
	if err := flags.Parse(args); err != nil {
		return err
	}
	code, err := singleArg(flags.Args(), "CODE")
	if err != nil {
		return err
	}

	msg, err := e.codec.FromBase64(code)
	if err != nil {
		return err
	}
	e.logger.Debug("decoded share code", zap.Int("pets", len(msg.Pets)))

	m := codec.ToMapping(msg)
	switch *format {
	case "json":
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(e.stdout, "%s\n", out)
		return err
	case "yaml":
		enc := yaml.NewEncoder(e.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", *format)
	}
}

func (e *env) encode(args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	file := flags.String("file", "-", "JSON or YAML mapping to encode; - reads stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		return fmt.Errorf("encode takes no arguments, got %d", flags.NArg())
	}

	var data []byte
	var err error
	if *file == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	m, err := e.codec.ParseMapping(data)
	if err != nil {
		return err
	}
	msg, err := codec.FromMapping(m)
	if err != nil {
		return err
	}
	code, err := e.codec.ToBase64(msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, code)
	return err
}

func (e *env) keys(args []string) error {
	code, err := singleArg(args, "CODE")
	if err != nil {
		return err
	}
	msg, err := e.codec.FromBase64(code)
	if err != nil {
		return err
	}
	for _, k := range lookup.Keys(msg) {
		if _, err := fmt.Fprintln(e.stdout, k); err != nil {
			return err
		}
	}
	return nil
}

func singleArg(args []string, name string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one %s argument, got %d", name, len(args))
	}
	return args[0], nil
}
