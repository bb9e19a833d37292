package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

const (
	exitWrite = 1
	exitUsage = 2
	exitInput = 2
)

// exitError ends the command with code; whatever there was to say has
// already been written to standard error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode is checked by main.
func (e *exitError) ExitCode() int {
	return e.code
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "jfilter: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	errlog := log.New(stderr, "", 0)

	flagSet := pflag.NewFlagSet("jfilter", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	var includeKeys []string
	flagSet.StringArrayVar(&includeKeys, "include-keys", nil, "`key`s to keep in each record, in order")
	where := flagSet.String("where", "", "condition `expr`ession records must satisfy, e.g. 'age>=18 and country==IL'")
	lenient := flagSet.Bool("jsonc", false, "accept comments and trailing commas in the input")
	verbose := flagSet.BoolP("verbose", "v", false, "log parsed conditions and record counts to standard error")
	flagSet.BoolP("help", "h", false, "show help")

	usage := func() {
		fmt.Fprintf(stderr, "Usage:\n  jfilter <path> [--include-keys key...] [--where expr] [flags]\n\nFlags:\n%s", flagSet.FlagUsages())
	}
	usageError := func(err error) error {
		errlog.Printf("jfilter: %v", err)
		usage()
		return &exitError{code: exitUsage, err: err}
	}

	args, err := expandMulti(args, "--include-keys")
	if err != nil {
		return usageError(err)
	}
	if err := flagSet.Parse(args); err != nil {
		return usageError(err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		usage()
		return nil
	}
	if flagSet.NArg() != 1 {
		return usageError(fmt.Errorf("expected one input path, got %d", flagSet.NArg()))
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	elems, err := readArray(flagSet.Arg(0), stdin, *lenient)
	if errors.Is(err, errNotArray) {
		errlog.Print("Input JSON must be an array of objects")
		return &exitError{code: exitInput, err: err}
	}
	if err != nil {
		errlog.Printf("Failed to read JSON: %v", err)
		return &exitError{code: exitInput, err: err}
	}

	conds := parseWhere(*where)
	for i, c := range conds {
		logger.Debug("condition", "index", i, "key", c.key, "op", c.op.String(), "value", c.value.String(), "connective", c.connective.String())
	}

	out := filterRecords(elems, conds, includeKeys)
	logger.Debug("filtered", "elements", len(elems), "conditions", len(conds), "kept", len(out), "include_keys", includeKeys)

	bio := bufio.NewWriter(stdout)
	writeJSON(bio, out)
	if err := bio.Flush(); err != nil {
		errlog.Printf("Could not write output: %v", err)
		return &exitError{code: exitWrite, err: err}
	}
	return nil
}

// readArray decodes the array at path, "-" being standard input. With
// lenient set the input may use JSONC comments and trailing commas.
func readArray(path string, stdin io.Reader, lenient bool) ([]interface{}, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if lenient {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(jsonc.ToJSON(data))
	}
	return newDecoder(r).decodeArray()
}
