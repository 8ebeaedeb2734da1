package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mkloubert/js-strings/builder"
	"github.com/mkloubert/js-strings/coerce"
	"github.com/mkloubert/js-strings/config"
)

func (a *app) subcommand(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: jsstrings %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

func (a *app) format(args []string) error {
	fs := a.subcommand("format", "[-json] <template> [args...]")
	asJSON := fs.Bool("json", false, "decode arguments as JSON; 'undefined' is the undefined value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing template", errUsage)
	}

	values, err := parseValues(fs.Args()[1:], *asJSON)
	if err != nil {
		return err
	}

	f, err := a.cfg.Formatter()
	if err != nil {
		return err
	}
	out, err := f.Format(fs.Arg(0), values...)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) coerce(args []string) error {
	fs := a.subcommand("coerce", "[-json] <value>")
	asJSON := fs.Bool("json", false, "decode the value as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: expected exactly one value", errUsage)
	}

	values, err := parseValues(fs.Args(), *asJSON)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, coerce.AsString(values[0]))
	return nil
}

func (a *app) build(args []string) error {
	fs := a.subcommand("build", "[-init text] <op...>\n\nops: append=x prepend=x line=x insert=N,x remove=N,M replace=a,b setlength=N clear")
	initial := fs.String("init", "", "initial text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sb, err := a.cfg.NewBuilder(*initial)
	if err != nil {
		return err
	}

	for _, op := range fs.Args() {
		if err := applyOp(sb, op); err != nil {
			return err
		}
		if err := sb.Err(); err != nil {
			return err
		}
		a.logger.Debug("applied builder op", slog.String("op", op), slog.Int("length", sb.Len()))
	}

	fmt.Fprint(a.stdout, sb.String())
	if !strings.HasSuffix(sb.String(), "\n") {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func (a *app) transforms() error {
	r, err := a.cfg.Registry()
	if err != nil {
		return err
	}
	for _, name := range r.Names() {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func (a *app) schema() error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}

func (a *app) watch(ctx context.Context, args []string) error {
	if a.configPath == "" {
		return fmt.Errorf("%w: watch requires -config", errUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing template", errUsage)
	}

	values, err := parseValues(args[1:], false)
	if err != nil {
		return err
	}

	w := config.NewWatcher(a.configPath, config.WithLogger(a.logger))
	for cfg := range w.Watch(ctx) {
		cfg.LoadFromEnv()
		f, err := cfg.Formatter()
		if err != nil {
			a.logger.Warn("invalid config", slog.Any("error", err))
			continue
		}
		out, err := f.Format(args[0], values...)
		if err != nil {
			a.logger.Warn("format failed", slog.Any("error", err))
			continue
		}
		fmt.Fprintln(a.stdout, out)
	}
	return nil
}

// parseValues converts command line arguments to values. Without asJSON
// every argument is a string.
func parseValues(args []string, asJSON bool) ([]any, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		if !asJSON {
			values[i] = arg
			continue
		}
		if arg == "undefined" {
			values[i] = coerce.Undefined
			continue
		}

		dec := json.NewDecoder(strings.NewReader(arg))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: argument %d is not JSON: %w", errUsage, i, err)
		}
		values[i] = v
	}
	return values, nil
}

// applyOp runs a single "name=argument" builder operation.
func applyOp(sb *builder.StringBuilder, op string) error {
	name, arg, _ := strings.Cut(op, "=")

	switch name {
	case "append":
		sb.Append(arg)
	case "prepend":
		sb.Prepend(arg)
	case "line":
		sb.AppendLine(arg)
	case "clear":
		sb.Clear()
	case "insert":
		pos, text, err := intAndText(arg)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errUsage, op, err)
		}
		sb.Insert(pos, text)
	case "remove":
		pos, rest, err := intAndText(arg)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errUsage, op, err)
		}
		length, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errUsage, op, err)
		}
		sb.Remove(pos, length)
	case "replace":
		search, with, ok := strings.Cut(arg, ",")
		if !ok {
			return fmt.Errorf("%w: %s: expected search,replacement", errUsage, op)
		}
		sb.Replace(search, with)
	case "setlength":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errUsage, op, err)
		}
		sb.SetLength(n)
	default:
		return fmt.Errorf("%w: unknown operation %q", errUsage, name)
	}
	return nil
}

// intAndText splits "N,rest" into N and rest.
func intAndText(arg string) (int, string, error) {
	num, rest, _ := strings.Cut(arg, ",")
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", err
	}
	return n, rest, nil
}
