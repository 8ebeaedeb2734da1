// Command jsstrings formats templates, coerces values and runs string
// builder operations from the command line.
//
// Usage:
//
//	jsstrings [-config file] [-v] <command> [arguments]
//
// Commands:
//
//	format [-json] <template> [args...]   render a template
//	coerce [-json] <value>                print the text form of a value
//	build [-init text] <ops...>           apply builder operations
//	transforms                            list available transforms
//	schema                                print the config JSON schema
//	watch <template> [args...]            re-render when the config changes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkloubert/js-strings/config"
)

// errUsage marks command line mistakes.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("jsstrings failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// app carries the state shared by all commands.
type app struct {
	cfg        config.Config
	configPath string
	logger     *slog.Logger
	stdout     io.Writer
	stderr     io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jsstrings", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv(config.EnvPrefix+"CONFIG"), "config file (.yaml, .yml, .toml, .json)")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jsstrings [-config file] [-v] <format|coerce|build|transforms|schema|watch> [arguments]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		slog.String("path", *configPath),
		slog.String("newline", cfg.Newline),
		slog.Bool("extended", cfg.Extended))

	a := &app{
		cfg:        cfg,
		configPath: *configPath,
		logger:     logger,
		stdout:     stdout,
		stderr:     stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "format":
		return a.format(cmdArgs)
	case "coerce":
		return a.coerce(cmdArgs)
	case "build":
		return a.build(cmdArgs)
	case "transforms":
		return a.transforms()
	case "schema":
		return a.schema()
	case "watch":
		return a.watch(ctx, cmdArgs)
	}
	fs.Usage()
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// loadConfig reads the config file, if any, and applies environment
// overrides.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()
	return cfg, nil
}
