package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Option structs for subcommands that have flags
type CheckOptions struct {
	ConfigPath string
	NoColor    bool
	NoRewrite  bool
	JSON       bool
	NoProgress bool
}

type DocOptions struct {
	ConfigPath string
	NoColor    bool
}

type QueryOptions struct {
	ConfigPath string
	NoColor    bool
}

type WatchOptions struct {
	ConfigPath string
	NoColor    bool
	JSON       bool
}

func defaultConfigPath() string {
	if p := os.Getenv("SRSLINT_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("srslint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseCheckArgs(args []string, ui UI) (CheckOptions, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CheckOptions
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to the config file")
	fs.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "alias for -config")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors in the report")
	fs.BoolVar(&opts.NoRewrite, "no-rewrite", false, "Skip rewrite suggestions even if enabled in the config")
	fs.BoolVar(&opts.JSON, "json", false, "Print the report as JSON")
	fs.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress bar")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s check [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Analyze all SRS documents of the input folder and print the report.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("check command takes no arguments")
	}

	return opts, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to the config file")
	fs.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "alias for -config")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] <file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Analyze a single document and show per-sentence token details.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("doc command needs exactly one argument: <file>")
	}

	path := fs.Arg(0)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return opts, "", fmt.Errorf("file not found: %s", path)
	}

	return opts, path, nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to the config file")
	fs.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "alias for -config")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive mode: type a sentence, see its detection result.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

func parseWatchArgs(args []string, ui UI) (WatchOptions, error) {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts WatchOptions
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to the config file")
	fs.StringVar(&opts.ConfigPath, "c", defaultConfigPath(), "alias for -config")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&opts.JSON, "json", false, "Print per-document reports as JSON")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s watch [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Watch the input folder and analyze documents as they appear.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Linguistic quality checker for SRS documents\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  check     Analyze all documents of the input folder.\n")
		_, _ = fmt.Fprintf(output, "  doc       Analyze one document, show per-sentence details.\n")
		_, _ = fmt.Fprintf(output, "  query     Enter interactive query mode.\n")
		_, _ = fmt.Fprintf(output, "  watch     Analyze documents as they appear in the input folder.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version information.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
