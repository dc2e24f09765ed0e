package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/BurntSushi/toml"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/lintcoach"
	"github.com/jeduden/lintcoach/internal/config"
	"github.com/jeduden/lintcoach/internal/engine"
	"github.com/jeduden/lintcoach/internal/lint"
	"github.com/jeduden/lintcoach/internal/log"
	"github.com/jeduden/lintcoach/internal/output"
	"github.com/jeduden/lintcoach/internal/style"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: lintcoach <tool> [flags] [reports...]
       lintcoach <command> [flags]

Tools:
  eslint         Format an ESLint JSON report
  stylelint      Format a Stylelint JSON report
  htmlvalidate   Format an html-validate JSON report

Commands:
  help      Show help for tools
  init      Generate a default .lintcoach.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'lintcoach <tool> --help' for the flags of a tool.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	}

	tool, err := lint.ParseTool(first)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: unknown command %q\n\n%s", first, usageText)
		return 2
	}
	return runFormat(tool, os.Args[2:])
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("lintcoach %s\n", version)
}

// formatOptions are the flags shared by every tool subcommand.
type formatOptions struct {
	configPath string
	format     string
	color      string
	noColor    bool
	quiet      bool
	verbose    bool
}

// runFormat implements the tool subcommands: decode reports and print them.
func runFormat(tool lint.Tool, args []string) int {
	fs := flag.NewFlagSet(string(tool), flag.ContinueOnError)
	var opts formatOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", output.FormatStylish, "Output format: stylish, compact, json")
	fs.StringVar(&opts.color, "color", "", "Color output: auto, always, never (default from config)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the report; only set the exit code")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lintcoach %s [flags] [reports...]\n\n"+
			"Print a %s JSON report with tips for fixing each problem.\n\n"+
			"Reports can be paths, directories (walked recursively for *.json), or glob patterns.\n"+
			"With no report arguments, reads from stdin if piped.\n\n"+
			"Flags:\n", tool, tool)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := &log.Logger{Enabled: opts.verbose, W: os.Stderr}

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
		return 2
	}

	formatter, err := newFormatter(tool, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
		return 2
	}

	runner := &engine.Runner{Tool: tool, Config: cfg, Log: logger}

	var result *engine.Result
	reports := fs.Args()
	if len(reports) == 0 {
		if !isStdinPipe() {
			return 0
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lintcoach: reading stdin: %v\n", err)
			return 2
		}
		result = runner.RunSource("<stdin>", data)
	} else {
		files, err := lint.ResolveFiles(reports)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}
		logger.Printf("resolved %d reports", len(files))
		result = runner.Run(files)
	}

	return report(formatter, result, opts.quiet)
}

// report prints result and returns the exit code.
func report(formatter output.Formatter, result *engine.Result, quiet bool) int {
	if err := result.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
		if len(result.Results) == 0 {
			return 2
		}
	}

	if !quiet {
		if err := formatter.Format(os.Stdout, result.Results); err != nil {
			fmt.Fprintf(os.Stderr, "lintcoach: error writing output: %v\n", err)
			return 2
		}
	}

	if result.Problems() > 0 {
		return 1
	}
	return 0
}

// newFormatter builds the formatter for tool. --no-color wins over
// --color, which wins over the config file.
func newFormatter(tool lint.Tool, cfg *config.Config, opts formatOptions) (output.Formatter, error) {
	modeName := cfg.Color
	if opts.color != "" {
		modeName = opts.color
	}
	if opts.noColor {
		modeName = string(style.Never)
	}
	mode, err := style.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	st := style.ForMode(mode, os.Stdout.Fd())
	return output.New(tool, opts.format, st, cfg.Tips(tool))
}

// runInit implements the "init" subcommand: generate a config file.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	var asTOML bool
	fs.BoolVar(&asTOML, "toml", false, "Write .lintcoach.toml instead of .lintcoach.yml")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lintcoach init [--toml]\n\n"+
			"Generate a default config file in the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "lintcoach: init takes no arguments\n")
		return 2
	}

	configFile := config.FileName
	if asTOML {
		configFile = ".lintcoach.toml"
	}

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %s already exists\n", configFile)
		return 2
	}

	data, err := marshalDefaults(asTOML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "lintcoach: created %s\n", configFile)
	return 0
}

func marshalDefaults(asTOML bool) ([]byte, error) {
	cfg := config.Defaults()
	if !asTOML {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string, logger *log.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	path := configPath
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			if discovered, err := config.Discover(cwd); err == nil {
				path = discovered
			}
		}
	}

	if path == "" {
		logger.Printf("config: built-in defaults")
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Printf("config: %s", path)

	cfg := config.Merge(defaults, loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

const helpUsageText = `Usage: lintcoach help <topic>

Topics:
  tools [name]   Show how to produce and read each tool's report
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "tools", "tool":
		if len(args) == 1 {
			return listAllTools()
		}
		return showTool(args[1])
	default:
		fmt.Fprintf(os.Stderr, "lintcoach: help: unknown topic %q\n", args[0])
		return 2
	}
}

func listAllTools() int {
	tools, err := lintcoach.ListTools()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
		return 2
	}

	for _, t := range tools {
		fmt.Printf("%-14s %s\n", t.ID, t.Description)
	}
	return 0
}

func showTool(query string) int {
	content, err := lintcoach.LookupTool(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lintcoach: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
