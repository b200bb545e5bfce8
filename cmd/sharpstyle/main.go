package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/monoblaine/sharpstyle/internal/config"
	"github.com/monoblaine/sharpstyle/internal/engine"
	"github.com/monoblaine/sharpstyle/internal/lint"
	"github.com/monoblaine/sharpstyle/internal/log"
	"github.com/monoblaine/sharpstyle/internal/output"
	"github.com/monoblaine/sharpstyle/internal/rule"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/monoblaine/sharpstyle/internal/rules/commaplacement"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: sharpstyle <command> [flags] [files...]

Commands:
  check     Check C# files for style issues (default when given file arguments)
  help      Show help for rules and topics
  init      Generate a default .sharpstyle.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'sharpstyle <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "check":
		return runCheck(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		// Bare file arguments imply the check command.
		return runCheck(os.Args[1:])
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("sharpstyle %s\n", version)
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath  string
		format      string
		noColor     bool
		quiet       bool
		noGitignore bool
		verbose     bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Print progress details to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sharpstyle check [flags] [files...]\n\n"+
			"Check C# files for style issues.\n\n"+
			"Files can be paths, directories (walked recursively for *.cs), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()
	logger := &log.Logger{Enabled: verbose, W: os.Stderr}

	// No file args: check if stdin is a pipe.
	if len(files) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return checkStdin(format, noColor, quiet, configPath, logger)
	}

	return checkFiles(files, configPath, format, noColor, quiet, noGitignore, logger)
}

// checkFiles checks the given file paths and returns the appropriate
// exit code.
func checkFiles(fileArgs []string, configPath, format string, noColor, quiet, noGitignore bool, logger *log.Logger) int {
	useGitignore := !noGitignore
	opts := lint.ResolveOpts{UseGitignore: &useGitignore}
	files, err := lint.ResolveFilesWithOpts(fileArgs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: %v\n", err)
		return 2
	}
	logger.Printf("resolved %d file(s) from %d argument(s)", len(files), len(fileArgs))

	if len(files) == 0 {
		return 0
	}

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: %v\n", err)
		return 2
	}

	runner := &engine.Runner{
		Config: cfg,
		Rules:  rule.All(),
	}

	result := runner.Run(files)
	logger.Printf("checked %d file(s): %d finding(s), %d error(s)",
		len(files), len(result.Diagnostics), len(result.Errors))
	return report(result, format, noColor, quiet)
}

// checkStdin reads from stdin, checks the content, and returns the
// appropriate exit code.
func checkStdin(format string, noColor, quiet bool, configPath string, logger *log.Logger) int {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: reading stdin: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: %v\n", err)
		return 2
	}

	runner := &engine.Runner{
		Config: cfg,
		Rules:  rule.All(),
	}

	result := runner.RunSource("<stdin>", source)
	return report(result, format, noColor, quiet)
}

// report prints a run result and maps it to an exit code.
func report(result *engine.Result, format string, noColor, quiet bool) int {
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "sharpstyle: %v\n", e)
	}

	if len(result.Errors) > 0 && len(result.Diagnostics) == 0 {
		return 2
	}

	if !quiet && len(result.Diagnostics) > 0 {
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: !noColor}
		}

		if err := formatter.Format(os.Stderr, result.Diagnostics); err != nil {
			fmt.Fprintf(os.Stderr, "sharpstyle: error writing output: %v\n", err)
			return 2
		}
	}

	if len(result.Diagnostics) > 0 {
		return 1
	}

	return 0
}

// runInit implements the "init" subcommand: generate .sharpstyle.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sharpstyle init\n\n"+
			"Generate a default .sharpstyle.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "sharpstyle: init takes no arguments\n")
		return 2
	}

	const configFile = ".sharpstyle.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: %s already exists\n", configFile)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "sharpstyle: created %s\n", configFile)
	return 0
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

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Printf("using config %s", configPath)
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		logger.Printf("no config file found, using defaults")
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	logger.Printf("using config %s", discovered)
	return config.Merge(defaults, loaded), nil
}
