// Package main is a command line tool that binds runtime flags to demo
// game settings and applies updates from the command line, a watched file
// or stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/apstndb/flagbind/binding"
	"github.com/apstndb/flagbind/enums"
	"github.com/apstndb/flagbind/transport"
)

type globalOptions struct {
	Flagbind flagbindOptions `group:"flagbind"`
}

// We can't use `default` because flagbind uses multiple flags.NewParser() to process config files and flags.
type flagbindOptions struct {
	ConfigFile string            `long:"config-file" short:"c" env:"FLAGBIND_CONFIG_FILE" description:"Apply flag values from a YAML or JSON file."`
	Watch      bool              `long:"watch" short:"w" description:"Keep applying changes to --config-file until interrupted."`
	Stdin      bool              `long:"stdin" description:"Apply name=value updates read from stdin, one per line. A bare name resets the flag."`
	Set        map[string]string `long:"set" key-value-delimiter:"=" description:"Set flags e.g. --set=spawn_z_offset=150 --set=quest_mode=ENDLESS"`
	Reset      []string          `long:"reset" description:"Reset a flag to its default."`
	LogLevel   string            `long:"log-level" env:"FLAGBIND_LOG_LEVEL" description:"Log level." choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR"`
	LogFormat  string            `long:"log-format" description:"Log format."`
	Strict     bool              `long:"strict" description:"Fail on updates for unknown flags instead of ignoring them."`
	Show       bool              `long:"show" description:"Print the flag bindings and exit."`
	NoColor    bool              `long:"no-color" description:"Disable colored output."`
	Help       bool              `long:"help" short:"h" hidden:"true"`
}

func addLogFormatChoices(parser *flags.Parser) {
	parser.Groups()[0].Find("flagbind").FindOptionByLongName("log-format").Choices =
		lo.Map(enums.LogFormatValues(), func(f enums.LogFormat, _ int) string { return f.String() })
}

var usageDescription = heredoc.Doc(`
	Binds runtime flags to demo game settings.

	Updates are applied in this order: --reset and --set, then --config-file
	and --stdin concurrently. Each applied update is echoed as "name = value".
`)

const cnfFileName = ".flagbind.cnf"

type app struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	configFiles []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		configFiles: configFilePaths(),
	}
	err := a.run(ctx, os.Args[1:])
	var exitCodeErr *ExitCodeError
	if err != nil && !errors.As(err, &exitCodeErr) {
		fmt.Fprintf(os.Stderr, "flagbind: %v\n", err)
	}
	os.Exit(GetExitCode(err))
}

func (a *app) parseOptions(args []string) (*flagbindOptions, error) {
	var gopts globalOptions

	// process config files at first
	configFileParser := flags.NewParser(&gopts, flags.Default)
	addLogFormatChoices(configFileParser)
	if err := readConfigFile(configFileParser, a.configFiles); err != nil {
		return nil, fmt.Errorf("invalid config file format: %w", err)
	}

	// then, process environment variables and command line options
	// use another parser to process environment variables with higher precedence than configuration files
	flagParser := flags.NewParser(&gopts, flags.PassDoubleDash)
	addLogFormatChoices(flagParser)

	parserForHelp := flags.NewParser(&globalOptions{}, flags.Default)
	parserForHelp.LongDescription = usageDescription
	addLogFormatChoices(parserForHelp)

	if _, err := flagParser.ParseArgs(args); err != nil {
		fmt.Fprintf(a.stderr, "Invalid options: %v\n", err)
		parserForHelp.WriteHelp(a.stderr)
		return nil, NewExitCodeError(exitCodeUsage)
	} else if gopts.Flagbind.Help {
		parserForHelp.WriteHelp(a.stdout)
		return nil, nil
	}

	opts := gopts.Flagbind
	if opts.Watch && opts.ConfigFile == "" {
		fmt.Fprintf(a.stderr, "Invalid options: --watch requires --config-file\n")
		return nil, NewExitCodeError(exitCodeUsage)
	}
	return &opts, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	opts, err := a.parseOptions(args)
	if err != nil || opts == nil {
		return err
	}

	level, err := parseLogLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	format := enums.LogFormatText
	if opts.LogFormat != "" {
		if format, err = enums.LogFormatString(opts.LogFormat); err != nil {
			return err
		}
	}
	logger, flush := newLogger(a.stderr, format, level)
	defer flush()

	d, err := newDemo(
		binding.WithLogger(logger),
		binding.WithUnboundPolicy(lo.Ternary(opts.Strict, binding.UnboundError, binding.UnboundIgnore)),
	)
	if err != nil {
		return err
	}

	if opts.Show {
		return writeBindings(a.stdout, d.engine.Bindings())
	}

	echo := newUpdateEcho(a.stdout, d.engine, opts.NoColor)

	updates := make(map[string]*string, len(opts.Set)+len(opts.Reset))
	for _, name := range opts.Reset {
		updates[name] = nil
	}
	for name, value := range opts.Set {
		updates[name] = lo.ToPtr(value)
	}
	if err := d.engine.ApplyAll(updates); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(updates)) {
		echo.print(name, updates[name] == nil)
	}

	var sources []transport.Source
	onError := lo.Ternary[transport.ErrorHandler](opts.Strict, transport.StopOnError, nil)
	if opts.ConfigFile != "" {
		sources = append(sources, &transport.FileSource{
			Fs:      afero.NewOsFs(),
			Path:    opts.ConfigFile,
			Watch:   opts.Watch,
			OnError: onError,
			Logger:  logger,
		})
	}
	if opts.Stdin {
		if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(a.stderr, "Reading updates from stdin; press Ctrl-D to finish.")
		}
		sources = append(sources, &transport.LineSource{
			Reader:  a.stdin,
			OnError: onError,
			Logger:  logger,
		})
	}

	return transport.Run(ctx, echo.wrap(d.engine.ApplyUpdate), sources...)
}

func configFilePaths() []string {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	return append(cnfFiles, filepath.Join(cwd, cnfFileName))
}

func readConfigFile(parser *flags.Parser, cnfFiles []string) error {
	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := os.Stat(cnfFile); err != nil {
			continue
		}
		if err := iniParser.ParseFile(cnfFile); err != nil {
			return err
		}
	}

	return nil
}
