package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/csheth/quoteswipe/internal/config"
)

const (
	appName = "quoteswipe"
	tagline = "Swipe through an endless stream of short quotes."
)

var version = "dev"

var errNotTerminal = errors.New("stdin is not a tty")

// CLI is the kong grammar. Global flags override the config file.
type CLI struct {
	Config  string           `help:"Path to a YAML config file." type:"path" placeholder:"PATH"`
	Count   *int             `help:"Number of quotes in the catalog." placeholder:"N"`
	Seed    string           `help:"YAML seed file replacing the built-in quotes." type:"path" placeholder:"PATH"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Swipe   SwipeCmd   `cmd:"" default:"1" help:"Swipe through quotes (default)."`
	Catalog CatalogCmd `cmd:"" help:"Print the generated catalog."`
}

type runEnv struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run parses args, executes the selected command and returns the exit code.
func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description(tagline),
		kong.Vars{"version": fmt.Sprintf("%s %s", appName, version)},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Help(helpPrinter),
		kong.UsageOnError(),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	cfg, err := loadConfig(&cli)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	env := &runEnv{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
	if err := ctx.Run(env); err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func loadConfig(cli *CLI) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if cli.Count != nil {
		cfg.Catalog.TargetCount = *cli.Count
	}
	if cli.Seed != "" {
		cfg.Catalog.SeedFile = cli.Seed
	}
	return cfg, nil
}
