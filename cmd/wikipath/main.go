// Package main provides the wikipath CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wikipath/internal/config"
	"github.com/katalvlaran/wikipath/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cli holds flag values and the state shared by subcommands.
type cli struct {
	configPath   string
	pages        string
	links        string
	db           string
	logLevel     string
	logFormat    string
	skipDangling bool
	human        bool

	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = c.logger.Sync()
	if err == nil {
		return ExitSuccess
	}
	return reportError(stdout, stderr, c.human, err)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "wikipath",
		Short: "Shortest click paths through a Wikipedia link graph",
		Long: `wikipath loads a Wikipedia page table and link list once and answers
"fewest clicks from page A to page B" queries by breadth-first search.

Sources are plain text: one "<id> <title>" per line for pages and one
"<src> <dst>" per line for links. 'wikipath index' snapshots them into
SQLite for faster reloads. All commands output JSON by default.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&c.configPath, "config", config.DefaultFile, "Path to the YAML config file")
	f.StringVar(&c.pages, "pages", "", "Page table file (<id> <title> per line)")
	f.StringVar(&c.links, "links", "", "Link list file (<src> <dst> per line)")
	f.StringVar(&c.db, "db", "", "SQLite snapshot; used instead of the text sources when it exists")
	f.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&c.logFormat, "log-format", "", "Log format (console, json)")
	f.BoolVar(&c.skipDangling, "skip-dangling", false, "Drop links to unknown pages instead of failing")
	f.BoolVar(&c.human, "human", false, "Use human-readable output instead of JSON")

	root.AddCommand(
		newPathCmd(c),
		newLongestCmd(c),
		newMostLinkedCmd(c),
		newPopularCmd(c),
		newIndexCmd(c),
		newStatsCmd(c),
	)

	return root
}

// setup resolves configuration and builds the logger. Precedence, lowest
// first: defaults, config file, .env and environment, flags.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return exitWith(ExitConfigError, "%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		if _, err := os.Stat(c.configPath); errors.Is(err, fs.ErrNotExist) {
			return exitWith(ExitConfigError, "config file %s not found", c.configPath)
		}
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return exitWith(ExitConfigError, "loading config: %v", err)
	}
	if flags.Changed("pages") {
		cfg.Pages = c.pages
	}
	if flags.Changed("links") {
		cfg.Links = c.links
	}
	if flags.Changed("db") {
		cfg.DB = c.db
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = c.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return exitWith(ExitConfigError, "%v", err)
	}

	c.cfg = cfg
	c.logger = logging.NewWithWriter(cfg.Log, c.stderr, zap.String("cmd", cmd.Name()))
	return nil
}

// print writes v as JSON, or calls human when --human is set.
func (c *cli) print(v interface{}, human func(w io.Writer)) error {
	if c.human {
		human(c.stdout)
		return nil
	}
	if err := outputJSON(c.stdout, v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
