// Package cli implements the sharedkit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sharedkit/internal/config"
	"github.com/mesh-intelligence/sharedkit/internal/logging"
	"github.com/mesh-intelligence/sharedkit/internal/palette"
	"github.com/mesh-intelligence/sharedkit/internal/paths"
	pkgsqlite "github.com/mesh-intelligence/sharedkit/pkg/sqlite"
	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by every subcommand of one root command. It is
// filled in by the root PersistentPreRunE.
type app struct {
	flags     rootFlags
	configDir string
	cfg       *config.Config
	logger    *slog.Logger
	painter   *palette.Painter
}

// NewRootCmd creates the top-level "sharedkit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sharedkit",
		Short: "Run the shared-helper consumers and record their tallies",
		Long: "sharedkit runs the consumers of the shared helper package (container,\n" +
			"processor, colors, greet and sample items) and can record the item\n" +
			"tallies they compute in a local SQLite store.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: .sharedkit or the per-user config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: .sharedkit-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newGreetCmd(a))
	root.AddCommand(newItemsCmd(a))
	root.AddCommand(newCountCmd(a))
	root.AddCommand(newColorsCmd(a))
	root.AddCommand(newTallyCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves the config directory, loads config.yaml and builds the
// logger and painter.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.painter = painterFor(cmd.OutOrStdout(), a.flags.jsonMode)

	// version must work even with a broken config.
	if cmd.Name() == "version" {
		a.cfg = ptr(config.Default())
		a.logger = logging.Discard()
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := config.Load(configDir)
	if err != nil {
		return configError(err)
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.flags.logLevel != "" {
		level = a.flags.logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return userError(err)
	}
	a.logger = logger.With(slog.String("command", cmd.Name()))
	a.logger.Debug("config loaded", slog.String("config_dir", configDir))
	return nil
}

// configError classifies a config.Load failure: an invalid file is the
// user's to fix, anything else (such as an unreadable file) is a system error.
func configError(err error) error {
	err = fmt.Errorf("load config: %w", err)
	if errors.Is(err, config.ErrInvalidConfig) {
		return userError(err)
	}
	return sysError(err)
}

// painterFor colors output only when it goes to a terminal and JSON mode is
// off.
func painterFor(w io.Writer, jsonMode bool) *palette.Painter {
	f, ok := w.(*os.File)
	if jsonMode || !ok {
		return palette.New(false)
	}
	return palette.ForFile(f)
}

// resolveDataDir applies flag > config > env > default precedence.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
}

// openStore attaches the configured tally store. The caller must Detach it.
func (a *app) openStore() (types.Store, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	store := pkgsqlite.NewBackend()
	if err := store.Attach(a.cfg.StoreConfig(dataDir)); err != nil {
		return nil, sysError(fmt.Errorf("attach store: %w", err))
	}
	a.logger.Debug("store attached", slog.String("data_dir", dataDir))
	return store, nil
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
// Errors without an explicit code, such as cobra argument errors, are user
// errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}

func ptr[T any](v T) *T { return &v }
