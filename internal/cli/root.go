package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/smcjournal/config"
	"github.com/rustyeddy/smcjournal/internal/logging"
	"github.com/spf13/cobra"
)

// RootConfig holds the global flags and what PersistentPreRunE builds from them.
type RootConfig struct {
	ConfigPath string
	LogLevel   string

	Config *config.Config
	Log    zerolog.Logger

	// now is replaced in tests
	now      func() time.Time
	closeLog func() error
}

// NewRootCmd builds the command tree. Callers that run it should use Execute,
// which also releases the log file when a command fails.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd(time.Now)
	return cmd
}

func newRootCmd(now func() time.Time) (*cobra.Command, *RootConfig) {
	rc := &RootConfig{now: now}

	cmd := &cobra.Command{
		Use:   "smcjournal",
		Short: "SMC trading journal with a daily loss lock",
		Long: `smcjournal logs discretionary trades for one trading session and keeps
running statistics: win rate, cumulative R multiple and a psychology score.

After two losing trades the journal locks for the rest of the session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "path to config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "override log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.load(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return rc.Close()
	}

	cmd.AddCommand(
		newSessionCmd(rc),
		newReplayCmd(rc),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd, rc
}

// Execute runs the root command.
func Execute() error {
	return run(newRootCmd(time.Now))
}

// run executes cmd and closes the log afterwards. cobra skips
// PersistentPostRunE when RunE fails, so the close cannot live there alone.
func run(cmd *cobra.Command, rc *RootConfig) error {
	err := cmd.Execute()
	return errors.Join(err, rc.Close())
}

// Close releases the log file, if one was opened. Safe to call twice.
func (rc *RootConfig) Close() error {
	if rc.closeLog == nil {
		return nil
	}
	closeFn := rc.closeLog
	rc.closeLog = nil
	return closeFn()
}

func (rc *RootConfig) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}

	logger, closeFn, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	rc.Config = cfg
	rc.Log = logger
	rc.closeLog = closeFn
	return nil
}

// reportFormat picks the --format flag over the configured export format.
func (rc *RootConfig) reportFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return rc.Config.Export.Format
}
