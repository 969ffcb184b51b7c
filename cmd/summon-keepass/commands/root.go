package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/summon-keepass/internal/config"
	dserrors "github.com/systmms/summon-keepass/internal/errors"
	"github.com/systmms/summon-keepass/internal/logging"
	"github.com/systmms/summon-keepass/internal/resolve"
	"github.com/systmms/summon-keepass/internal/secretstores"
)

// Options wires the command to its environment.
type Options struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
	Sources config.Sources
	Opener  resolve.StoreOpener
	Logger  *logging.Logger
}

// DefaultOptions binds the command to the real process.
func DefaultOptions(version string) Options {
	logger := logging.New(logging.DebugEnabled(os.Getenv(logging.DebugEnvVar)), false)
	return Options{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Sources: config.DefaultSources(logger),
		Opener:  secretstores.NewKeePassOpener(logger),
		Logger:  logger,
	}
}

// NewRootCommand builds the summon-keepass command. Flag parsing is left to
// the command itself: only a first argument of -h/--help or -V/--version is
// treated as a flag, everything else is a secret path.
func NewRootCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:                programName + " <SECRET_PATH>",
		Short:              "Summon provider for KeePass databases",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return dserrors.NoInput()
			}

			switch args[0] {
			case "-V", "--version":
				fmt.Fprintln(cmd.OutOrStdout(), opts.Version)
				return nil
			case "-h", "--help":
				fmt.Fprint(cmd.OutOrStdout(), helpText(opts.Version))
				return nil
			}

			resolver := resolve.New(opts.Sources, opts.Opener, opts.Logger)
			outcome := resolver.Resolve(cmd.Context(), args[0])
			if outcome.Err != nil {
				return outcome.Err
			}

			_, err := io.WriteString(cmd.OutOrStdout(), outcome.Value)
			return err
		},
	}

	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	cmd.SetArgs([]string{})
	return cmd
}

// Run executes the command with args, writes any failure to stderr and
// returns the process exit code.
func Run(args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}

	cmd := NewRootCommand(opts)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(opts.Stderr, err)
	}
	return dserrors.ExitCode(err)
}
