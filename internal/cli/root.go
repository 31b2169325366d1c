package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xcpp-labs/xcpp/internal/branding"
	"github.com/xcpp-labs/xcpp/internal/config"
	"github.com/xcpp-labs/xcpp/internal/logging"
	"github.com/xcpp-labs/xcpp/internal/notify"
	"github.com/xcpp-labs/xcpp/internal/vcs"
)

var printer = message.NewPrinter(language.English)

type buildInfo struct {
	version string
	commit  string
	date    string
}

// app carries state shared by the commands of one invocation.
type app struct {
	build       buildInfo
	openStore   func() (*config.Store, error)
	initializer vcs.Initializer

	verbose bool
	debug   bool
	log     *logrus.Logger
}

// NewRootCmd builds the command tree with build info injected via ldflags.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(&app{
		build:       buildInfo{version: version, commit: commit, date: date},
		openStore:   config.DefaultStore,
		initializer: vcs.Git{},
	})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates C++ projects ready for VS Code and a MinGW toolchain:
editor, debugger and build task configuration, a makefile, starter source and a git repository.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{
				Verbose: a.verbose,
				Debug:   a.debug,
				Output:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress details")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log debug details")

	cmd.AddCommand(newNewCmd(a))
	cmd.AddCommand(newStoreCmd(a))
	cmd.AddCommand(newClearCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd(a))
	return cmd
}

// Execute runs the root command and prints any error once on stderr.
func Execute(version, commit, date string) error {
	cmd := NewRootCmd(version, commit, date)
	if err := cmd.Execute(); err != nil {
		notify.Errorf(cmd.ErrOrStderr(), "%v", err)
		return err
	}
	return nil
}

func (a *app) store() (*config.Store, error) {
	s, err := a.openStore()
	if err != nil {
		return nil, fmt.Errorf("locating config file: %w", err)
	}
	return s, nil
}
