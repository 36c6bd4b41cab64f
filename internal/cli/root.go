// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion records build metadata shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose bool
	file    string
}

// NewRootCommand assembles the graphplan command tree. Output goes to the
// command's configured writers, so callers may redirect it with SetOut/SetErr.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "graphplan",
		Short:         "graphplan queries dependency and cost graphs described in TOML",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphplan %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "scenario file (TOML)")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		newShowCmd(opts),
		newTopoCmd(opts),
		newMSTCmd(opts),
		newPathCmd(opts),
		newConnectedCmd(opts),
		newReachCmd(opts),
		newClosureCmd(opts),
	)

	return root
}

// Execute runs graphplan with ctx, which callers cancel on interrupt.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
