package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/litebase/csvpager/pkg/cli/components"
	"github.com/litebase/csvpager/pkg/cli/styles"
	"github.com/litebase/csvpager/pkg/config"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

func addCommands(cmd *cobra.Command, c *config.Config) {
	cmd.AddCommand(NewBrowseCmd(c))
	cmd.AddCommand(NewHyperCmd(c))
	cmd.AddCommand(NewPageCmd(c))
	cmd.AddCommand(NewVersionCmd())
}

// RootCmd builds the command tree using the configuration found in the
// environment at the time of the call.
func RootCmd() *cobra.Command {
	c := config.NewConfig()

	cmd := &cobra.Command{
		Use:               "csvpager <command> [flags]",
		Short:             "Page through CSV datasets",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Long:              `Serve fixed-size pages of rows from a CSV dataset`,
		SilenceUsage:      true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(
				cmd.OutOrStdout(),
				components.Container(
					styles.TitleStyle.Render(fmt.Sprintf("csvpager - v%s", Version)),
					"For help type \"csvpager help\"",
					components.TabularList([][2]string{
						{"Dataset", c.DataFile},
						{"Storage", c.StorageDriver},
						{"Page size", fmt.Sprintf("%d", c.PageSize)},
					}),
				),
			)
		},
	}

	cmd.PersistentFlags().BoolVar(&c.Debug, "debug", c.Debug, "Log debug output to stderr")
	cmd.PersistentFlags().StringVar(&c.DataFile, "file", c.DataFile, "Path of the CSV dataset")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureLogger(cmd.ErrOrStderr(), c.Debug)
	}

	addCommands(cmd, c)

	return cmd
}

func NewRoot() error {
	return RootCmd().Execute()
}

func configureLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo

	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
