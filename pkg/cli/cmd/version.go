package cmd

import (
	"fmt"

	"github.com/litebase/csvpager/pkg/cli/components"
	"github.com/litebase/csvpager/pkg/cli/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version number of the CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			style := lipgloss.NewStyle().
				Background(styles.PrimaryBackgroundColor).
				Foreground(styles.PrimaryForegroundColor).
				Padding(0, 1)

			fmt.Fprint(
				cmd.OutOrStdout(),
				components.Container(style.Render(fmt.Sprintf("csvpager v%s", Version))),
			)

			return nil
		},
	}
}
