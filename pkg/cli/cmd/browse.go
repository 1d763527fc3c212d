package cmd

import (
	"github.com/litebase/csvpager/pkg/cli/components"
	"github.com/litebase/csvpager/pkg/config"
	"github.com/litebase/csvpager/pkg/pagination"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func NewBrowseCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the dataset page by page",
		Args:  cobra.NoArgs,
	}

	flags := addPageFlags(cmd.Flags(), c, false)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if _, err := pagination.NewPageRequest(1, flags.pageSize); err != nil {
			return err
		}

		ds, err := openDataset(cmd, c)

		if err != nil {
			return err
		}

		ctx := cmd.Context()

		header, err := ds.Header(ctx)

		if err != nil {
			return err
		}

		total, err := ds.Len(ctx)

		if err != nil {
			return err
		}

		pager, err := components.NewPager(
			header,
			flags.pageSize,
			pagination.TotalPages(total, flags.pageSize),
			func(page int) ([][]string, error) {
				return ds.GetPage(ctx, page, flags.pageSize)
			},
		)

		if err != nil {
			return err
		}

		_, err = tea.NewProgram(
			pager,
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()

		if err != nil {
			return err
		}

		return pager.Err()
	}

	return cmd
}
