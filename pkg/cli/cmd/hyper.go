package cmd

import (
	"github.com/litebase/csvpager/pkg/config"

	"github.com/spf13/cobra"
)

func NewHyperCmd(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hyper",
		Short: "Print one page with navigation metadata as JSON",
		Args:  cobra.NoArgs,
	}

	flags := addPageFlags(cmd.Flags(), c, true)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ds, err := openDataset(cmd, c)

		if err != nil {
			return err
		}

		hyper, err := ds.GetHyper(cmd.Context(), flags.page, flags.pageSize)

		if err != nil {
			return err
		}

		return writeJSON(cmd.OutOrStdout(), hyper)
	}

	return cmd
}
