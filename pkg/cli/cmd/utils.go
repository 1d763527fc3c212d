package cmd

import (
	"fmt"

	"github.com/litebase/csvpager/pkg/config"
	"github.com/litebase/csvpager/pkg/dataset"
	"github.com/litebase/csvpager/pkg/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type pageFlags struct {
	page     int
	pageSize int
}

func addPageFlags(flags *pflag.FlagSet, c *config.Config, withPage bool) *pageFlags {
	f := &pageFlags{}

	if withPage {
		flags.IntVarP(&f.page, "page", "p", 1, "Page number, starting at 1")
	}

	flags.IntVarP(&f.pageSize, "page-size", "s", c.PageSize, "Number of rows per page")

	return f
}

// openDataset builds a dataset over the configured storage driver.
func openDataset(cmd *cobra.Command, c *config.Config) (*dataset.Dataset, error) {
	driver, err := storage.NewDriver(cmd.Context(), c)

	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	return dataset.New(driver, c.DataFile), nil
}
