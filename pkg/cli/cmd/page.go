package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/litebase/csvpager/pkg/cli/components"
	"github.com/litebase/csvpager/pkg/config"
	"github.com/litebase/csvpager/pkg/pagination"

	"github.com/spf13/cobra"
)

const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatTable = "table"
)

func NewPageCmd(c *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print one page of the dataset",
		Args:  cobra.NoArgs,
	}

	flags := addPageFlags(cmd.Flags(), c, true)
	cmd.Flags().StringVarP(&format, "format", "f", FormatTable, "Output format: table, json or csv")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if format != FormatTable && format != FormatJSON && format != FormatCSV {
			return fmt.Errorf("%w: unknown format %q", pagination.ErrInvalidArgument, format)
		}

		ds, err := openDataset(cmd, c)

		if err != nil {
			return err
		}

		rows, err := ds.GetPage(cmd.Context(), flags.page, flags.pageSize)

		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch format {
		case FormatJSON:
			return writeJSON(out, rows)
		case FormatCSV:
			return writeCSV(out, rows)
		}

		header, err := ds.Header(cmd.Context())

		if err != nil {
			return err
		}

		if len(rows) == 0 {
			fmt.Fprintln(out, components.InfoAlert(fmt.Sprintf("Page %d is past the end of the dataset", flags.page)))

			return nil
		}

		fmt.Fprint(out, components.Container(components.Table(header, rows)))

		return nil
	}

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func writeCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.WriteAll(rows); err != nil {
		return err
	}

	return writer.Error()
}
