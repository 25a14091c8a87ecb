package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <hardware>",
	Short: "Prints the games listed on the catalog page of a hardware.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scraper, err := newScraper(tel, 0)
		if err != nil {
			return err
		}
		listings, err := scraper.Listings(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"#", "Title", "Page"})
		for i, l := range listings {
			t.AppendRow(table.Row{i + 1, l.Title, l.Reference.Value})
		}
		t.Render()
		return nil
	},
}
