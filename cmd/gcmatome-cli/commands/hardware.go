package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hardwareCmd)
}

var hardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Prints every known hardware symbol and the page id of its catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		hw := hardwareTable()

		t := newTable()
		t.AppendHeader(table.Row{"Symbol", "Page"})
		for _, symbol := range hw.Symbols() {
			id, _ := hw.Lookup(symbol)
			t.AppendRow(table.Row{symbol, id})
		}
		t.Render()
	},
}
