package commands

import (
	"os"
	"strings"

	"gcmatome/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	gameTitle    string
	gameHardware []string
	gameJson     bool
)

func init() {
	gameCmd.Flags().StringVar(&gameTitle, "title", "", "The title to give the record, defaults to the page reference.")
	gameCmd.Flags().StringSliceVar(&gameHardware, "hardware", nil, "The hardware the game was listed under.")
	gameCmd.Flags().BoolVar(&gameJson, "json", false, "Print the record as JSON.")
	rootCmd.AddCommand(gameCmd)
}

var gameCmd = &cobra.Command{
	Use:   "game <page id | url>",
	Short: "Scrapes the detail page of a single game.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scraper, err := newScraper(tel, 0)
		if err != nil {
			return err
		}

		ref := catalog.Reference{Kind: catalog.REFERENCE_PAGE_ID, Value: args[0]}
		if strings.Contains(args[0], "/") {
			ref, err = catalog.URLAddressing{}.Reference(args[0])
			if err != nil {
				return err
			}
		}
		title := gameTitle
		if title == "" {
			title = args[0]
		}

		record, err := scraper.Game(cmd.Context(), catalog.GameListing{
			Title:     title,
			Reference: ref,
		}, gameHardware)
		if err != nil {
			return err
		}

		records := []catalog.GameRecord{record}
		if gameJson {
			return writeRecordsJson(os.Stdout, records)
		}
		renderRecords(records)
		return nil
	},
}
