package commands

import (
	"log/slog"
	"os"
	"time"

	"gcmatome/internal/components/serviceutil"
	"gcmatome/internal/components/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	scrapeJson        bool
	scrapeMetricsAddr string
	scrapeConcurrency int
)

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeJson, "json", false, "Print the records as JSON.")
	scrapeCmd.Flags().StringVar(&scrapeMetricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address while scraping, ex. ':9090'.")
	scrapeCmd.Flags().IntVar(&scrapeConcurrency, "concurrency", 0, "Maximum detail pages fetched at once, overrides the config.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [hardware...]",
	Short: "Scrapes every game of the given hardware, or of every known hardware.",
	RunE: func(cmd *cobra.Command, args []string) error {
		api := tel
		if scrapeMetricsAddr != "" {
			reg := prometheus.NewRegistry()
			metrics, err := telemetry.NewMetricsAPI(tel, reg)
			if err != nil {
				return err
			}
			api = metrics
			go serviceutil.StartHttpServer(cmd.Context(), scrapeMetricsAddr, telemetry.MetricsHandler(reg))
		}

		scraper, err := newScraper(api, scrapeConcurrency)
		if err != nil {
			return err
		}

		symbols := args
		if len(symbols) == 0 {
			symbols = hardwareTable().Symbols()
		}

		t1 := time.Now()
		records, err := scraper.ScrapeHardware(cmd.Context(), symbols...)
		t2 := time.Now()
		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds(), "records", len(records))

		if records != nil {
			if scrapeJson {
				if err := writeRecordsJson(os.Stdout, records); err != nil {
					return err
				}
			} else {
				renderRecords(records)
			}
		}
		return err
	},
}
