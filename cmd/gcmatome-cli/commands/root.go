package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gcmatome/internal/components/configutil"
	"gcmatome/internal/components/telemetry"
	"gcmatome/internal/hardware"
	"gcmatome/internal/scrapers/atwiki"

	"github.com/spf13/cobra"
)

type Config struct {
	atwiki.Config
	// Hardware adds or replaces catalog page ids, an empty id removes a symbol.
	Hardware map[string]string `json:"hardware"`
	Verbose  bool              `json:"verbose"`
}

var (
	configPath string
	verbose    bool

	cfg Config
	tel telemetry.API = telemetry.SlogAPI{}
)

var rootCmd = &cobra.Command{
	Use:   "gcmatome-cli",
	Short: "gcmatome-cli scrapes the game catalogs of the gcmatome wiki.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		telemetry.InitSlog(verbose || cfg.Verbose)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", envOr("GCMATOME_CONFIG", "gcmatome.json5"), "The json5 config file, a missing file means defaults.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", envBool("GCMATOME_VERBOSE"), "Enable debug logging.")
}

func envOr(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}

func loadConfig(path string) (Config, error) {
	config, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{Config: atwiki.DefaultConfig()}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return config, nil
}

func hardwareTable() hardware.Table {
	return hardware.Default().With(cfg.Hardware)
}

func newScraper(api telemetry.API, concurrency int) (atwiki.Scraper, error) {
	client, err := atwiki.NewClient(cfg.Config, api)
	if err != nil {
		return atwiki.Scraper{}, err
	}
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}
	return atwiki.NewScraper(client, hardwareTable(), concurrency, api), nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
