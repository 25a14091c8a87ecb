package atwiki

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gcmatome/internal/catalog"
	"gcmatome/internal/components/assert"
	"gcmatome/internal/components/telemetry"
	"gcmatome/internal/hardware"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	report_scraper_listings = "scraper.listings"
	report_scraper_game     = "scraper.game"
	report_scraper_records  = "scraper.records"
)

// Scraper walks the catalog page of a hardware and every detail page it
// links to.
type Scraper struct {
	client      Client
	hardware    hardware.Table
	builder     catalog.Builder
	listings    catalog.ListingExtractor
	concurrency int
	tel         telemetry.API
}

func NewScraper(client Client, table hardware.Table, concurrency int, tel telemetry.API) Scraper {
	assert.NotNil(tel)
	if concurrency <= 0 {
		concurrency = DefaultConfig().Concurrency
	}
	return Scraper{
		client:      client,
		hardware:    table,
		builder:     catalog.NewBuilder(tel),
		listings:    catalog.NewListingExtractor(catalog.PageIDAddressing{}, tel),
		concurrency: concurrency,
		tel:         telemetry.NewScopedAPI("atwiki", tel),
	}
}

// Listings returns every game on the catalog page of a hardware symbol in
// page order.
func (s Scraper) Listings(ctx context.Context, symbol string) ([]catalog.GameListing, error) {
	ctx, span := tracer.Start(ctx, "scraper:Listings")
	defer span.End()
	span.SetAttributes(attribute.String("hardware", symbol))

	id, err := s.hardware.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	doc, err := s.client.Fetch(ctx, s.client.PageURL(id))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch catalog page")
		return nil, err
	}

	listings := s.listings.Extract(doc.QueryAll("tbody"))
	s.tel.ReportCount(report_scraper_listings, int64(len(listings)))
	return listings, nil
}

// URL returns the address of the detail page a listing points to.
func (s Scraper) URL(listing catalog.GameListing) string {
	if listing.Reference.Kind == catalog.REFERENCE_PAGE_ID {
		return s.client.PageURL(listing.Reference.Value)
	}
	return listing.Reference.Value
}

// Game fetches the detail page of a listing and builds its record,
// hardware is attached as given.
func (s Scraper) Game(ctx context.Context, listing catalog.GameListing, hw []string) (catalog.GameRecord, error) {
	ctx, span := tracer.Start(ctx, "scraper:Game")
	defer span.End()
	span.SetAttributes(attribute.String("title", listing.Title))

	doc, err := s.client.Fetch(ctx, s.URL(listing))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch detail page")
		return catalog.GameRecord{}, err
	}
	return s.builder.BuildFromDocument(listing.Title, hw, doc), nil
}

func (s Scraper) scrapeOne(ctx context.Context, symbol string) ([]catalog.GameRecord, error) {
	listings, err := s.Listings(ctx, symbol)
	if err != nil {
		return nil, err
	}

	hw := []string{strings.ToLower(strings.TrimSpace(symbol))}
	results := make([]*catalog.GameRecord, len(listings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, listing := range listings {
		g.Go(func() error {
			record, err := s.Game(gctx, listing, hw)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.tel.ReportWarning(
					report_scraper_game,
					fmt.Errorf("skip '%s': %w", listing.Title, err),
				)
				return nil
			}
			results[i] = &record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]catalog.GameRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, nil
}

// ScrapeHardware scrapes the catalogs of every symbol and merges games
// that are listed under more than one hardware. A catalog that cannot be
// scraped only loses that hardware, its error is joined into the returned
// error next to the records of the others.
func (s Scraper) ScrapeHardware(ctx context.Context, symbols ...string) ([]catalog.GameRecord, error) {
	ctx, span := tracer.Start(ctx, "scraper:ScrapeHardware")
	defer span.End()

	var all []catalog.GameRecord
	var errList []error
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, err
		}

		records, err := s.scrapeOne(ctx, symbol)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				span.RecordError(ctxErr)
				return nil, ctxErr
			}
			s.tel.ReportBroken(report_scraper_listings, fmt.Errorf("scrape '%s': %w", symbol, err))
			errList = append(errList, fmt.Errorf("%s: %w", symbol, err))
			continue
		}
		all = append(all, records...)
	}

	merged := catalog.Merge(all)
	s.tel.ReportCount(report_scraper_records, int64(len(merged)))

	err := errors.Join(errList...)
	if err != nil {
		span.SetStatus(codes.Error, "some hardware failed")
	}
	return merged, err
}
