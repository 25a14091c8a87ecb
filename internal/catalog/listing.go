package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gcmatome/internal/components/assert"
	"gcmatome/internal/components/telemetry"
	"gcmatome/pkg/htmlutil"
)

const (
	report_listing_extract_row = "listing.extract-row"
)

type ReferenceKind int

const (
	REFERENCE_PAGE_ID ReferenceKind = iota
	REFERENCE_URL
)

// Reference points at a detail page, either by wiki page id or by url.
type Reference struct {
	Kind  ReferenceKind
	Value string
}

func (r Reference) String() string {
	return r.Value
}

// GameListing is one data row of a catalog page.
type GameListing struct {
	Title     string
	Reference Reference
}

// Addressing derives a Reference from the href of a title anchor.
type Addressing interface {
	Reference(href string) (Reference, error)
}

// PageIDAddressing addresses detail pages by the last path segment of the
// link without its extension, ex. "//w.atwiki.jp/gcmatome/pages/123.html"
// -> "123".
type PageIDAddressing struct{}

var pageIdRegex = regexp.MustCompile(`([^/]+)\.[^./]+$`)

func (PageIDAddressing) Reference(href string) (Reference, error) {
	link, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return Reference{}, err
	}
	groups := pageIdRegex.FindStringSubmatch(link.Path)
	if len(groups) < 2 {
		return Reference{}, fmt.Errorf("no page id in '%s'", href)
	}
	return Reference{Kind: REFERENCE_PAGE_ID, Value: groups[1]}, nil
}

// URLAddressing addresses detail pages by absolute url. Protocol relative
// links ("//host/path") get the scheme of Base, or https without a Base.
// Relative links are resolved against Base.
type URLAddressing struct {
	Base *url.URL
}

func NewURLAddressing(base string) (URLAddressing, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return URLAddressing{}, err
	}
	if !parsed.IsAbs() {
		return URLAddressing{}, fmt.Errorf("base url '%s' is not absolute", base)
	}
	return URLAddressing{Base: parsed}, nil
}

func (a URLAddressing) Reference(href string) (Reference, error) {
	link, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return Reference{}, err
	}
	if a.Base != nil {
		link = a.Base.ResolveReference(link)
	} else if link.Scheme == "" && link.Host != "" {
		link.Scheme = "https"
	}
	if (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		return Reference{}, fmt.Errorf("'%s' is not a web link", href)
	}
	return Reference{Kind: REFERENCE_URL, Value: link.String()}, nil
}

// ListingExtractor turns the tables of a catalog page into listings.
type ListingExtractor struct {
	addressing Addressing
	tel        telemetry.API
}

func NewListingExtractor(addressing Addressing, tel telemetry.API) ListingExtractor {
	assert.NotNil(addressing)
	assert.NotNil(tel)
	return ListingExtractor{
		addressing: addressing,
		tel:        telemetry.NewScopedAPI("catalog", tel),
	}
}

func (e ListingExtractor) listing(row htmlutil.Node) (GameListing, error) {
	cell, ok := titleCell(row)
	if !ok {
		return GameListing{}, errors.New("no title cell")
	}
	anchor, _ := cell.FindFirst("a")

	title := strings.TrimSpace(anchor.Text())
	if title == "" {
		return GameListing{}, errors.New("empty title")
	}
	href, ok := anchor.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return GameListing{}, fmt.Errorf("'%s' has no href", title)
	}
	ref, err := e.addressing.Reference(href)
	if err != nil {
		return GameListing{}, fmt.Errorf("reference of '%s': %w", title, err)
	}
	return GameListing{Title: title, Reference: ref}, nil
}

// Extract returns a listing for every data row of every table, in document
// order. Tables are usually one per release year. Rows whose link cannot
// be addressed are reported and skipped.
func (e ListingExtractor) Extract(tables []htmlutil.Node) []GameListing {
	var listings []GameListing
	for _, table := range tables {
		for _, row := range TableRows(table) {
			if !IsDataRow(row) {
				continue
			}
			listing, err := e.listing(row)
			if err != nil {
				e.tel.ReportWarning(report_listing_extract_row, err)
				continue
			}
			e.tel.ReportDebug("found listing", listing.Title, listing.Reference.Value)
			listings = append(listings, listing)
		}
	}
	return listings
}
