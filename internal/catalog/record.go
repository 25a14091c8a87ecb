package catalog

import (
	"errors"
	"fmt"
	"slices"

	"gcmatome/internal/components/assert"
	"gcmatome/internal/components/telemetry"
	"gcmatome/pkg/htmlutil"
)

const (
	report_builder_extract_field = "builder.extract-field"
	report_builder_detail_table  = "builder.detail-table"
)

// GameRecord is one game of the catalog. Every field except Title may be
// absent and consumers must handle that.
type GameRecord struct {
	Title       string
	Genre       *string
	PublishedAt *Date
	Publisher   *string
	// Hardware is supplied by the caller, it is never scraped from the
	// detail page.
	Hardware []string
	ImageURL *string
}

// Builder turns the label rows of a detail table into a GameRecord.
type Builder struct {
	tel telemetry.API
}

func NewBuilder(tel telemetry.API) Builder {
	assert.NotNil(tel)
	return Builder{tel: telemetry.NewScopedAPI("catalog", tel)}
}

// safely runs one extractor, a panic inside it only loses that field.
func safely[T any](field string, extract func([]htmlutil.Node) (T, error), rows []htmlutil.Node) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mismatch(field, "", fmt.Errorf("panic: %v", r))
		}
	}()
	return extract(rows)
}

func resolve[T any](field string, value T, err error, errs *[]*FieldError) *T {
	if err == nil {
		return &value
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		fieldErr = &FieldError{Field: field, Kind: SHAPE_MISMATCH, Err: err}
	}
	*errs = append(*errs, fieldErr)
	return nil
}

// Extract builds the record and returns the reason for every absent field
// without reporting anything.
func (b Builder) Extract(title string, hardware []string, rows []htmlutil.Node) (GameRecord, []*FieldError) {
	var errs []*FieldError
	record := GameRecord{
		Title:    title,
		Hardware: slices.Clone(hardware),
	}

	genre, err := safely(FIELD_GENRE, ExtractGenre, rows)
	record.Genre = resolve(FIELD_GENRE, genre, err, &errs)

	publishedAt, err := safely(FIELD_PUBLISHED_AT, ExtractPublishedAt, rows)
	record.PublishedAt = resolve(FIELD_PUBLISHED_AT, publishedAt, err, &errs)

	publisher, err := safely(FIELD_PUBLISHER, ExtractPublisher, rows)
	record.Publisher = resolve(FIELD_PUBLISHER, publisher, err, &errs)

	imageUrl, err := safely(FIELD_IMAGE_URL, ExtractImageURL, rows)
	record.ImageURL = resolve(FIELD_IMAGE_URL, imageUrl, err, &errs)

	return record, errs
}

func (b Builder) report(title string, errs []*FieldError) {
	for _, err := range errs {
		switch err.Kind {
		case FIELD_NOT_FOUND:
			b.tel.ReportDebug("field not found", title, err.Field)
		case MISSING_TABLE:
			b.tel.ReportWarning(report_builder_detail_table, err, title)
		default:
			b.tel.ReportWarning(report_builder_extract_field, err, title, err.Field, err.Raw)
		}
	}
}

// Build always returns a record, fields that could not be extracted are
// absent and reported.
func (b Builder) Build(title string, hardware []string, rows []htmlutil.Node) GameRecord {
	record, errs := b.Extract(title, hardware, rows)
	b.report(title, errs)
	return record
}

// BuildFromDocument builds the record from the first table of a detail
// page. A page without tables yields a record with only the caller
// supplied fields.
func (b Builder) BuildFromDocument(title string, hardware []string, doc htmlutil.Document) GameRecord {
	rows, err := DetailRows(doc)
	if err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			b.report(title, []*FieldError{fieldErr})
		}
		return GameRecord{
			Title:    title,
			Hardware: slices.Clone(hardware),
		}
	}
	return b.Build(title, hardware, rows)
}
