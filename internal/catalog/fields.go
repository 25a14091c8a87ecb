package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gcmatome/pkg/htmlutil"
)

const (
	FIELD_GENRE        = "genre"
	FIELD_PUBLISHER    = "publisher"
	FIELD_PUBLISHED_AT = "published_at"
	FIELD_IMAGE_URL    = "image_url"
	FIELD_DETAIL_TABLE = "detail_table"
)

const (
	KEYWORD_GENRE        = "ジャンル"
	KEYWORD_PUBLISHER    = "発売"
	KEYWORD_PUBLISHED_AT = "発売日"
)

// the site lazy loads images, the real url lives in this attribute
const imageUrlAttr = "data-original"

var (
	errNoValueCell = errors.New("no value cell")
	errEmptyValue  = errors.New("empty value")
	errNoDate      = errors.New("no date in value")
)

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

func cleanValue(field, raw string) (string, error) {
	value := strings.TrimSpace(lineBreaks.Replace(raw))
	if value == "" {
		return "", mismatch(field, raw, errEmptyValue)
	}
	return value, nil
}

// valueCell returns the cell right after the label cell of the row found
// for keyword.
func valueCell(rows []htmlutil.Node, field, keyword string) (htmlutil.Node, error) {
	row, ok := FindRow(rows, keyword)
	if !ok {
		return nil, notFound(field, keyword)
	}
	label, _ := labelCell(row)
	value, ok := label.Next()
	if !ok {
		return nil, mismatch(field, label.Text(), errNoValueCell)
	}
	return value, nil
}

func ExtractGenre(rows []htmlutil.Node) (string, error) {
	value, err := valueCell(rows, FIELD_GENRE, KEYWORD_GENRE)
	if err != nil {
		return "", err
	}
	return cleanValue(FIELD_GENRE, value.Text())
}

// ExtractPublisher reads the second cell of the first row labeled with
// "発売". The release date row also contains that keyword, so it is left
// out of the search. Any other label containing "発売" that comes before
// the publisher row still wins, ex. "発売予定".
func ExtractPublisher(rows []htmlutil.Node) (string, error) {
	candidates := make([]htmlutil.Node, 0, len(rows))
	for _, row := range rows {
		if _, isDate := FindRow([]htmlutil.Node{row}, KEYWORD_PUBLISHED_AT); isDate {
			continue
		}
		candidates = append(candidates, row)
	}

	row, ok := FindRow(candidates, KEYWORD_PUBLISHER)
	if !ok {
		return "", notFound(FIELD_PUBLISHER, KEYWORD_PUBLISHER)
	}
	cells := row.Children()
	if len(cells) < 2 {
		return "", mismatch(FIELD_PUBLISHER, row.Text(), errNoValueCell)
	}
	return cleanValue(FIELD_PUBLISHER, cells[1].Text())
}

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

var dateRegex = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)

// ParseDate finds the first date written like "2021年4月1日" in text.
func ParseDate(text string) (Date, error) {
	groups := dateRegex.FindStringSubmatch(text)
	if len(groups) < 4 {
		return Date{}, errNoDate
	}
	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return Date{}, fmt.Errorf("parse year: %w", err)
	}
	month, err := strconv.Atoi(groups[2])
	if err != nil {
		return Date{}, fmt.Errorf("parse month: %w", err)
	}
	day, err := strconv.Atoi(groups[3])
	if err != nil {
		return Date{}, fmt.Errorf("parse day: %w", err)
	}

	d := Date{Year: year, Month: time.Month(month), Day: day}
	// time.Date normalizes out of range values, ex. 2月30日 -> 3月2日
	normalized := d.Time(time.UTC)
	if normalized.Year() != year || normalized.Month() != d.Month || normalized.Day() != day {
		return Date{}, fmt.Errorf("%s is not a calendar date", d)
	}
	return d, nil
}

func ExtractPublishedAt(rows []htmlutil.Node) (Date, error) {
	value, err := valueCell(rows, FIELD_PUBLISHED_AT, KEYWORD_PUBLISHED_AT)
	if err != nil {
		return Date{}, err
	}
	raw := value.Text()
	date, err := ParseDate(raw)
	if err != nil {
		return Date{}, mismatch(FIELD_PUBLISHED_AT, raw, err)
	}
	return date, nil
}

// ExtractImageURL reads the lazy loaded source of the first image found
// anywhere in the rows.
func ExtractImageURL(rows []htmlutil.Node) (string, error) {
	for _, row := range rows {
		img, ok := row.FindFirst("img")
		if !ok {
			continue
		}
		src, ok := img.Attr(imageUrlAttr)
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			raw, _ := img.Attr("src")
			return "", mismatch(FIELD_IMAGE_URL, raw, fmt.Errorf("missing %s attribute", imageUrlAttr))
		}
		return src, nil
	}
	return "", &FieldError{
		Field: FIELD_IMAGE_URL,
		Kind:  FIELD_NOT_FOUND,
		Err:   errors.New("no img in table"),
	}
}
