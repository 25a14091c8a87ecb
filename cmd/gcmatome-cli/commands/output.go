package commands

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"gcmatome/internal/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func orDash[T any](value *T, format func(T) string) string {
	if value == nil {
		return "-"
	}
	return format(*value)
}

func str(s string) string {
	return s
}

func renderRecords(records []catalog.GameRecord) {
	t := newTable()
	t.AppendHeader(table.Row{"Title", "Hardware", "Published", "Publisher", "Genre", "Image"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Title,
			strings.Join(r.Hardware, ", "),
			orDash(r.PublishedAt, catalog.Date.String),
			orDash(r.Publisher, str),
			orDash(r.Genre, str),
			orDash(r.ImageURL, str),
		})
	}
	t.AppendFooter(table.Row{"Total", len(records)})
	t.Render()
}

type recordJson struct {
	Title       string   `json:"title"`
	Genre       *string  `json:"genre"`
	PublishedAt *string  `json:"published_at"`
	Publisher   *string  `json:"publisher"`
	Hardware    []string `json:"hardware"`
	ImageURL    *string  `json:"image_url"`
}

func writeRecordsJson(out io.Writer, records []catalog.GameRecord) error {
	list := make([]recordJson, len(records))
	for i, r := range records {
		var publishedAt *string
		if r.PublishedAt != nil {
			s := r.PublishedAt.String()
			publishedAt = &s
		}
		hw := r.Hardware
		if hw == nil {
			hw = []string{}
		}
		list[i] = recordJson{
			Title:       r.Title,
			Genre:       r.Genre,
			PublishedAt: publishedAt,
			Publisher:   r.Publisher,
			Hardware:    hw,
			ImageURL:    r.ImageURL,
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(list)
}
