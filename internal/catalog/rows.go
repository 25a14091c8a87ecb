package catalog

import (
	"strings"

	"gcmatome/pkg/htmlutil"
)

// TableRows returns the `tr` children of a table body in document order.
func TableRows(table htmlutil.Node) []htmlutil.Node {
	var rows []htmlutil.Node
	for _, child := range table.Children() {
		if child.Tag() == "tr" {
			rows = append(rows, child)
		}
	}
	return rows
}

// titleCell returns the first cell of the row that contains an anchor,
// the column differs between catalog pages so every cell is searched.
func titleCell(row htmlutil.Node) (htmlutil.Node, bool) {
	for _, cell := range row.Children() {
		if _, ok := cell.FindFirst("a"); ok {
			return cell, true
		}
	}
	return nil, false
}

// IsDataRow reports whether the row links to a detail page, rows without
// any anchor (headings, label rows) are not data rows.
func IsDataRow(row htmlutil.Node) bool {
	_, ok := titleCell(row)
	return ok
}

func labelCell(row htmlutil.Node) (htmlutil.Node, bool) {
	cells := row.Children()
	if len(cells) == 0 {
		return nil, false
	}
	return cells[0], true
}

// FindRow returns the first row whose label cell contains keyword.
//
// Matching is by substring so that one keyword covers label variants,
// ex. "発売" matches "発売元", "発売・開発元" and also "発売日".
func FindRow(rows []htmlutil.Node, keyword string) (htmlutil.Node, bool) {
	for _, row := range rows {
		label, ok := labelCell(row)
		if !ok {
			continue
		}
		if strings.Contains(label.Text(), keyword) {
			return row, true
		}
	}
	return nil, false
}

// DetailRows returns the label rows of the basic info table of a detail
// page, which is always the first table on the page.
func DetailRows(doc htmlutil.Document) ([]htmlutil.Node, error) {
	tables := doc.QueryAll("tbody")
	if len(tables) == 0 {
		return nil, &FieldError{
			Field: FIELD_DETAIL_TABLE,
			Kind:  MISSING_TABLE,
		}
	}
	return TableRows(tables[0]), nil
}
