package catalog

import (
	"fmt"
	"strings"
	"testing"

	"gcmatome/pkg/htmlutil"
)

func parse(t *testing.T, body string) htmlutil.Document {
	t.Helper()
	doc, err := htmlutil.ParseDocument(strings.NewReader(
		fmt.Sprintf("<html><body>%s</body></html>", body),
	))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

// labelTable renders a single label table out of label/value pairs.
func labelTable(pairs ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("<table><tbody>")
	for _, p := range pairs {
		fmt.Fprintf(&sb, "<tr><th>%s</th><td>%s</td></tr>", p[0], p[1])
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

func rows(t *testing.T, body string) []htmlutil.Node {
	t.Helper()
	rows, err := DetailRows(parse(t, body))
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func ptr[T any](v T) *T {
	return &v
}
