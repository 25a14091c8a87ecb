package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = `<html><body>
<table><tbody>
  <tr>
    <th>ジャンル</th>
    <td>RPG
    </td>
  </tr>
  <tr>
    <td><img src="blank.gif" data-original="https://img.example/cover.jpg"></td>
    <td><a href="//w.atwiki.jp/gcmatome/pages/123.html">Title <b>X</b></a></td>
  </tr>
</tbody></table>
<table><tbody><tr><td>second</td></tr></tbody></table>
</body></html>`

func parseFixture(t *testing.T) Document {
	doc, err := ParseDocument(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestQueryAll(t *testing.T) {
	doc := parseFixture(t)

	tables := doc.QueryAll("tbody")
	require.Len(t, tables, 2)
	require.Equal(t, "tbody", tables[0].Tag())

	require.Empty(t, doc.QueryAll("dl"))
	require.Nil(t, doc.QueryAll("[[invalid"))
}

func TestChildrenExcludeText(t *testing.T) {
	doc := parseFixture(t)
	tbody := doc.QueryAll("tbody")[0]

	rows := tbody.Children()
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Equal(t, "tr", row.Tag())
	}

	cells := rows[0].Children()
	require.Len(t, cells, 2)
	require.Equal(t, "th", cells[0].Tag())
	require.Equal(t, "td", cells[1].Tag())
}

func TestNext(t *testing.T) {
	doc := parseFixture(t)
	label := doc.QueryAll("th")[0]

	value, ok := label.Next()
	require.True(t, ok)
	require.Equal(t, "td", value.Tag())
	require.Equal(t, "RPG\n    ", value.Text())

	_, ok = value.Next()
	require.False(t, ok)
}

func TestFindFirstAndAttr(t *testing.T) {
	doc := parseFixture(t)
	tbody := doc.QueryAll("tbody")[0]

	img, ok := tbody.FindFirst("img")
	require.True(t, ok)
	src, ok := img.Attr("data-original")
	require.True(t, ok)
	require.Equal(t, "https://img.example/cover.jpg", src)

	_, ok = img.Attr("alt")
	require.False(t, ok)

	anchor, ok := tbody.FindFirst("a")
	require.True(t, ok)
	require.Equal(t, "Title X", anchor.Text())

	_, ok = tbody.FindFirst("video")
	require.False(t, ok)
	_, ok = tbody.FindFirst("[[invalid")
	require.False(t, ok)
}

func TestFromSelectionEmpty(t *testing.T) {
	_, ok := FromSelection(nil)
	require.False(t, ok)
}
