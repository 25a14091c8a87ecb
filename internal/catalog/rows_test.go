package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDataRow(t *testing.T) {
	cases := []struct {
		name     string
		row      string
		expected bool
	}{
		{
			name:     "link in first cell",
			row:      `<tr><td><a href="/pages/1.html">A</a></td><td>2019</td></tr>`,
			expected: true,
		},
		{
			name:     "link in last cell",
			row:      `<tr><td>2019</td><td>RPG</td><td><span><a href="/pages/1.html">A</a></span></td></tr>`,
			expected: true,
		},
		{
			name:     "label row",
			row:      `<tr><th>ジャンル</th><td>RPG</td></tr>`,
			expected: false,
		},
		{
			name:     "no cells",
			row:      `<tr></tr>`,
			expected: false,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			doc := parse(t, "<table><tbody>"+test.row+"</tbody></table>")
			rows := TableRows(doc.QueryAll("tbody")[0])
			require.Len(t, rows, 1)
			require.Equal(t, test.expected, IsDataRow(rows[0]))
		})
	}
}

func TestFindRow(t *testing.T) {
	rows := rows(t, labelTable(
		[2]string{"ジャンル", "RPG"},
		[2]string{"発売日", "2019年7月19日"},
		[2]string{"発売・開発元", "任天堂"},
	))

	cases := []struct {
		keyword string
		label   string
	}{
		{keyword: "ジャンル", label: "ジャンル"},
		{keyword: "発売日", label: "発売日"},
		// substring match hits the release date row before the publisher
		{keyword: "発売", label: "発売日"},
		{keyword: "開発元", label: "発売・開発元"},
	}

	for _, test := range cases {
		t.Run(test.keyword, func(t *testing.T) {
			row, ok := FindRow(rows, test.keyword)
			require.True(t, ok)
			label, _ := labelCell(row)
			require.Equal(t, test.label, label.Text())
		})
	}

	_, ok := FindRow(rows, "対応機種")
	require.False(t, ok)

	_, ok = FindRow(nil, "ジャンル")
	require.False(t, ok)
}

func TestFindRowRescans(t *testing.T) {
	rows := rows(t, labelTable(
		[2]string{"発売元", "カプコン"},
		[2]string{"ジャンル", "ACT"},
	))

	// each lookup starts over from the first row
	for range 2 {
		row, ok := FindRow(rows, "発売")
		require.True(t, ok)
		require.Equal(t, "カプコン", row.Children()[1].Text())
	}
	_, ok := FindRow(rows, "ジャンル")
	require.True(t, ok)
}

func TestDetailRowsFirstTableOnly(t *testing.T) {
	doc := parse(t,
		labelTable([2]string{"ジャンル", "RPG"})+
			labelTable([2]string{"関連作品", "続編"}, [2]string{"ジャンル", "ACT"}),
	)
	rows, err := DetailRows(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = DetailRows(parse(t, "<p>no tables</p>"))
	require.True(t, errors.Is(err, ErrMissingTable))
}
