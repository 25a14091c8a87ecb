package hardware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLookup(t *testing.T) {
	table := Default()

	cases := []struct {
		symbol string
		id     string
	}{
		{symbol: "switch", id: "6695"},
		{symbol: "fc", id: "13"},
		{symbol: "PS4", id: "5139"},
		{symbol: " oq ", id: "7552"},
	}
	for _, test := range cases {
		t.Run(test.symbol, func(t *testing.T) {
			id, err := table.Lookup(test.symbol)
			require.NoError(t, err)
			require.Equal(t, test.id, id)
		})
	}

	require.Equal(t, 28, table.Len())
}

func TestLookupSuggestion(t *testing.T) {
	table := Default()

	_, err := table.Lookup("swich")
	var unknown UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "switch", unknown.Suggestion)
	require.Contains(t, err.Error(), "did you mean 'switch'")

	_, err = table.Lookup("zzzzzzzz")
	require.True(t, errors.As(err, &unknown))
	require.Empty(t, unknown.Suggestion)

	_, err = table.Lookup("")
	require.Error(t, err)
}

func TestWithOverrides(t *testing.T) {
	base := Default()
	table := base.With(map[string]string{
		"Switch": "1",
		"ps5":    "9999",
		"oq":     "",
	})

	id, err := table.Lookup("switch")
	require.NoError(t, err)
	require.Equal(t, "1", id)

	id, err = table.Lookup("ps5")
	require.NoError(t, err)
	require.Equal(t, "9999", id)

	_, err = table.Lookup("oq")
	require.Error(t, err)

	// the original table is untouched
	id, err = base.Lookup("switch")
	require.NoError(t, err)
	require.Equal(t, "6695", id)
	_, err = base.Lookup("ps5")
	require.Error(t, err)
}

func TestNewCopies(t *testing.T) {
	pages := map[string]string{"b": "2", "a": "1"}
	table := New(pages)
	pages["c"] = "3"

	require.Equal(t, []string{"a", "b"}, table.Symbols())
	require.Equal(t, 0, New(nil).With(nil).Len())
}
