package restyutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestDumpResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("X-Page", strings.TrimPrefix(req.URL.Path, "/"))
		fmt.Fprint(rw, "<p>ゼルダ</p>")
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	client := resty.New()
	DumpResponses(client, output)

	for _, page := range []string{"13", "14"} {
		_, err := client.R().Get(server.URL + "/" + page)
		require.NoError(t, err)
	}

	first, err := os.ReadFile(filepath.Join(dir, "0001.txt"))
	require.NoError(t, err)
	require.Contains(t, string(first), "GET "+server.URL+"/13")
	require.Contains(t, string(first), "200 OK")
	require.Contains(t, string(first), "X-Page: 13")
	require.True(t, strings.HasSuffix(string(first), "<p>ゼルダ</p>"))

	_, err = os.Stat(filepath.Join(dir, "0002.txt"))
	require.NoError(t, err)
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")
	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(nil))
}
