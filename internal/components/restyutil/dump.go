package restyutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"gcmatome/internal/components/assert"

	"github.com/go-resty/resty/v2"
)

// Output receives one formatted request/response exchange per id.
type Output interface {
	Write(id string, contents string)
}

// FilesystemOutput writes every exchange to its own file in a directory.
type FilesystemOutput struct {
	directory string
}

// NewFilesystemOutput creates dir if it does not exist yet, files of a
// previous run are overwritten as ids restart at 1.
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	assert.NotEmptyStr(dir)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0644)
	if err != nil {
		slog.Warn("failed to write exchange file", "id", id, "err", err)
	}
}

// DumpResponses writes every response received by client to output, which
// is useful to capture pages as test fixtures.
func DumpResponses(client *resty.Client, output Output) {
	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := atomic.AddUint64(&idcounter, 1)
		output.Write(fmt.Sprintf("%04d.txt", id), formatExchange(res))
		return nil
	})
}
