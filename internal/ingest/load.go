package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinName names a document read from standard input.
const StdinName = "stdin"

// LoadFiles reads every path. "-" reads from stdin. A file that cannot be read is
// returned as a rejection so the rest of a batch proceeds.
func LoadFiles(paths []string, stdin io.Reader) ([]*Document, []Rejection) {
	docs := make([]*Document, 0, len(paths))
	var rejected []Rejection

	for _, path := range paths {
		if path == "-" {
			raw, err := readLimited(stdin)
			if err != nil {
				rejected = append(rejected, Rejection{Name: StdinName, Step: "load", Err: fmt.Errorf("read stdin: %w", err)})
				continue
			}
			docs = append(docs, &Document{Name: StdinName, Raw: raw})
			continue
		}

		raw, err := readFile(path)
		if err != nil {
			rejected = append(rejected, Rejection{Name: filepath.Base(path), Step: "load", Err: fmt.Errorf("read file: %w", err)})
			continue
		}
		docs = append(docs, &Document{Name: filepath.Base(path), Path: path, Raw: raw})
	}

	return docs, rejected
}

// readLimited reads at most one byte past MaxFileSize, enough for the size_limit
// step to reject an oversized input without holding all of it in memory.
func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, MaxFileSize+1))
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLimited(f)
}

// FromText wraps already loaded text, such as a bundled sample.
func FromText(name, text string) *Document {
	return &Document{Name: name, Raw: []byte(text)}
}
