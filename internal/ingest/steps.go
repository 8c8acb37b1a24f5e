package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-analyzer/internal/analysis"
)

// MaxFileSize is the largest accepted input file.
const MaxFileSize = 10 * 1024 * 1024

// DefaultMinTextLength is the shortest normalized text worth analyzing.
const DefaultMinTextLength = 50

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrTooLarge          = errors.New("file is too large")
	ErrTooShort          = errors.New("text is too short for meaningful analysis")
	ErrNotUTF8           = errors.New("file is not valid UTF-8 text")
	ErrDuplicate         = errors.New("duplicate of an earlier document")
	ErrExcluded          = errors.New("listed in exclude file")
)

// SupportedExtensions are the plain-text formats accepted from disk. Stdin has no extension
// and is always accepted.
var SupportedExtensions = []string{".txt", ".text", ".md"}

// DefaultSteps returns the standard ingestion pipeline.
func DefaultSteps(minTextLength int, excludeFile string) []Filter {
	return []Filter{
		NewExcludeFile(excludeFile),
		NewExtension(),
		NewSizeLimit(MaxFileSize),
		NewNormalize(),
		NewMinLength(minTextLength),
		NewDuplicates(),
	}
}

type extensionFilter struct{}

// NewExtension rejects files whose extension is not a supported text format.
func NewExtension() Filter { return extensionFilter{} }

func (extensionFilter) Name() string { return "extension" }

func (extensionFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	kept, rejected := partition(docs, func(doc *Document) error {
		if doc.Path == "" {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(doc.Path))
		for _, supported := range SupportedExtensions {
			if ext == supported {
				return nil
			}
		}
		return fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions, ", "))
	})
	return kept, rejected, nil
}

type sizeFilter struct {
	limit int
}

// NewSizeLimit rejects documents larger than limit bytes.
func NewSizeLimit(limit int) Filter { return sizeFilter{limit: limit} }

func (f sizeFilter) Name() string { return "size_limit" }

func (f sizeFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	kept, rejected := partition(docs, func(doc *Document) error {
		if len(doc.Raw) > f.limit {
			return fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, len(doc.Raw), f.limit)
		}
		return nil
	})
	return kept, rejected, nil
}

type normalizeFilter struct{}

// NewNormalize decodes and normalizes the raw bytes into Text.
func NewNormalize() Filter { return normalizeFilter{} }

func (normalizeFilter) Name() string { return "normalize" }

func (normalizeFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	kept, rejected := partition(docs, func(doc *Document) error {
		if !utf8.Valid(doc.Raw) {
			return ErrNotUTF8
		}
		raw := string(doc.Raw)
		doc.OriginalLength = utf8.RuneCountInString(raw)
		doc.Text = analysis.Normalize(raw)
		return nil
	})
	return kept, rejected, nil
}

type minLengthFilter struct {
	minimum int
}

// NewMinLength rejects normalized texts shorter than minimum runes. A non-positive
// minimum selects DefaultMinTextLength.
func NewMinLength(minimum int) Filter {
	if minimum <= 0 {
		minimum = DefaultMinTextLength
	}
	return minLengthFilter{minimum: minimum}
}

func (f minLengthFilter) Name() string { return "min_length" }

func (f minLengthFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	kept, rejected := partition(docs, func(doc *Document) error {
		if n := utf8.RuneCountInString(doc.Text); n < f.minimum {
			return fmt.Errorf("%w: %d characters, need at least %d", ErrTooShort, n, f.minimum)
		}
		return nil
	})
	return kept, rejected, nil
}

type duplicatesFilter struct{}

// NewDuplicates drops documents whose normalized text equals an earlier one.
func NewDuplicates() Filter { return duplicatesFilter{} }

func (duplicatesFilter) Name() string { return "duplicates" }

func (duplicatesFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	seen := make(map[string]string, len(docs))
	kept, rejected := partition(docs, func(doc *Document) error {
		if first, ok := seen[doc.Text]; ok {
			return fmt.Errorf("%w %q", ErrDuplicate, first)
		}
		seen[doc.Text] = doc.Name
		return nil
	})
	return kept, rejected, nil
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile drops documents whose name or path is listed, one per line, in path.
// Blank lines and lines starting with # are ignored. An empty path disables the step.
func NewExcludeFile(path string) Filter {
	return excludeFileFilter{path: strings.TrimSpace(path)}
}

func (f excludeFileFilter) Name() string { return "exclude_file" }

func (f excludeFileFilter) Apply(_ context.Context, docs []*Document) ([]*Document, []Rejection, error) {
	if f.path == "" {
		return docs, nil, nil
	}

	excluded, err := readExcludeFile(f.path)
	if err != nil {
		return nil, nil, err
	}

	kept, rejected := partition(docs, func(doc *Document) error {
		if excluded[doc.Name] || (doc.Path != "" && excluded[filepath.Clean(doc.Path)]) {
			return ErrExcluded
		}
		return nil
	})
	return kept, rejected, nil
}

func readExcludeFile(path string) (map[string]bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exclude file: %w", err)
	}
	defer file.Close()

	excluded := make(map[string]bool)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		excluded[line] = true
		excluded[filepath.Clean(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read exclude file: %w", err)
	}

	return excluded, nil
}
