package analysis

import "errors"

// MinTextLength is the shortest trimmed text the analyzer accepts.
const MinTextLength = 10

// ErrEmptyInput is returned when there is no analyzable text.
var ErrEmptyInput = errors.New("no analyzable text")
