package setam

import (
	"errors"
	"fmt"
)

var (
	// ErrSiteUnreachable means the start page could not be fetched or parsed.
	ErrSiteUnreachable = errors.New("site unreachable")
	// ErrExtraction means a detail page does not fit the record schema.
	ErrExtraction = errors.New("extraction failed")
)

type ExtractionError struct {
	URL   string
	Field string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s from %s: %v", e.Field, e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }
