package itinerary

import (
	"fmt"
)

// FetchError is returned when the route page could not be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}

	return fmt.Sprintf("fetching %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError is returned when an element the page is expected to carry is missing
// or has an unexpected shape.
type ExtractionError struct {
	Rule   string
	Index  int
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("extracting %s: %s", e.Rule, e.Reason)
	}

	return fmt.Sprintf("extracting %s #%d: %s", e.Rule, e.Index, e.Reason)
}

// FormatError is returned when stations and transports cannot be interleaved.
type FormatError struct {
	Stations   int
	Transports int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("route has %d stations for %d transports, expected %d", e.Stations, e.Transports, e.Transports+1)
}
