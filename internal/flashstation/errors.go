package flashstation

import "fmt"

// TransportError reports a failed network exchange: the request never
// completed, or the server answered with a non-success status.
type TransportError struct {
	URL    string
	Status int   // zero when no response was received
	Err    error // underlying cause, nil for pure status failures
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be interpreted: invalid
// JSON from the builds endpoint, or portal markup missing the anchors the
// scrape depends on.
type DecodeError struct {
	What string // which payload failed, e.g. "builds response"
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
