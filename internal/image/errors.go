package image

import "fmt"

// UpstreamError carries a non-2xx upstream response back to the caller with
// the original status code and body text. Every other forwarding failure is
// a plain error and collapses to a generic 500 at the boundary.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Detail)
}
