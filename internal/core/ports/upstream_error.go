// Package ports defines the outbound contracts of the workflow: the domain
// client for the persistence backend and the client for the route
// optimization backend. Adapters implement these interfaces; the application
// layer depends on nothing below them.
package ports

import "fmt"

// UpstreamError reports a transport-level failure from one of the external
// backends: an unreachable service or a non-2xx response.
//
// Message carries the server-provided error string when the response body
// contained one, or "HTTP <status>" otherwise, per the backends' error
// convention. Status is zero for network failures that produced no response.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}
