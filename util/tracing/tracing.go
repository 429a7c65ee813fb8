package tracing

// Context carries the per-request identifiers attached by the tracing
// middleware and threaded through handlers for log correlation.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
