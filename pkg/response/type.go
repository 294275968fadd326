package response

// Resp is the standard JSON response body. Timestamps inside Data stay
// RFC3339 UTC instants; wall-clock rendering belongs to the presenters,
// which know the request's timezone.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
