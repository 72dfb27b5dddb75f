package errors

// ErrorInfo is the error half of the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "EMAIL_TAKEN".
	Message string `json:"message"`           // User-facing message.
	Details any    `json:"details,omitempty"` // Optional extra context.
}

// MetaInfo carries response metadata; the request id links a response to
// its log records.
type MetaInfo struct {
	RequestID string `json:"requestId"`
}

// SuccessResponse is the envelope every successful endpoint returns.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope every failed endpoint returns.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
