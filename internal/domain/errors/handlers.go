package errors

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ErrorResponse defines the structure for error responses.
// The message sits under "error" so clients of the original API keep working.
type ErrorResponse struct {
	Error   string    `json:"error"`             // Localized user-facing message
	Code    string    `json:"code"`              // Business error code, e.g., "GAME_NOT_FOUND"
	Details any       `json:"details,omitempty"` // Detailed error information (optional)
	Meta    *MetaInfo `json:"meta"`
}
