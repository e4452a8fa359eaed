package domain

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	OK bool `json:"ok"`
}
