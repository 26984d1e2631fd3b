package models

// ErrorResponse is the body returned for not-found and internal failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationProblem is the body returned when a create or update request
// fails validation. Errors maps a field name to its ordered messages.
type ValidationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
