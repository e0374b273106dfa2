package errors

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code     int
	Field    string
	Messages []string
}

// ValidationErrorCollector aggregates validation errors across fields.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
