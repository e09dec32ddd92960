package server

// ErrorDetail carries a machine-readable code plus a human-readable
// message for a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned for any failed API request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
