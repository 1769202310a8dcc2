package api

// ValidateResponse is the HTTP response body for POST /v1/validate.
type ValidateResponse struct {
	Number string `json:"number"`
	Type   string `json:"type"`
	Valid  bool   `json:"valid"`
}

// ErrorResponse is the body returned for malformed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
