package handler

// ErrorResponse is the error payload every handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
}
