package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acuse simple para operaciones de borrado.
type MessageResponse struct {
	Message string `json:"message"`
}
