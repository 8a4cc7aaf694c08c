package pmsdomain

import "net/http"

// ErrorResponse representa a estrutura de erro da API do PMS
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IsRetryable indica se vale repetir a requisição para o status recebido
func IsRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
