package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao cliente
const (
	// Erros de validação
	ErrInvalidContentType = "VAL_001" // Corpo da requisição não é JSON
	ErrInvalidShape       = "VAL_002" // JSON sem a lista 'accounts'

	// Erros de roteamento
	ErrRouteNotFound    = "REQ_001"
	ErrMethodNotAllowed = "REQ_002"

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrDeliveryFailed = "SRV_002" // Falha ao entregar a mensagem ao webhook
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidContentType: http.StatusBadRequest,
	ErrInvalidShape:       http.StatusBadRequest,
	ErrRouteNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrDeliveryFailed:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código, ou 500 se desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(APIError{
		Error: message,
		Code:  code,
	})
}
