package apiErrors

import (
	"fmt"
	"net/http"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida

	// Erros de recurso
	ErrRouteNotFound    = "RES_001" // Rota inexistente
	ErrMethodNotAllowed = "RES_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrCommunication     = "SRV_004" // Banco ou dependência indisponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrRouteNotFound:     http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrCommunication:     http.StatusServiceUnavailable,
}

// hideDiagnostics controla se o detalhe do erro vai para o cliente
var hideDiagnostics atomic.Bool

// SetProduction omite o campo "error" das respostas de falha quando production é verdadeiro
func SetProduction(production bool) {
	hideDiagnostics.Store(production)
}

// APIError representa o corpo padronizado de uma falha
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"` // Diagnóstico, nunca enviado em produção
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP.
// details pode ser um error, uma string ou nil.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := FromError(details, code)
	apiErr.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(details any, code string) APIError {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: "Erro desconhecido",
	}

	if hideDiagnostics.Load() || details == nil {
		return apiErr
	}

	switch d := details.(type) {
	case error:
		apiErr.Error = d.Error()
		apiErr.Message = d.Error()
	case string:
		apiErr.Error = d
	default:
		apiErr.Error = fmt.Sprint(d)
	}

	return apiErr
}
