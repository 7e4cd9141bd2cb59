package handlers

import (
	"encoding/json"
	"net/http"
)

// User-facing messages shared across handlers. The API speaks Portuguese;
// store-level failures are reported uniformly with no cause attached.
const (
	msgInvalidID      = "id inválido"
	msgInvalidBody    = "corpo da requisição inválido"
	msgTicketNotFound = "chamado não encontrado"
	msgInternalError  = "erro interno do servidor"
)

// ErrorResponse is the error payload for every failure.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Erro: message})
}
