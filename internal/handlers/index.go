package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// routeIndex describes the public API surface, served from the root path.
var routeIndex = map[string]string{
	"GET /api/chamados":        "lista todos os chamados",
	"GET /api/chamados/:id":    "busca um chamado pelo id",
	"POST /api/chamados":       "cria um novo chamado",
	"PUT /api/chamados/:id":    "substitui todos os campos de um chamado",
	"PATCH /api/chamados/:id":  "atualiza parcialmente um chamado",
	"DELETE /api/chamados/:id": "remove um chamado",
	"GET /api/usuarios":        "lista todos os usuários",
	"GET /api/usuarios/:id":    "busca um usuário pelo id",
	"POST /api/usuarios":       "cria um novo usuário",
}

// Index serves the static route-description map.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, routeIndex)
}

// Healthz reports liveness, including a short database ping.
func Healthz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
