package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/chamados-hub/apiserver/internal/services"
	"github.com/chamados-hub/apiserver/internal/store"
	"github.com/chamados-hub/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// TicketHandler provides HTTP handlers for tickets.
type TicketHandler struct {
	ticketService *services.TicketService
}

// NewTicketHandler constructs a handler with the provided service.
func NewTicketHandler(ticketService *services.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// TicketRouter registers ticket routes on the given router.
func TicketRouter(r chi.Router, ticketService *services.TicketService) {
	handler := NewTicketHandler(ticketService)

	r.Get("/", handler.ListTickets)
	r.Post("/", handler.CreateTicket)
	r.Route("/{ticketID}", func(r chi.Router) {
		r.Get("/", handler.GetTicket)
		r.Put("/", handler.ReplaceTicket)
		r.Patch("/", handler.PatchTicket)
		r.Delete("/", handler.DeleteTicket)
	})
}

func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := parseTicketID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.ticketService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTicketNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTicketUpsert(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.ticketService.Create(r.Context(), req.Ticket())
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *TicketHandler) ReplaceTicket(w http.ResponseWriter, r *http.Request) {
	id, err := parseTicketID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeTicketUpsert(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticket := req.Ticket()
	ticket.ID = id

	updated, err := h.ticketService.Replace(r.Context(), ticket)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTicketNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *TicketHandler) PatchTicket(w http.ResponseWriter, r *http.Request) {
	id, err := parseTicketID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := decodeTicketPatch(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.ticketService.Patch(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTicketNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := parseTicketID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ticketService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgTicketNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TicketUpsertRequest is the body accepted by POST and PUT. Every field
// except image_url is required; pointers distinguish absent fields from
// zero values so validation happens in one step after decoding.
type TicketUpsertRequest struct {
	OwnerUserID *int    `json:"owner_user_id"`
	Text        *string `json:"text"`
	State       *string `json:"state"`
	ImageURL    *string `json:"image_url"`
}

// Validate checks the required fields and their constraints.
func (req TicketUpsertRequest) Validate() error {
	if req.OwnerUserID == nil || *req.OwnerUserID < 1 {
		return errors.New("owner_user_id é obrigatório e deve ser um inteiro positivo")
	}
	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		return errors.New("text é obrigatório")
	}
	if req.State == nil || strings.TrimSpace(*req.State) == "" {
		return errors.New("state é obrigatório")
	}
	return nil
}

// Ticket builds the domain object from a validated request.
func (req TicketUpsertRequest) Ticket() types.Ticket {
	return types.Ticket{
		OwnerUserID: *req.OwnerUserID,
		Text:        *req.Text,
		State:       *req.State,
		ImageURL:    req.ImageURL,
	}
}

func decodeTicketUpsert(r *http.Request) (TicketUpsertRequest, error) {
	var req TicketUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return TicketUpsertRequest{}, errors.New(msgInvalidBody)
	}
	if err := req.Validate(); err != nil {
		return TicketUpsertRequest{}, err
	}
	return req, nil
}

func decodeTicketPatch(r *http.Request) (types.TicketPatch, error) {
	var patch types.TicketPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return types.TicketPatch{}, errors.New(msgInvalidBody)
	}
	if patch.Empty() {
		return types.TicketPatch{}, errors.New("nenhum campo para atualizar")
	}
	if patch.OwnerUserID != nil && *patch.OwnerUserID < 1 {
		return types.TicketPatch{}, errors.New("owner_user_id deve ser um inteiro positivo")
	}
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return types.TicketPatch{}, errors.New("text não pode ser vazio")
	}
	if patch.State != nil && strings.TrimSpace(*patch.State) == "" {
		return types.TicketPatch{}, errors.New("state não pode ser vazio")
	}
	return patch, nil
}

func parseTicketID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "ticketID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New(msgInvalidID)
	}
	return id, nil
}
