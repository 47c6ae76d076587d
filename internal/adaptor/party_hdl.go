package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/usecase"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PartyHandler struct {
	service usecase.PartyService
	log     *zap.Logger
}

func NewPartyHandler(service usecase.PartyService, log *zap.Logger) *PartyHandler {
	return &PartyHandler{
		service: service,
		log:     log.With(zap.String("handler", "party")),
	}
}

// GetParties handles GET /parties
func (h *PartyHandler) GetParties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	parties, err := h.service.GetParties(r.Context(), req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Parties retrieved successfully", parties)
}

// GetParty handles GET /parties/{id}
func (h *PartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	party, err := h.service.GetParty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Party retrieved successfully", party)
}

// AddParty handles POST /admin/parties
func (h *PartyHandler) AddParty(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	party, err := h.service.AddParty(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Party scheduled successfully", party)
}

// UpdateParty handles PATCH /admin/parties/{id}
func (h *PartyHandler) UpdateParty(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	party, err := h.service.UpdateParty(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Party updated successfully", party)
}

// DeleteParty handles DELETE /admin/parties/{id}
func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteParty(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Party deleted successfully", nil)
}
