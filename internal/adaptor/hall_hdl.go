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

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// AddHall handles POST /admin/halls
func (h *HallHandler) AddHall(w http.ResponseWriter, r *http.Request) {
	var req request.AddHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	hall, err := h.service.AddHall(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Hall added successfully", hall)
}

// GetHalls handles GET /halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetHalls(r.Context())
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", halls)
}

// DeleteHall handles DELETE /admin/halls/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteHall(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}

// ProvisionSeats handles POST /admin/halls/{id}/seats
func (h *HallHandler) ProvisionSeats(w http.ResponseWriter, r *http.Request) {
	var req request.ProvisionSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	seats, err := h.service.ProvisionSeats(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Seats provisioned successfully", seats)
}

// GetSeats handles GET /halls/{id}/seats
func (h *HallHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetSeats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}
