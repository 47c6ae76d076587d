package adaptor

import (
	"net/http"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/usecase"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// GetProfile handles GET /customers/{id}
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rawRole, _ := utils.GetRoleFromContext(r.Context())
	role, err := entity.ParseRole(rawRole)
	if err != nil {
		utils.ResponseUnauthorized(w, "Invalid role claim")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), targetID, requesterID, role)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// DeleteProfile handles DELETE /customers/{id}
func (h *CustomerHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	if err := h.service.DeleteProfile(r.Context(), targetID, requesterID); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile deleted successfully", nil)
}
