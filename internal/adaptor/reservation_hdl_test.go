package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/internal/dto/response"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReservationService struct {
	reserveErr error
	reserved   *response.ReservationResponse
}

func (s *stubReservationService) Reserve(ctx context.Context, customerID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return s.reserved, nil
}

func (s *stubReservationService) Cancel(ctx context.Context, customerID uuid.UUID, reservationID string) error {
	return s.reserveErr
}

func (s *stubReservationService) GetCustomerReservations(ctx context.Context, customerID uuid.UUID) ([]response.ReservationResponse, error) {
	return nil, nil
}

func (s *stubReservationService) ListPartySeats(ctx context.Context, partyID string) (*response.AvailableSeatsResponse, error) {
	return nil, nil
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetCustomerContext(req.Context(), uuid.New(), "customer")
	return req.WithContext(ctx)
}

func TestReserveRendersTaggedErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantType   string
	}{
		{"seat conflict", apperror.Client("Seat is already reserved for this party"), http.StatusBadRequest, "CLIENT ERROR"},
		{"missing party", apperror.NotFound("Party not found"), http.StatusNotFound, "NOT FOUND"},
		{"infrastructure failure", context.DeadlineExceeded, http.StatusInternalServerError, "SERVER ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReservationHandler(&stubReservationService{reserveErr: tt.serviceErr}, zap.NewNop())

			body := `{"partyId":"` + uuid.NewString() + `","seatId":"H5 - A3"}`
			rec := httptest.NewRecorder()
			h.Reserve(rec, authedRequest(http.MethodPost, "/customers/reservations", body))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got struct {
				ErrorType string `json:"errorType"`
				Status    int    `json:"status"`
				Message   string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantType, got.ErrorType)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestReserveValidation(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{}, zap.NewNop())

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Reserve(rec, authedRequest(http.MethodPost, "/customers/reservations", "{not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Reserve(rec, authedRequest(http.MethodPost, "/customers/reservations", `{"partyId":"not-a-uuid"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/customers/reservations", strings.NewReader(`{}`))
		h.Reserve(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReserveSuccessEnvelope(t *testing.T) {
	partyID := uuid.New()
	svc := &stubReservationService{reserved: &response.ReservationResponse{
		ID:      uuid.NewString(),
		PartyID: partyID.String(),
		SeatID:  "H5 - A3",
	}}
	h := NewReservationHandler(svc, zap.NewNop())

	body := `{"partyId":"` + partyID.String() + `","seatId":"H5 - A3"}`
	rec := httptest.NewRecorder()
	h.Reserve(rec, authedRequest(http.MethodPost, "/customers/reservations", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Status  bool                         `json:"status"`
		Message string                       `json:"message"`
		Data    response.ReservationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Status)
	assert.Equal(t, "H5 - A3", got.Data.SeatID)
}
