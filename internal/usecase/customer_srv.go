package usecase

import (
	"context"
	"fmt"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/response"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetProfile(ctx context.Context, targetID, requesterID uuid.UUID, requesterRole entity.Role) (*response.CustomerResponse, error)
	DeleteProfile(ctx context.Context, targetID, requesterID uuid.UUID) error
}

type customerService struct {
	customers repository.CustomerRepository
	log       *zap.Logger
}

func NewCustomerService(customers repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customers: customers,
		log:       log.With(zap.String("service", "customer")),
	}
}

// GetProfile returns a customer profile. Customers may only read their own
// profile; admins may read anyone's.
func (s *customerService) GetProfile(ctx context.Context, targetID, requesterID uuid.UUID, requesterRole entity.Role) (*response.CustomerResponse, error) {
	if targetID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, apperror.Forbidden("You may only view your own profile")
	}

	customer, err := s.customers.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteProfile(ctx context.Context, targetID, requesterID uuid.UUID) error {
	if targetID != requesterID {
		return apperror.Forbidden("You may only delete your own profile")
	}

	if err := s.customers.Delete(ctx, targetID); err != nil {
		return err
	}

	s.log.Info("Customer profile deleted", zap.String("customer_id", targetID.String()))
	return nil
}
