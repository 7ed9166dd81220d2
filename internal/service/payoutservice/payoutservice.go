package payoutservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/service/settlementservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Payout batches are bookkeeping for out-of-band UPI transfers to sellers.
// They sit outside the audited core: the admin log action enum has no payout
// action, so these operations log through zap only.

const (
	PendingStatus   string = "pending"
	CompletedStatus string = "completed"
)

type Repo interface {
	Create(ctx context.Context, p *domain.Payout) error
	FindByID(ctx context.Context, id string) (*domain.Payout, error)
	ListPending(ctx context.Context) ([]domain.Payout, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Payout, error)
	MarkCompleted(ctx context.Context, id, markedBy, markedByName string, completedAt time.Time) (*domain.Payout, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	repo      Repo
	orderRepo OrderRepo
	userRepo  UserRepo
}

func New(repo Repo, orderRepo OrderRepo, userRepo UserRepo) *Service {
	return &Service{
		repo:      repo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

type CreateBatchInput struct {
	SellerID string
	UPIID    string
	OrderIDs []string
}

// CreateBatch groups verified orders of one seller into a pending payout.
// The amount is the sum of the orders' seller earnings, never client input.
func (s *Service) CreateBatch(ctx context.Context, admin *domain.User, in CreateBatchInput) (*domain.Payout, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if in.UPIID == "" {
		return nil, apperrors.Validation("seller UPI id is required", nil)
	}
	if len(in.OrderIDs) == 0 {
		return nil, apperrors.Validation("at least one order is required", nil)
	}

	seller, err := s.userRepo.FindByID(ctx, in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperrors.NotFound("Seller", nil)
	}

	var amount float64
	for _, orderID := range in.OrderIDs {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperrors.NotFound("Order", nil)
		}
		if order.SellerID != in.SellerID {
			return nil, apperrors.Validation("order belongs to another seller", nil)
		}
		if order.Status != settlementservice.VerifiedStatus {
			return nil, apperrors.Validation("only verified orders can be paid out", nil)
		}
		amount += order.SellerEarnings
	}

	payout := &domain.Payout{
		ID:         uuid.NewString(),
		SellerID:   seller.ID,
		SellerName: seller.DisplayName,
		Amount:     amount,
		UPIID:      in.UPIID,
		Status:     PendingStatus,
		OrderIDs:   in.OrderIDs,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, payout); err != nil {
		zap.L().Error("can't create payout", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payout batch created", zap.String("payoutID", payout.ID), zap.String("sellerID", seller.ID), zap.Float64("amount", amount))
	return payout, nil
}

func (s *Service) MarkCompleted(ctx context.Context, admin *domain.User, payoutID string) (*domain.Payout, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	payout, err := s.repo.MarkCompleted(ctx, payoutID, admin.ID, admin.DisplayName, time.Now())
	if err != nil {
		return nil, err
	}
	if payout == nil {
		existing, err := s.repo.FindByID(ctx, payoutID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperrors.NotFound("Payout", nil)
		}
		return nil, apperrors.Conflict("payout is already completed", nil)
	}

	zap.L().Info("payout completed", zap.String("payoutID", payoutID), zap.String("adminID", admin.ID))
	return payout, nil
}

func (s *Service) ListPending(ctx context.Context, admin *domain.User) ([]domain.Payout, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	return s.repo.ListPending(ctx)
}

func (s *Service) ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Payout, error) {
	if seller == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(seller.Role, auth.CapSell) {
		return nil, apperrors.Forbidden("Seller access required", nil)
	}
	return s.repo.ListBySeller(ctx, seller.ID)
}

func requireAdmin(admin *domain.User) error {
	if admin == nil {
		return apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(admin.Role, auth.CapAdmin) {
		return apperrors.Forbidden("Admin access required", nil)
	}
	return nil
}
