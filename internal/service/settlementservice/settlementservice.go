package settlementservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/internal/service/moderationservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// PendingVerificationStatus orders await a human payment check.
	PendingVerificationStatus string = "pending_verification"
	// VerifiedStatus unlocks the download reference. Terminal.
	VerifiedStatus string = "verified"
	// RejectedStatus payments failed the human check. Terminal, no refund mechanics.
	RejectedStatus string = "rejected"
)

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListPendingVerification(ctx context.Context) ([]domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Order, error)
	Verify(ctx context.Context, id, downloadURL string, verifiedAt time.Time) (*domain.Order, error)
	Reject(ctx context.Context, id string) (*domain.Order, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AdminLog) error
}

type Service struct {
	orderRepo      OrderRepo
	productRepo    ProductRepo
	auditRepo      AuditRepo
	txManager      pg.TXManager
	sellerRate     float64
	commissionRate float64
}

func New(orderRepo OrderRepo, productRepo ProductRepo, auditRepo AuditRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		auditRepo:      auditRepo,
		txManager:      txManager,
		sellerRate:     cfg.SellerRate,
		commissionRate: cfg.CommissionRate,
	}
}

// Split computes the seller/marketplace division of amount from the
// configured rates. Commission is the exact remainder, so the two parts
// always reconcile to the paid amount to the cent.
func (s *Service) Split(amount float64) (earnings, commission float64) {
	earnings = math.Round(amount*s.sellerRate*100) / 100
	commission = amount - earnings
	return earnings, commission
}

// CreateOrder records a buyer's payment claim. The split is pinned
// server-side from configuration; anything the client sends about earnings
// or commission is ignored. Title and seller are snapshotted from the
// product row, buyer fields from the principal.
func (s *Service) CreateOrder(ctx context.Context, buyer *domain.User, productID, transactionID string, amount float64) (*domain.Order, error) {
	if buyer == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(buyer.Role, auth.CapPurchase) {
		return nil, apperrors.Forbidden("Authentication required", nil)
	}

	if amount <= 0 {
		return nil, apperrors.Validation("amount must be a positive number", nil)
	}
	if !validate.IsUTR(transactionID) {
		return nil, apperrors.Validation("invalid transaction reference", nil)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("Product", nil)
	}
	if product.Status != moderationservice.ApprovedStatus {
		return nil, apperrors.Conflict("product is not available for purchase", nil)
	}

	earnings, commission := s.Split(amount)
	order := &domain.Order{
		ID:                    uuid.NewString(),
		ProductID:             product.ID,
		ProductTitle:          product.Title,
		BuyerID:               buyer.ID,
		BuyerName:             buyer.DisplayName,
		BuyerEmail:            buyer.Email,
		SellerID:              product.SellerID,
		TransactionID:         transactionID,
		Amount:                amount,
		Status:                PendingVerificationStatus,
		SellerEarnings:        earnings,
		MarketplaceCommission: commission,
		CreatedAt:             time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.String("orderID", order.ID),
		zap.String("productID", productID),
		zap.String("buyerID", buyer.ID),
	)
	return order, nil
}

// VerifyPayment is the human trust decision. The download reference is
// copied from the product at verification time, not at order time, so a
// buyer holds nothing until an admin signed off.
func (s *Service) VerifyPayment(ctx context.Context, admin *domain.User, orderID string) (*domain.Order, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("Order", nil)
	}

	product, err := s.productRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("Product", nil)
	}

	var verified *domain.Order
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.orderRepo.Verify(ctx, orderID, product.FileURL, time.Now())
		if err != nil {
			return err
		}
		if o == nil {
			return apperrors.Conflict("order is not awaiting verification", nil)
		}
		verified = o

		entry := auditservice.Entry(auditservice.ActionVerifyPayment, admin, orderID, auditservice.TargetOrder,
			fmt.Sprintf("Verified payment for order: %s - Transaction: %s", o.ProductTitle, o.TransactionID))
		return s.auditRepo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment verified", zap.String("orderID", orderID), zap.String("adminID", admin.ID))
	return verified, nil
}

func (s *Service) RejectPayment(ctx context.Context, admin *domain.User, orderID string) (*domain.Order, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	var rejected *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.orderRepo.Reject(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			existing, err := s.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return err
			}
			if existing == nil {
				return apperrors.NotFound("Order", nil)
			}
			return apperrors.Conflict("order is not awaiting verification", nil)
		}
		rejected = o

		entry := auditservice.Entry(auditservice.ActionRejectPayment, admin, orderID, auditservice.TargetOrder,
			fmt.Sprintf("Rejected payment for order: %s - Transaction: %s", o.ProductTitle, o.TransactionID))
		return s.auditRepo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment rejected", zap.String("orderID", orderID), zap.String("adminID", admin.ID))
	return rejected, nil
}

func (s *Service) ListPendingVerification(ctx context.Context, admin *domain.User) ([]domain.Order, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	return s.orderRepo.ListPendingVerification(ctx)
}

func (s *Service) ListByBuyer(ctx context.Context, buyer *domain.User) ([]domain.Order, error) {
	if buyer == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	return s.orderRepo.ListByBuyer(ctx, buyer.ID)
}

func (s *Service) ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Order, error) {
	if seller == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(seller.Role, auth.CapSell) {
		return nil, apperrors.Forbidden("Seller access required", nil)
	}
	return s.orderRepo.ListBySeller(ctx, seller.ID)
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
