package settlementservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/service/moderationservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockProductRepo, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	productRepo := NewMockProductRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	cfg := &config.Config{SellerRate: 0.7, CommissionRate: 0.3}
	service := New(orderRepo, productRepo, auditRepo, txManager, cfg)
	defer ctrl.Finish()
	return service, orderRepo, productRepo, auditRepo, txManager
}

func admin() *domain.User {
	return &domain.User{ID: "admin-1", DisplayName: "Admin", Role: domain.RoleAdmin}
}

func buyer() *domain.User {
	return &domain.User{ID: "buyer-1", DisplayName: "Buyer", Email: "buyer@example.com", Role: domain.RoleBuyer}
}

func TestSplit(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	tests := []struct {
		name               string
		amount             float64
		expectedEarnings   float64
		expectedCommission float64
	}{
		{name: "Even amount", amount: 500, expectedEarnings: 350, expectedCommission: 150},
		{name: "Amount with paise", amount: 99.99, expectedEarnings: 69.99, expectedCommission: 30},
		{name: "Rounding edge", amount: 0.01, expectedEarnings: 0.01, expectedCommission: 0},
		{name: "One rupee", amount: 1, expectedEarnings: 0.7, expectedCommission: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earnings, commission := service.Split(tt.amount)
			assert.InDelta(t, tt.expectedEarnings, earnings, 1e-9)
			assert.InDelta(t, tt.expectedCommission, commission, 1e-9)
			assert.InDelta(t, tt.amount, earnings+commission, 1e-9)
		})
	}
}

func TestCreateOrder(t *testing.T) {
	service, orderRepo, productRepo, _, _ := NewMock(t)

	approvedProduct := &domain.Product{
		ID:       "p1",
		Title:    "Icon pack",
		SellerID: "seller-1",
		Status:   moderationservice.ApprovedStatus,
	}

	tests := []struct {
		name           string
		buyer          *domain.User
		transactionID  string
		amount         float64
		prepareMock    func()
		expectedStatus int
	}{
		{
			name:           "No principal",
			buyer:          nil,
			transactionID:  "UTR12345678",
			amount:         500,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Non-positive amount",
			buyer:          buyer(),
			transactionID:  "UTR12345678",
			amount:         0,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Transaction reference too short",
			buyer:          buyer(),
			transactionID:  "abc",
			amount:         500,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Transaction reference with symbols",
			buyer:          buyer(),
			transactionID:  "UTR-1234-5678",
			amount:         500,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "Unknown product",
			buyer:         buyer(),
			transactionID: "UTR12345678",
			amount:        500,
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "Pending product is not purchasable",
			buyer:         buyer(),
			transactionID: "UTR12345678",
			amount:        500,
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").
					Return(&domain.Product{ID: "p1", Status: moderationservice.PendingStatus}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:          "Order is created with the server-side split",
			buyer:         buyer(),
			transactionID: "UTR12345678",
			amount:        500,
			prepareMock: func() {
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(approvedProduct, nil)
				orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.CreateOrder(context.Background(), tt.buyer, "p1", tt.transactionID, tt.amount)
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.From(err).Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PendingVerificationStatus, order.Status)
				assert.Equal(t, "Icon pack", order.ProductTitle)
				assert.Equal(t, "seller-1", order.SellerID)
				assert.Equal(t, "buyer-1", order.BuyerID)
				assert.Equal(t, "buyer@example.com", order.BuyerEmail)
				assert.InDelta(t, 350.0, order.SellerEarnings, 1e-9)
				assert.InDelta(t, 150.0, order.MarketplaceCommission, 1e-9)
				assert.Nil(t, order.DownloadURL)
			}
		})
	}
}

func TestCreateOrderSellerCanBuy(t *testing.T) {
	service, orderRepo, productRepo, _, _ := NewMock(t)

	productRepo.EXPECT().FindByID(gomock.Any(), "p1").
		Return(&domain.Product{ID: "p1", Status: moderationservice.ApprovedStatus}, nil)
	orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	order, err := service.CreateOrder(context.Background(),
		&domain.User{ID: "seller-1", Role: domain.RoleSeller}, "p1", "UTR12345678", 100)
	assert.NoError(t, err)
	assert.Equal(t, "seller-1", order.BuyerID)
}

func TestVerifyPayment(t *testing.T) {
	service, orderRepo, productRepo, auditRepo, txManager := NewMock(t)

	pendingOrder := &domain.Order{
		ID:            "o1",
		ProductID:     "p1",
		ProductTitle:  "Icon pack",
		TransactionID: "UTR12345678",
		Status:        PendingVerificationStatus,
	}
	product := &domain.Product{ID: "p1", Title: "Icon pack", FileURL: "/uploads/products/icons.zip"}

	tests := []struct {
		name           string
		admin          *domain.User
		prepareMock    func()
		expectedStatus int
	}{
		{
			name:           "Buyer can't verify",
			admin:          buyer(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "Order not found",
			admin: admin(),
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "Already verified order conflicts",
			admin: admin(),
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(pendingOrder, nil)
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(product, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Verify(gomock.Any(), "o1", product.FileURL, gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:  "Audit failure rolls the verification back",
			admin: admin(),
			prepareMock: func() {
				downloadURL := product.FileURL
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(pendingOrder, nil)
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(product, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Verify(gomock.Any(), "o1", product.FileURL, gomock.Any()).
					Return(&domain.Order{ID: "o1", Status: VerifiedStatus, DownloadURL: &downloadURL}, nil)
				auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:  "Verification copies the download reference and audits",
			admin: admin(),
			prepareMock: func() {
				downloadURL := product.FileURL
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(pendingOrder, nil)
				productRepo.EXPECT().FindByID(gomock.Any(), "p1").Return(product, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Verify(gomock.Any(), "o1", product.FileURL, gomock.Any()).
					Return(&domain.Order{
						ID:            "o1",
						ProductTitle:  "Icon pack",
						TransactionID: "UTR12345678",
						Status:        VerifiedStatus,
						DownloadURL:   &downloadURL,
					}, nil)
				auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.AdminLog) error {
						assert.Equal(t, "verify_payment", entry.Action)
						assert.Equal(t, "Verified payment for order: Icon pack - Transaction: UTR12345678", entry.Details)
						return nil
					})
			},
			expectedStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.VerifyPayment(context.Background(), tt.admin, "o1")
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.From(err).Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, VerifiedStatus, order.Status)
				assert.NotNil(t, order.DownloadURL)
				assert.Equal(t, "/uploads/products/icons.zip", *order.DownloadURL)
			}
		})
	}
}

func TestRejectPayment(t *testing.T) {
	service, orderRepo, _, auditRepo, txManager := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Order not found",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Reject(gomock.Any(), "o1").Return(nil, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Verified order can't be rejected",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Reject(gomock.Any(), "o1").Return(nil, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").
					Return(&domain.Order{ID: "o1", Status: VerifiedStatus}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Rejection is audited with the transaction reference",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
				orderRepo.EXPECT().Reject(gomock.Any(), "o1").
					Return(&domain.Order{
						ID:            "o1",
						ProductTitle:  "Icon pack",
						TransactionID: "UTR12345678",
						Status:        RejectedStatus,
					}, nil)
				auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.AdminLog) error {
						assert.Equal(t, "reject_payment", entry.Action)
						assert.Equal(t, "Rejected payment for order: Icon pack - Transaction: UTR12345678", entry.Details)
						return nil
					})
			},
			expectedStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.RejectPayment(context.Background(), admin(), "o1")
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.From(err).Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, RejectedStatus, order.Status)
				assert.Nil(t, order.DownloadURL)
			}
		})
	}
}

func TestListByBuyer(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)

	_, err := service.ListByBuyer(context.Background(), nil)
	assert.Equal(t, http.StatusUnauthorized, apperrors.From(err).Status)

	orderRepo.EXPECT().ListByBuyer(gomock.Any(), "buyer-1").Return([]domain.Order{{ID: "o1"}}, nil)
	orders, err := service.ListByBuyer(context.Background(), buyer())
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestListBySeller(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)

	_, err := service.ListBySeller(context.Background(), buyer())
	assert.Equal(t, http.StatusForbidden, apperrors.From(err).Status)

	orderRepo.EXPECT().ListBySeller(gomock.Any(), "seller-1").Return([]domain.Order{{ID: "o1"}, {ID: "o2"}}, nil)
	orders, err := service.ListBySeller(context.Background(), &domain.User{ID: "seller-1", Role: domain.RoleSeller})
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestListPendingVerification(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)

	_, err := service.ListPendingVerification(context.Background(), buyer())
	assert.Equal(t, http.StatusForbidden, apperrors.From(err).Status)

	orderRepo.EXPECT().ListPendingVerification(gomock.Any()).Return([]domain.Order{{ID: "o1"}}, nil)
	orders, err := service.ListPendingVerification(context.Background(), admin())
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}
