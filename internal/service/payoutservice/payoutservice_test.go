package payoutservice

import (
	"context"
	"net/http"
	"testing"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/service/settlementservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrderRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(repo, orderRepo, userRepo)
	defer ctrl.Finish()
	return service, repo, orderRepo, userRepo
}

func admin() *domain.User {
	return &domain.User{ID: "admin-1", DisplayName: "Admin", Role: domain.RoleAdmin}
}

func TestCreateBatch(t *testing.T) {
	service, repo, orderRepo, userRepo := NewMock(t)

	seller := &domain.User{ID: "seller-1", DisplayName: "Seller", Role: domain.RoleSeller}
	input := CreateBatchInput{SellerID: "seller-1", UPIID: "seller@upi", OrderIDs: []string{"o1", "o2"}}

	tests := []struct {
		name           string
		admin          *domain.User
		input          CreateBatchInput
		prepareMock    func()
		expectedAmount float64
		expectedStatus int
	}{
		{
			name:           "Seller can't create payouts",
			admin:          seller,
			input:          input,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing UPI id",
			admin:          admin(),
			input:          CreateBatchInput{SellerID: "seller-1", OrderIDs: []string{"o1"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty order list",
			admin:          admin(),
			input:          CreateBatchInput{SellerID: "seller-1", UPIID: "seller@upi"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Unknown seller",
			admin: admin(),
			input: input,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), "seller-1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "Order of another seller is refused",
			admin: admin(),
			input: input,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), "seller-1").Return(seller, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(&domain.Order{
					ID: "o1", SellerID: "seller-2", Status: settlementservice.VerifiedStatus,
				}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Unverified order is refused",
			admin: admin(),
			input: input,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), "seller-1").Return(seller, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(&domain.Order{
					ID: "o1", SellerID: "seller-1", Status: settlementservice.PendingVerificationStatus,
				}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Amount is the sum of seller earnings",
			admin: admin(),
			input: input,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), "seller-1").Return(seller, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o1").Return(&domain.Order{
					ID: "o1", SellerID: "seller-1", Status: settlementservice.VerifiedStatus, SellerEarnings: 350,
				}, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), "o2").Return(&domain.Order{
					ID: "o2", SellerID: "seller-1", Status: settlementservice.VerifiedStatus, SellerEarnings: 69.99,
				}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedAmount: 419.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payout, err := service.CreateBatch(context.Background(), tt.admin, tt.input)
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.From(err).Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, PendingStatus, payout.Status)
				assert.Equal(t, "Seller", payout.SellerName)
				assert.Equal(t, "seller@upi", payout.UPIID)
				assert.InDelta(t, tt.expectedAmount, payout.Amount, 1e-9)
			}
		})
	}
}

func TestMarkCompleted(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Unknown payout",
			prepareMock: func() {
				repo.EXPECT().MarkCompleted(gomock.Any(), "pay1", "admin-1", "Admin", gomock.Any()).Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), "pay1").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Completed payout conflicts",
			prepareMock: func() {
				repo.EXPECT().MarkCompleted(gomock.Any(), "pay1", "admin-1", "Admin", gomock.Any()).Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), "pay1").
					Return(&domain.Payout{ID: "pay1", Status: CompletedStatus}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Pending payout is completed",
			prepareMock: func() {
				repo.EXPECT().MarkCompleted(gomock.Any(), "pay1", "admin-1", "Admin", gomock.Any()).
					Return(&domain.Payout{ID: "pay1", Status: CompletedStatus}, nil)
			},
			expectedStatus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payout, err := service.MarkCompleted(context.Background(), admin(), "pay1")
			if tt.expectedStatus != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedStatus, apperrors.From(err).Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, CompletedStatus, payout.Status)
			}
		})
	}
}

func TestListPending(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	_, err := service.ListPending(context.Background(), &domain.User{ID: "u1", Role: domain.RoleBuyer})
	assert.Equal(t, http.StatusForbidden, apperrors.From(err).Status)

	repo.EXPECT().ListPending(gomock.Any()).Return([]domain.Payout{{ID: "pay1"}}, nil)
	payouts, err := service.ListPending(context.Background(), admin())
	assert.NoError(t, err)
	assert.Len(t, payouts, 1)
}

func TestListBySeller(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	_, err := service.ListBySeller(context.Background(), &domain.User{ID: "u1", Role: domain.RoleBuyer})
	assert.Equal(t, http.StatusForbidden, apperrors.From(err).Status)

	repo.EXPECT().ListBySeller(gomock.Any(), "seller-1").Return([]domain.Payout{{ID: "pay1"}}, nil)
	payouts, err := service.ListBySeller(context.Background(), &domain.User{ID: "seller-1", Role: domain.RoleSeller})
	assert.NoError(t, err)
	assert.Len(t, payouts, 1)
}
