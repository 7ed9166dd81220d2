package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	handler := New(&config.Config{})
	timeNow := time.Now()

	tests := []struct {
		name           string
		principal      *domain.User
		expectedStatus int
	}{
		{
			name: "Authenticated user",
			principal: &domain.User{
				ID:          "user-1",
				Email:       "asha@example.com",
				DisplayName: "Asha",
				Role:        domain.RoleSeller,
				CreatedAt:   timeNow,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No principal",
			principal:      nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.principal != nil {
				req = req.WithContext(context.WithValue(req.Context(), auth.PrincipalKey, tt.principal))
			}
			rr := httptest.NewRecorder()

			handler.Me(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var got dto.UserDTO
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, "user-1", got.ID)
				assert.Equal(t, "asha@example.com", got.Email)
				assert.Equal(t, "seller", got.Role)
				assert.Equal(t, timeNow.Format(time.RFC3339), got.CreatedAt)
			}
		})
	}
}

func TestMarketplaceConfigHandler(t *testing.T) {
	handler := New(&config.Config{
		MarketplaceUPIID: "market@upi",
		CommissionRate:   0.3,
		SellerRate:       0.7,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config/marketplace", nil)
	rr := httptest.NewRecorder()

	handler.MarketplaceConfig(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got dto.MarketplaceConfigDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, dto.MarketplaceConfigDTO{
		UPIID:          "market@upi",
		CommissionRate: 0.3,
		SellerRate:     0.7,
	}, got)
}
