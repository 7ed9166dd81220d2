package dto

import (
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
)

type UserDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoURL,omitempty"`
	Role        string  `json:"role" example:"buyer"`
	CreatedAt   string  `json:"createdAt"`
}

func NewUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

type MarketplaceConfigDTO struct {
	UPIID          string  `json:"upiId" example:"marketplace@upi"`
	CommissionRate float64 `json:"commissionRate" example:"0.3"`
	SellerRate     float64 `json:"sellerRate" example:"0.7"`
}
