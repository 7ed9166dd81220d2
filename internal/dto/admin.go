package dto

import (
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
)

type RejectProductRequestDTO struct {
	Reason string `json:"reason"`
}

type ChangeRoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=buyer seller admin"`
}

type AdminLogDTO struct {
	ID         string `json:"id"`
	Action     string `json:"action" example:"approve_product"`
	AdminID    string `json:"adminId"`
	AdminName  string `json:"adminName"`
	TargetID   string `json:"targetId"`
	TargetType string `json:"targetType" example:"product"`
	Details    string `json:"details"`
	CreatedAt  string `json:"createdAt"`
}

func NewAdminLogDTOs(logs []domain.AdminLog) []AdminLogDTO {
	out := make([]AdminLogDTO, 0, len(logs))
	for _, entry := range logs {
		out = append(out, AdminLogDTO{
			ID:         entry.ID,
			Action:     entry.Action,
			AdminID:    entry.AdminID,
			AdminName:  entry.AdminName,
			TargetID:   entry.TargetID,
			TargetType: entry.TargetType,
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

type CreatePayoutRequestDTO struct {
	SellerID string   `json:"sellerId" validate:"required"`
	UPIID    string   `json:"upiId" validate:"required"`
	OrderIDs []string `json:"orderIds" validate:"required,min=1"`
}

type PayoutDTO struct {
	ID           string   `json:"id"`
	SellerID     string   `json:"sellerId"`
	SellerName   string   `json:"sellerName"`
	Amount       float64  `json:"amount"`
	UPIID        string   `json:"upiId"`
	Status       string   `json:"status" example:"pending"`
	OrderIDs     []string `json:"orderIds"`
	MarkedBy     *string  `json:"markedBy,omitempty"`
	MarkedByName *string  `json:"markedByName,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	CompletedAt  *string  `json:"completedAt,omitempty"`
}

func NewPayoutDTO(p domain.Payout) PayoutDTO {
	return PayoutDTO{
		ID:           p.ID,
		SellerID:     p.SellerID,
		SellerName:   p.SellerName,
		Amount:       p.Amount,
		UPIID:        p.UPIID,
		Status:       p.Status,
		OrderIDs:     p.OrderIDs,
		MarkedBy:     p.MarkedBy,
		MarkedByName: p.MarkedByName,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		CompletedAt:  formatTime(p.CompletedAt),
	}
}

func NewPayoutDTOs(payouts []domain.Payout) []PayoutDTO {
	out := make([]PayoutDTO, 0, len(payouts))
	for _, p := range payouts {
		out = append(out, NewPayoutDTO(p))
	}
	return out
}
