package dto

import (
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
)

// CreateOrderRequestDTO carries the buyer's payment claim. Earnings and
// commission fields are not accepted here at all: the split is recomputed
// server-side from configured rates.
type CreateOrderRequestDTO struct {
	ProductID     string  `json:"productId" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required,min=8,max=32"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type OrderDTO struct {
	ID                    string  `json:"id"`
	ProductID             string  `json:"productId"`
	ProductTitle          string  `json:"productTitle"`
	BuyerID               string  `json:"buyerId"`
	BuyerName             string  `json:"buyerName"`
	BuyerEmail            string  `json:"buyerEmail"`
	SellerID              string  `json:"sellerId"`
	TransactionID         string  `json:"transactionId"`
	Amount                float64 `json:"amount" example:"500"`
	Status                string  `json:"status" example:"pending_verification"`
	DownloadURL           *string `json:"downloadURL,omitempty"`
	SellerEarnings        float64 `json:"sellerEarnings" example:"350"`
	MarketplaceCommission float64 `json:"marketplaceCommission" example:"150"`
	CreatedAt             string  `json:"createdAt"`
	VerifiedAt            *string `json:"verifiedAt,omitempty"`
}

func NewOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:                    o.ID,
		ProductID:             o.ProductID,
		ProductTitle:          o.ProductTitle,
		BuyerID:               o.BuyerID,
		BuyerName:             o.BuyerName,
		BuyerEmail:            o.BuyerEmail,
		SellerID:              o.SellerID,
		TransactionID:         o.TransactionID,
		Amount:                o.Amount,
		Status:                o.Status,
		DownloadURL:           o.DownloadURL,
		SellerEarnings:        o.SellerEarnings,
		MarketplaceCommission: o.MarketplaceCommission,
		CreatedAt:             o.CreatedAt.Format(time.RFC3339),
		VerifiedAt:            formatTime(o.VerifiedAt),
	}
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderDTO(o))
	}
	return out
}
