package dto

import (
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
)

type ProductDTO struct {
	ID              string   `json:"id" example:"7b1c3f2e-bc61-4a8e-9d5f-2f1f0b9b7a10"`
	Title           string   `json:"title" example:"Icon pack vol. 2"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" example:"500"`
	Tags            []string `json:"tags"`
	ThumbnailURL    string   `json:"thumbnailURL"`
	FileName        string   `json:"fileName" example:"icons.zip"`
	FileSize        int64    `json:"fileSize" example:"10485760"`
	SellerID        string   `json:"sellerId"`
	SellerName      string   `json:"sellerName"`
	SellerPhotoURL  *string  `json:"sellerPhotoURL,omitempty"`
	Status          string   `json:"status" example:"pending"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
	CreatedAt       string   `json:"createdAt" example:"2025-01-09T16:09:57+05:30"`
	ApprovedAt      *string  `json:"approvedAt,omitempty"`
}

// NewProductDTO deliberately omits fileURL: the file reference only leaves
// the system through a verified order or an audited admin download.
func NewProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		Tags:            p.Tags,
		ThumbnailURL:    p.ThumbnailURL,
		FileName:        p.FileName,
		FileSize:        p.FileSize,
		SellerID:        p.SellerID,
		SellerName:      p.SellerName,
		SellerPhotoURL:  p.SellerPhotoURL,
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		ApprovedAt:      formatTime(p.ApprovedAt),
	}
}

func NewProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductDTO(p))
	}
	return out
}

type DownloadDTO struct {
	DownloadURL string `json:"downloadURL"`
	FileName    string `json:"fileName"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
