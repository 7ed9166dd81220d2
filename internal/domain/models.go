package domain

import "time"

// Role is the single authorization axis. It lives on the user row and is
// re-read from the store on every privileged call.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	PhotoURL    *string   `db:"photo_url"`
	Role        Role      `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

type Product struct {
	ID              string     `db:"id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Price           float64    `db:"price"`
	Tags            []string   `db:"tags"`
	ThumbnailURL    string     `db:"thumbnail_url"`
	FileURL         string     `db:"file_url"`
	FileName        string     `db:"file_name"`
	FileSize        int64      `db:"file_size"`
	SellerID        string     `db:"seller_id"`
	SellerName      string     `db:"seller_name"`
	SellerPhotoURL  *string    `db:"seller_photo_url"`
	Status          string     `db:"status"`
	RejectionReason *string    `db:"rejection_reason"`
	CreatedAt       time.Time  `db:"created_at"`
	ApprovedAt      *time.Time `db:"approved_at"`
}

type Order struct {
	ID                    string     `db:"id"`
	ProductID             string     `db:"product_id"`
	ProductTitle          string     `db:"product_title"`
	BuyerID               string     `db:"buyer_id"`
	BuyerName             string     `db:"buyer_name"`
	BuyerEmail            string     `db:"buyer_email"`
	SellerID              string     `db:"seller_id"`
	TransactionID         string     `db:"transaction_id"`
	Amount                float64    `db:"amount"`
	Status                string     `db:"status"`
	DownloadURL           *string    `db:"download_url"`
	SellerEarnings        float64    `db:"seller_earnings"`
	MarketplaceCommission float64    `db:"marketplace_commission"`
	CreatedAt             time.Time  `db:"created_at"`
	VerifiedAt            *time.Time `db:"verified_at"`
}

type AdminLog struct {
	ID         string    `db:"id"`
	Action     string    `db:"action"`
	AdminID    string    `db:"admin_id"`
	AdminName  string    `db:"admin_name"`
	TargetID   string    `db:"target_id"`
	TargetType string    `db:"target_type"`
	Details    string    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}

type Payout struct {
	ID           string     `db:"id"`
	SellerID     string     `db:"seller_id"`
	SellerName   string     `db:"seller_name"`
	Amount       float64    `db:"amount"`
	UPIID        string     `db:"upi_id"`
	Status       string     `db:"status"`
	OrderIDs     []string   `db:"order_ids"`
	MarkedBy     *string    `db:"marked_by"`
	MarkedByName *string    `db:"marked_by_name"`
	CreatedAt    time.Time  `db:"created_at"`
	CompletedAt  *time.Time `db:"completed_at"`
}
