package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `id, product_id, product_title, buyer_id, buyer_name, buyer_email, seller_id, transaction_id,
        amount, status, download_url, seller_earnings, marketplace_commission, created_at, verified_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.ProductID, &o.ProductTitle, &o.BuyerID, &o.BuyerName, &o.BuyerEmail, &o.SellerID, &o.TransactionID,
		&o.Amount, &o.Status, &o.DownloadURL, &o.SellerEarnings, &o.MarketplaceCommission, &o.CreatedAt, &o.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()
	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *Repository) Create(ctx context.Context, o *domain.Order) error {
	query := `
        INSERT INTO orders (id, product_id, product_title, buyer_id, buyer_name, buyer_email, seller_id, transaction_id,
            amount, status, download_url, seller_earnings, marketplace_commission, created_at, verified_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err := r.db.Exec(ctx, query,
		o.ID, o.ProductID, o.ProductTitle, o.BuyerID, o.BuyerName, o.BuyerEmail, o.SellerID, o.TransactionID,
		o.Amount, o.Status, o.DownloadURL, o.SellerEarnings, o.MarketplaceCommission, o.CreatedAt, o.VerifiedAt,
	)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *Repository) ListPendingVerification(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = 'pending_verification'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending orders", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) ListByBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE buyer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		zap.L().Error("can't get buyer orders", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("can't get seller orders", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// Verify flips exactly one pending_verification order to verified and pins
// the download reference. Returns nil when the order was not pending.
func (r *Repository) Verify(ctx context.Context, id, downloadURL string, verifiedAt time.Time) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = 'verified', download_url = $2, verified_at = $3
        WHERE id = $1 AND status = 'pending_verification'
        RETURNING ` + orderColumns + `
    `
	o, err := scanOrder(r.db.QueryRow(ctx, query, id, downloadURL, verifiedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't verify order", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *Repository) Reject(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = 'rejected'
        WHERE id = $1 AND status = 'pending_verification'
        RETURNING ` + orderColumns + `
    `
	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't reject order", zap.Error(err))
		return nil, err
	}
	return o, nil
}
