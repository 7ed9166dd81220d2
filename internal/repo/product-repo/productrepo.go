package productrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const productColumns = `id, title, description, price, tags, thumbnail_url, file_url, file_name, file_size,
        seller_id, seller_name, seller_photo_url, status, rejection_reason, created_at, approved_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Tags, &p.ThumbnailURL, &p.FileURL, &p.FileName, &p.FileSize,
		&p.SellerID, &p.SellerName, &p.SellerPhotoURL, &p.Status, &p.RejectionReason, &p.CreatedAt, &p.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) error {
	query := `
        INSERT INTO products (id, title, description, price, tags, thumbnail_url, file_url, file_name, file_size,
            seller_id, seller_name, seller_photo_url, status, rejection_reason, created_at, approved_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.Price, p.Tags, p.ThumbnailURL, p.FileURL, p.FileName, p.FileSize,
		p.SellerID, p.SellerName, p.SellerPhotoURL, p.Status, p.RejectionReason, p.CreatedAt, p.ApprovedAt,
	)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = $1
    `
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE status = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get products by status", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("can't get seller products", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// Approve is a conditional update: a rejected product never becomes approved,
// re-approving only re-stamps approved_at. Returns nil when no row matched.
func (r *Repository) Approve(ctx context.Context, id string, approvedAt time.Time) (*domain.Product, error) {
	query := `
        UPDATE products
        SET status = 'approved', approved_at = $2
        WHERE id = $1 AND status IN ('pending', 'approved')
        RETURNING ` + productColumns + `
    `
	p, err := scanProduct(r.db.QueryRow(ctx, query, id, approvedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't approve product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Reject mirrors Approve: an approved product stays approved.
func (r *Repository) Reject(ctx context.Context, id, reason string) (*domain.Product, error) {
	query := `
        UPDATE products
        SET status = 'rejected', rejection_reason = $2
        WHERE id = $1 AND status IN ('pending', 'rejected')
        RETURNING ` + productColumns + `
    `
	p, err := scanProduct(r.db.QueryRow(ctx, query, id, reason))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't reject product", zap.Error(err))
		return nil, err
	}
	return p, nil
}
