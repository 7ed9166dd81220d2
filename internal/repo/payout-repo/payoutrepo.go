package payoutrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const payoutColumns = `id, seller_id, seller_name, amount, upi_id, status, order_ids, marked_by, marked_by_name, created_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(&p.ID, &p.SellerID, &p.SellerName, &p.Amount, &p.UPIID, &p.Status, &p.OrderIDs, &p.MarkedBy, &p.MarkedByName, &p.CreatedAt, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payout) error {
	query := `
        INSERT INTO payouts (id, seller_id, seller_name, amount, upi_id, status, order_ids, marked_by, marked_by_name, created_at, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query, p.ID, p.SellerID, p.SellerName, p.Amount, p.UPIID, p.Status, p.OrderIDs, p.MarkedBy, p.MarkedByName, p.CreatedAt, p.CompletedAt)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
    `
	p, err := scanPayout(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) ListPending(ctx context.Context) ([]domain.Payout, error) {
	return r.list(ctx, `
        SELECT `+payoutColumns+`
        FROM payouts
        WHERE status = 'pending'
        ORDER BY created_at DESC
    `)
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Payout, error) {
	return r.list(ctx, `
        SELECT `+payoutColumns+`
        FROM payouts
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `, sellerID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Payout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *p)
	}
	return payouts, rows.Err()
}

// MarkCompleted settles exactly one pending batch. Returns nil when the
// batch was already completed or unknown.
func (r *Repository) MarkCompleted(ctx context.Context, id, markedBy, markedByName string, completedAt time.Time) (*domain.Payout, error) {
	query := `
        UPDATE payouts
        SET status = 'completed', marked_by = $2, marked_by_name = $3, completed_at = $4
        WHERE id = $1 AND status = 'pending'
        RETURNING ` + payoutColumns + `
    `
	p, err := scanPayout(r.db.QueryRow(ctx, query, id, markedBy, markedByName, completedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't complete payout", zap.Error(err))
		return nil, err
	}
	return p, nil
}
