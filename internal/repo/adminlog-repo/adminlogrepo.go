package adminlogrepo

import (
	"context"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"go.uber.org/zap"
)

// Repository is append-only on purpose: there is no update or delete
// statement anywhere in this package.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, entry *domain.AdminLog) error {
	query := `
        INSERT INTO admin_logs (id, action, admin_id, admin_name, target_id, target_type, details, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.Action, entry.AdminID, entry.AdminName, entry.TargetID, entry.TargetType, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save admin log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.AdminLog, error) {
	query := `
        SELECT id, action, admin_id, admin_name, target_id, target_type, details, created_at
        FROM admin_logs
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get admin logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var logs []domain.AdminLog
	for rows.Next() {
		var entry domain.AdminLog
		err := rows.Scan(&entry.ID, &entry.Action, &entry.AdminID, &entry.AdminName, &entry.TargetID, &entry.TargetType, &entry.Details, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan admin log row", zap.Error(err))
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
