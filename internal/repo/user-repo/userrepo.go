package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.PhotoURL, &role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT id, email, display_name, photo_url, role, created_at
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(repo.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, display_name, photo_url, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := repo.db.Exec(ctx, query, user.ID, user.Email, user.DisplayName, user.PhotoURL, string(user.Role), user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, id, displayName string, photoURL *string) error {
	query := `
        UPDATE users
        SET display_name = $2, photo_url = $3
        WHERE id = $1
    `
	_, err := repo.db.Exec(ctx, query, id, displayName, photoURL)
	if err != nil {
		zap.L().Error("can't update user profile", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	query := `
        UPDATE users
        SET role = $2
        WHERE id = $1
        RETURNING id, email, display_name, photo_url, role, created_at
    `
	user, err := scanUser(repo.db.QueryRow(ctx, query, id, string(role)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return nil, err
	}
	return user, nil
}
