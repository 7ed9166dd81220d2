package identityservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, displayName string, photoURL *string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AdminLog) error
}

type Service struct {
	userRepo  Repo
	auditRepo AuditRepo
	txManager pg.TXManager
}

func New(userRepo Repo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		txManager: txManager,
	}
}

// Resolve exchanges a verified identity for the stored user row. The role is
// whatever the store says; the identity provider has no say in it. First
// sight creates a buyer.
func (s *Service) Resolve(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	var photoURL *string
	if identity.PhotoURL != "" {
		photoURL = &identity.PhotoURL
	}

	if user == nil {
		user = &domain.User{
			ID:          identity.ID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
			PhotoURL:    photoURL,
			Role:        domain.RoleBuyer,
			CreatedAt:   time.Now(),
		}
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		zap.L().Info("new user registered", zap.String("userID", user.ID))
		return user, nil
	}

	if user.DisplayName != identity.DisplayName || !equalPhoto(user.PhotoURL, photoURL) {
		if err := s.userRepo.UpdateProfile(ctx, user.ID, identity.DisplayName, photoURL); err != nil {
			return nil, err
		}
		user.DisplayName = identity.DisplayName
		user.PhotoURL = photoURL
	}
	return user, nil
}

func equalPhoto(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User", nil)
	}
	return user, nil
}

// ChangeRole is the only role mutation in the system: admin-gated and
// audited under update_role.
func (s *Service) ChangeRole(ctx context.Context, admin *domain.User, userID string, newRole domain.Role) (*domain.User, error) {
	if admin == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(admin.Role, auth.CapAdmin) {
		return nil, apperrors.Forbidden("Admin access required", nil)
	}
	if !newRole.Valid() {
		return nil, apperrors.Validation("invalid role", nil)
	}

	var updated *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.UpdateRole(ctx, userID, newRole)
		if err != nil {
			return err
		}
		if user == nil {
			return apperrors.NotFound("User", nil)
		}
		updated = user

		entry := auditservice.Entry(auditservice.ActionUpdateRole, admin, userID, auditservice.TargetUser,
			fmt.Sprintf("Changed role for user %s to %s", user.Email, newRole))
		return s.auditRepo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user role changed", zap.String("userID", userID), zap.String("role", string(newRole)))
	return updated, nil
}
