package auditservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Every privileged transition lands here, inside the same transaction that
// applied it. There is no update or delete path: the log is the marketplace's
// tamper evidence.

const (
	ActionApproveProduct = "approve_product"
	ActionRejectProduct  = "reject_product"
	ActionVerifyPayment  = "verify_payment"
	ActionRejectPayment  = "reject_payment"
	ActionDownloadFile   = "download_file"
	ActionUpdateRole     = "update_role"
)

const (
	TargetProduct = "product"
	TargetOrder   = "order"
	TargetUser    = "user"
)

const defaultLimit = 50

type Repo interface {
	Insert(ctx context.Context, entry *domain.AdminLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.AdminLog, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Entry builds a log row for an admin action. Callers insert it through
// their AuditRepo so it joins the surrounding transaction.
func Entry(action string, admin *domain.User, targetID, targetType, details string) *domain.AdminLog {
	return &domain.AdminLog{
		ID:         uuid.NewString(),
		Action:     action,
		AdminID:    admin.ID,
		AdminName:  admin.DisplayName,
		TargetID:   targetID,
		TargetType: targetType,
		Details:    details,
		CreatedAt:  time.Now(),
	}
}

func (s *Service) ListRecent(ctx context.Context, admin *domain.User, limit int) ([]domain.AdminLog, error) {
	if admin == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(admin.Role, auth.CapAdmin) {
		return nil, apperrors.Forbidden("Admin access required", nil)
	}
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	logs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		zap.L().Error("can't list admin logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
