package service

import (
	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/repo"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/internal/service/identityservice"
	"github.com/GlebRadaev/gomarket/internal/service/moderationservice"
	"github.com/GlebRadaev/gomarket/internal/service/payoutservice"
	"github.com/GlebRadaev/gomarket/internal/service/settlementservice"
	"github.com/GlebRadaev/gomarket/pkg/blob"
)

type Services struct {
	IdentityService   *identityservice.Service
	ModerationService *moderationservice.Service
	SettlementService *settlementservice.Service
	AuditService      *auditservice.Service
	PayoutService     *payoutservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, store blob.Store, cfg *config.Config) *Services {
	identityService := identityservice.New(repo.UserRepo, repo.AuditRepo, txManager)
	moderationService := moderationservice.New(repo.ProductRepo, repo.AuditRepo, txManager, store, cfg)
	settlementService := settlementservice.New(repo.OrderRepo, repo.ProductRepo, repo.AuditRepo, txManager, cfg)
	auditService := auditservice.New(repo.AuditRepo)
	payoutService := payoutservice.New(repo.PayoutRepo, repo.OrderRepo, repo.UserRepo)

	return &Services{
		IdentityService:   identityService,
		ModerationService: moderationService,
		SettlementService: settlementService,
		AuditService:      auditService,
		PayoutService:     payoutService,
	}
}
