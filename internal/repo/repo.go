package repo

import (
	"github.com/GlebRadaev/gomarket/internal/pg"
	adminlogrepo "github.com/GlebRadaev/gomarket/internal/repo/adminlog-repo"
	orderrepo "github.com/GlebRadaev/gomarket/internal/repo/order-repo"
	payoutrepo "github.com/GlebRadaev/gomarket/internal/repo/payout-repo"
	productrepo "github.com/GlebRadaev/gomarket/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/gomarket/internal/repo/user-repo"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/internal/service/identityservice"
	"github.com/GlebRadaev/gomarket/internal/service/moderationservice"
	"github.com/GlebRadaev/gomarket/internal/service/payoutservice"
	"github.com/GlebRadaev/gomarket/internal/service/settlementservice"
)

type Repositories struct {
	UserRepo    identityservice.Repo
	ProductRepo moderationservice.Repo
	OrderRepo   settlementservice.OrderRepo
	AuditRepo   auditservice.Repo
	PayoutRepo  payoutservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		ProductRepo: productrepo.New(conn),
		OrderRepo:   orderrepo.New(conn),
		AuditRepo:   adminlogrepo.New(conn),
		PayoutRepo:  payoutrepo.New(conn),
	}
}
