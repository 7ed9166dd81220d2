package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/gomarket/docs"
	"github.com/GlebRadaev/gomarket/internal/config"
	adminhandlers "github.com/GlebRadaev/gomarket/internal/handlers/admin"
	ordershandlers "github.com/GlebRadaev/gomarket/internal/handlers/orders"
	producthandlers "github.com/GlebRadaev/gomarket/internal/handlers/products"
	userhandlers "github.com/GlebRadaev/gomarket/internal/handlers/users"
	"github.com/GlebRadaev/gomarket/internal/notify"
	"github.com/GlebRadaev/gomarket/internal/service"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ProductHandler interface {
	ListApproved(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Sales(w http.ResponseWriter, r *http.Request)
	Payouts(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	MarketplaceConfig(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	PendingProducts(w http.ResponseWriter, r *http.Request)
	ApproveProduct(w http.ResponseWriter, r *http.Request)
	RejectProduct(w http.ResponseWriter, r *http.Request)
	DownloadProduct(w http.ResponseWriter, r *http.Request)
	PendingOrders(w http.ResponseWriter, r *http.Request)
	VerifyOrder(w http.ResponseWriter, r *http.Request)
	RejectOrder(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	PendingPayouts(w http.ResponseWriter, r *http.Request)
	CreatePayout(w http.ResponseWriter, r *http.Request)
	CompletePayout(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProductHandler ProductHandler
	OrderHandler   OrderHandler
	UserHandler    UserHandler
	AdminHandler   AdminHandler

	cfg        *config.Config
	authMdlw   *auth.Middleware
	jwtService *auth.JWTService
}

func New(s *service.Services, cfg *config.Config, notifier notify.Publisher) *Handlers {
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	return &Handlers{
		ProductHandler: producthandlers.New(s.ModerationService, cfg),
		OrderHandler:   ordershandlers.New(s.SettlementService, s.PayoutService),
		UserHandler:    userhandlers.New(cfg),
		AdminHandler: adminhandlers.New(
			s.ModerationService,
			s.SettlementService,
			s.IdentityService,
			s.AuditService,
			s.PayoutService,
			notifier,
		),
		cfg:        cfg,
		authMdlw:   auth.NewMiddleware(jwtService, s.IdentityService),
		jwtService: jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.cfg.GCSBucket == "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.cfg.UploadDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products/approved", h.ProductHandler.ListApproved)
		r.Get("/products/{id}", h.ProductHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(h.authMdlw.Authenticate)

			r.Get("/auth/me", h.UserHandler.Me)
			r.Get("/config/marketplace", h.UserHandler.MarketplaceConfig)
			r.Post("/orders", h.OrderHandler.Create)
			r.Get("/orders/my", h.OrderHandler.My)

			r.Group(func(r chi.Router) {
				r.Use(h.authMdlw.Require(auth.CapSell))
				r.Get("/products/my", h.ProductHandler.ListMine)
				r.Post("/products", h.ProductHandler.Submit)
				r.Get("/orders/sales", h.OrderHandler.Sales)
				r.Get("/payouts/my", h.OrderHandler.Payouts)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.authMdlw.Require(auth.CapAdmin))
				r.Get("/products/pending", h.AdminHandler.PendingProducts)
				r.Post("/products/{id}/approve", h.AdminHandler.ApproveProduct)
				r.Post("/products/{id}/reject", h.AdminHandler.RejectProduct)
				r.Get("/products/{id}/download", h.AdminHandler.DownloadProduct)
				r.Get("/orders/pending", h.AdminHandler.PendingOrders)
				r.Post("/orders/{id}/verify", h.AdminHandler.VerifyOrder)
				r.Post("/orders/{id}/reject", h.AdminHandler.RejectOrder)
				r.Get("/logs", h.AdminHandler.Logs)
				r.Post("/users/{id}/role", h.AdminHandler.ChangeRole)
				r.Get("/payouts", h.AdminHandler.PendingPayouts)
				r.Post("/payouts", h.AdminHandler.CreatePayout)
				r.Post("/payouts/{id}/complete", h.AdminHandler.CompletePayout)
			})
		})
	})

	return r
}
