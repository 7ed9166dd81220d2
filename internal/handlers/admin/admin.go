package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/internal/notify"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/internal/service/payoutservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ModerationService interface {
	ListPending(ctx context.Context, admin *domain.User) ([]domain.Product, error)
	Approve(ctx context.Context, admin *domain.User, productID string) (*domain.Product, error)
	Reject(ctx context.Context, admin *domain.User, productID, reason string) (*domain.Product, error)
	FetchForDownload(ctx context.Context, admin *domain.User, productID string) (*domain.Product, error)
}

type SettlementService interface {
	ListPendingVerification(ctx context.Context, admin *domain.User) ([]domain.Order, error)
	VerifyPayment(ctx context.Context, admin *domain.User, orderID string) (*domain.Order, error)
	RejectPayment(ctx context.Context, admin *domain.User, orderID string) (*domain.Order, error)
}

type IdentityService interface {
	ChangeRole(ctx context.Context, admin *domain.User, userID string, newRole domain.Role) (*domain.User, error)
}

type AuditService interface {
	ListRecent(ctx context.Context, admin *domain.User, limit int) ([]domain.AdminLog, error)
}

type PayoutService interface {
	CreateBatch(ctx context.Context, admin *domain.User, in payoutservice.CreateBatchInput) (*domain.Payout, error)
	MarkCompleted(ctx context.Context, admin *domain.User, payoutID string) (*domain.Payout, error)
	ListPending(ctx context.Context, admin *domain.User) ([]domain.Payout, error)
}

type AdminHandler struct {
	moderationService ModerationService
	settlementService SettlementService
	identityService   IdentityService
	auditService      AuditService
	payoutService     PayoutService
	notifier          notify.Publisher
	validate          *validator.Validate
}

func New(
	moderationService ModerationService,
	settlementService SettlementService,
	identityService IdentityService,
	auditService AuditService,
	payoutService PayoutService,
	notifier notify.Publisher,
) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		settlementService: settlementService,
		identityService:   identityService,
		auditService:      auditService,
		payoutService:     payoutService,
		notifier:          notifier,
		validate:          validator.New(),
	}
}

// PendingProducts godoc
//
//	@Summary		List products awaiting moderation
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/products/pending [get]
func (h *AdminHandler) PendingProducts(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	products, err := h.moderationService.ListPending(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTOs(products))
}

// ApproveProduct godoc
//
//	@Summary		Approve a pending product
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Product id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProductDTO
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Failure		409	{object}	utils.Response	"Product already rejected"
//	@Router			/api/admin/products/{id}/approve [post]
func (h *AdminHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())
	productID := chi.URLParam(r, "id")

	product, err := h.moderationService.Approve(r.Context(), principal, productID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	h.notifier.Publish(r.Context(), notify.Event{
		Action:     auditservice.ActionApproveProduct,
		AdminName:  principal.DisplayName,
		TargetID:   productID,
		TargetType: auditservice.TargetProduct,
		Details:    product.Title,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTO(*product))
}

// RejectProduct godoc
//
//	@Summary		Reject a pending product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Product id"
//	@Param			request	body	dto.RejectProductRequestDTO	true	"Rejection reason"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProductDTO
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Router			/api/admin/products/{id}/reject [post]
func (h *AdminHandler) RejectProduct(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())
	productID := chi.URLParam(r, "id")

	var req dto.RejectProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.moderationService.Reject(r.Context(), principal, productID, req.Reason)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	h.notifier.Publish(r.Context(), notify.Event{
		Action:     auditservice.ActionRejectProduct,
		AdminName:  principal.DisplayName,
		TargetID:   productID,
		TargetType: auditservice.TargetProduct,
		Details:    req.Reason,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTO(*product))
}

// DownloadProduct godoc
//
//	@Summary		Fetch a product file reference for verification
//	@Description	Every admin file access is audited
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Product id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DownloadDTO
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Router			/api/admin/products/{id}/download [get]
func (h *AdminHandler) DownloadProduct(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	product, err := h.moderationService.FetchForDownload(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DownloadDTO{
		DownloadURL: product.FileURL,
		FileName:    product.FileName,
	})
}

// PendingOrders godoc
//
//	@Summary		List payment claims awaiting verification
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/orders/pending [get]
func (h *AdminHandler) PendingOrders(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	orders, err := h.settlementService.ListPendingVerification(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// VerifyOrder godoc
//
//	@Summary		Confirm a claimed payment
//	@Description	Unlocks the product download for the buyer
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order not awaiting verification"
//	@Router			/api/admin/orders/{id}/verify [post]
func (h *AdminHandler) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())
	orderID := chi.URLParam(r, "id")

	order, err := h.settlementService.VerifyPayment(r.Context(), principal, orderID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	h.notifier.Publish(r.Context(), notify.Event{
		Action:     auditservice.ActionVerifyPayment,
		AdminName:  principal.DisplayName,
		TargetID:   orderID,
		TargetType: auditservice.TargetOrder,
		Details:    order.TransactionID,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

// RejectOrder godoc
//
//	@Summary		Reject a claimed payment
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/api/admin/orders/{id}/reject [post]
func (h *AdminHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())
	orderID := chi.URLParam(r, "id")

	order, err := h.settlementService.RejectPayment(r.Context(), principal, orderID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	h.notifier.Publish(r.Context(), notify.Event{
		Action:     auditservice.ActionRejectPayment,
		AdminName:  principal.DisplayName,
		TargetID:   orderID,
		TargetType: auditservice.TargetOrder,
		Details:    order.TransactionID,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

// Logs godoc
//
//	@Summary		Read the audit trail
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AdminLogDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/logs [get]
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	logs, err := h.auditService.ListRecent(r.Context(), principal, 50)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdminLogDTOs(logs))
}

// ChangeRole godoc
//
//	@Summary		Change a user's role
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"User id"
//	@Param			request	body	dto.ChangeRoleRequestDTO	true	"New role"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		400	{object}	utils.Response	"Invalid role"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/admin/users/{id}/role [post]
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	var req dto.ChangeRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role, _ := domain.ParseRole(req.Role)
	user, err := h.identityService.ChangeRole(r.Context(), principal, chi.URLParam(r, "id"), role)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// PendingPayouts godoc
//
//	@Summary		List pending payout batches
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/payouts [get]
func (h *AdminHandler) PendingPayouts(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	payouts, err := h.payoutService.ListPending(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTOs(payouts))
}

// CreatePayout godoc
//
//	@Summary		Batch verified orders into a payout
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreatePayoutRequestDTO	true	"Payout batch"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PayoutDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Router			/api/admin/payouts [post]
func (h *AdminHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	var req dto.CreatePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payout, err := h.payoutService.CreateBatch(r.Context(), principal, payoutservice.CreateBatchInput{
		SellerID: req.SellerID,
		UPIID:    req.UPIID,
		OrderIDs: req.OrderIDs,
	})
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPayoutDTO(*payout))
}

// CompletePayout godoc
//
//	@Summary		Mark a payout batch as transferred
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Payout id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		404	{object}	utils.Response	"Payout not found"
//	@Failure		409	{object}	utils.Response	"Payout already completed"
//	@Router			/api/admin/payouts/{id}/complete [post]
func (h *AdminHandler) CompletePayout(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	payout, err := h.payoutService.MarkCompleted(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTO(*payout))
}
