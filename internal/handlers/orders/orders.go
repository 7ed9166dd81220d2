package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	CreateOrder(ctx context.Context, buyer *domain.User, productID, transactionID string, amount float64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyer *domain.User) ([]domain.Order, error)
	ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Order, error)
}

type PayoutService interface {
	ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Payout, error)
}

type OrderHandler struct {
	settlementService Service
	payoutService     PayoutService
	validate          *validator.Validate
}

func New(settlementService Service, payoutService PayoutService) *OrderHandler {
	return &OrderHandler{
		settlementService: settlementService,
		payoutService:     payoutService,
		validate:          validator.New(),
	}
}

// Create godoc
//
//	@Summary		Submit a payment claim for a product
//	@Description	Records the claimed UPI transaction; the earnings split is computed server-side
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.settlementService.CreateOrder(r.Context(), principal, req.ProductID, req.TransactionID, req.Amount)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderDTO(*order))
}

// My godoc
//
//	@Summary		List the caller's purchases
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderDTO
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Router			/api/orders/my [get]
func (h *OrderHandler) My(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	orders, err := h.settlementService.ListByBuyer(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// Sales godoc
//
//	@Summary		List orders on the caller's listings
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderDTO
//	@Failure		403	{object}	utils.Response	"Seller access required"
//	@Router			/api/orders/sales [get]
func (h *OrderHandler) Sales(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	orders, err := h.settlementService.ListBySeller(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// Payouts godoc
//
//	@Summary		List the caller's payout batches
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Failure		403	{object}	utils.Response	"Seller access required"
//	@Router			/api/payouts/my [get]
func (h *OrderHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	payouts, err := h.payoutService.ListBySeller(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTOs(payouts))
}
