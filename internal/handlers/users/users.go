package users

import (
	"net/http"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
)

type UserHandler struct {
	cfg *config.Config
}

func New(cfg *config.Config) *UserHandler {
	return &UserHandler{cfg: cfg}
}

// Me godoc
//
//	@Summary		Current user profile
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		401	{object}	utils.Response	"Missing or invalid token"
//	@Router			/api/auth/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.Principal(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*principal))
}

// MarketplaceConfig godoc
//
//	@Summary		Public marketplace settings
//	@Description	Payment destination and commission rates shown at checkout
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MarketplaceConfigDTO
//	@Router			/api/config/marketplace [get]
func (h *UserHandler) MarketplaceConfig(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.MarketplaceConfigDTO{
		UPIID:          h.cfg.MarketplaceUPIID,
		CommissionRate: h.cfg.CommissionRate,
		SellerRate:     h.cfg.SellerRate,
	})
}
