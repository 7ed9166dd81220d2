package products

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/dto"
	"github.com/GlebRadaev/gomarket/internal/service/moderationservice"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	SubmitProduct(ctx context.Context, seller *domain.User, in moderationservice.SubmitProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	ListApproved(ctx context.Context) ([]domain.Product, error)
	ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Product, error)
}

type ProductHandler struct {
	moderationService Service
	cfg               *config.Config
}

func New(moderationService Service, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		moderationService: moderationService,
		cfg:               cfg,
	}
}

// multipartMemory bounds what ParseMultipartForm keeps in RAM; larger parts
// spill to temp files before the size caps are checked.
const multipartMemory = 32 << 20

// ListApproved godoc
//
//	@Summary		List approved products
//	@Description	Public marketplace listing, newest first
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products/approved [get]
func (h *ProductHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	products, err := h.moderationService.ListApproved(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTOs(products))
}

// Get godoc
//
//	@Summary		Get one product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string	true	"Product id"
//	@Success		200	{object}	dto.ProductDTO
//	@Failure		404	{object}	utils.Response	"Product not found"
//	@Router			/api/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.moderationService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTO(*product))
}

// ListMine godoc
//
//	@Summary		List the caller's own listings
//	@Tags			Products
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProductDTO
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Failure		403	{object}	utils.Response	"Seller access required"
//	@Router			/api/products/my [get]
func (h *ProductHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	products, err := h.moderationService.ListBySeller(r.Context(), principal)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductDTOs(products))
}

// Submit godoc
//
//	@Summary		Submit a product for moderation
//	@Description	Multipart upload: title, description, price, tags (JSON array) plus thumbnail and file parts
//	@Tags			Products
//	@Accept			mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ProductDTO
//	@Failure		400	{object}	utils.Response	"Validation failure"
//	@Failure		403	{object}	utils.Response	"Seller access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products [post]
func (h *ProductHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.Principal(r.Context())

	// Cap the whole body before parsing; otherwise an oversized upload
	// streams fully into multipart temp files before the size checks run.
	// The extra megabyte covers the text fields and part boundaries.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxFileSize+h.cfg.MaxThumbnailSize+1<<20)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "price must be a positive number")
		return
	}

	var tags []string
	if raw := r.FormValue("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tags); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "tags must be a JSON array of strings")
			return
		}
	}

	in := moderationservice.SubmitProductInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       price,
		Tags:        tags,
	}

	thumbnail, thumbnailHeader, err := r.FormFile("thumbnail")
	if err == nil {
		defer thumbnail.Close()
		in.Thumbnail = moderationservice.Upload{
			Reader:      thumbnail,
			Size:        thumbnailHeader.Size,
			ContentType: thumbnailHeader.Header.Get("Content-Type"),
			FileName:    thumbnailHeader.Filename,
		}
	}
	file, fileHeader, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		in.File = moderationservice.Upload{
			Reader:      file,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			FileName:    fileHeader.Filename,
		}
	}

	product, err := h.moderationService.SubmitProduct(r.Context(), principal, in)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewProductDTO(*product))
}
