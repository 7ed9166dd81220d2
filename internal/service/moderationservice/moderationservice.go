package moderationservice

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/GlebRadaev/gomarket/internal/pg"
	"github.com/GlebRadaev/gomarket/internal/service/auditservice"
	"github.com/GlebRadaev/gomarket/pkg/apperrors"
	"github.com/GlebRadaev/gomarket/pkg/auth"
	"github.com/GlebRadaev/gomarket/pkg/blob"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// PendingStatus is the state every submission starts in.
	PendingStatus string = "pending"
	// ApprovedStatus listings are visible in the marketplace. Terminal.
	ApprovedStatus string = "approved"
	// RejectedStatus listings carry a rejection reason. Terminal.
	RejectedStatus string = "rejected"
)

type Repo interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
	Approve(ctx context.Context, id string, approvedAt time.Time) (*domain.Product, error)
	Reject(ctx context.Context, id, reason string) (*domain.Product, error)
}

type AuditRepo interface {
	Insert(ctx context.Context, entry *domain.AdminLog) error
}

type Service struct {
	repo      Repo
	auditRepo AuditRepo
	txManager pg.TXManager
	store     blob.Store
	cfg       *config.Config
}

func New(repo Repo, auditRepo AuditRepo, txManager pg.TXManager, store blob.Store, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		auditRepo: auditRepo,
		txManager: txManager,
		store:     store,
		cfg:       cfg,
	}
}

// Upload is one incoming multipart part. Size is the declared length; the
// caps are enforced here before anything reaches the blob store.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	FileName    string
}

type SubmitProductInput struct {
	Title       string
	Description string
	Price       float64
	Tags        []string
	Thumbnail   Upload
	File        Upload
}

// SubmitProduct creates a pending listing. Seller identity comes from the
// authenticated principal, never from the request body.
func (s *Service) SubmitProduct(ctx context.Context, seller *domain.User, in SubmitProductInput) (*domain.Product, error) {
	if seller == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(seller.Role, auth.CapSell) {
		return nil, apperrors.Forbidden("Seller access required", nil)
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.Validation("title and description are required", nil)
	}
	if in.Price <= 0 {
		return nil, apperrors.Validation("price must be a positive number", nil)
	}
	if in.Thumbnail.Reader == nil || in.File.Reader == nil {
		return nil, apperrors.Validation("Missing required files", nil)
	}
	if !s.cfg.AllowedThumbnailType(in.Thumbnail.ContentType) {
		return nil, apperrors.Validation("Invalid thumbnail type", nil)
	}
	if in.Thumbnail.Size > s.cfg.MaxThumbnailSize {
		return nil, apperrors.Validation("thumbnail exceeds size limit", nil)
	}
	if in.File.Size > s.cfg.MaxFileSize {
		return nil, apperrors.Validation("file exceeds size limit", nil)
	}

	thumbnailURL, err := s.store.Upload(ctx, in.Thumbnail.Reader, in.Thumbnail.ContentType, blob.FolderThumbnails, in.Thumbnail.FileName)
	if err != nil {
		zap.L().Error("can't store thumbnail", zap.Error(err))
		return nil, apperrors.Storage(err)
	}
	fileURL, err := s.store.Upload(ctx, in.File.Reader, in.File.ContentType, blob.FolderProducts, in.File.FileName)
	if err != nil {
		zap.L().Error("can't store product file", zap.Error(err))
		return nil, apperrors.Storage(err)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	product := &domain.Product{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price,
		Tags:           tags,
		ThumbnailURL:   thumbnailURL,
		FileURL:        fileURL,
		FileName:       in.File.FileName,
		FileSize:       in.File.Size,
		SellerID:       seller.ID,
		SellerName:     seller.DisplayName,
		SellerPhotoURL: seller.PhotoURL,
		Status:         PendingStatus,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}

	zap.L().Info("product submitted", zap.String("productID", product.ID), zap.String("sellerID", seller.ID))
	return product, nil
}

// Approve moves pending to approved; re-approving only re-stamps approvedAt.
// A rejected listing stays rejected. Audit row and status change commit
// together or not at all.
func (s *Service) Approve(ctx context.Context, admin *domain.User, productID string) (*domain.Product, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	var approved *domain.Product
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.repo.Approve(ctx, productID, time.Now())
		if err != nil {
			return err
		}
		if p == nil {
			return s.transitionRefused(ctx, productID, "approve")
		}
		approved = p

		entry := auditservice.Entry(auditservice.ActionApproveProduct, admin, productID, auditservice.TargetProduct,
			fmt.Sprintf("Approved product: %s", p.Title))
		return s.auditRepo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("product approved", zap.String("productID", productID), zap.String("adminID", admin.ID))
	return approved, nil
}

func (s *Service) Reject(ctx context.Context, admin *domain.User, productID, reason string) (*domain.Product, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	var rejected *domain.Product
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.repo.Reject(ctx, productID, reason)
		if err != nil {
			return err
		}
		if p == nil {
			return s.transitionRefused(ctx, productID, "reject")
		}
		rejected = p

		entry := auditservice.Entry(auditservice.ActionRejectProduct, admin, productID, auditservice.TargetProduct,
			fmt.Sprintf("Rejected product: %s - Reason: %s", p.Title, reason))
		return s.auditRepo.Insert(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("product rejected", zap.String("productID", productID), zap.String("adminID", admin.ID))
	return rejected, nil
}

// transitionRefused tells 404 apart from an attempt to reopen a terminal state.
func (s *Service) transitionRefused(ctx context.Context, productID, op string) error {
	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("Product", nil)
	}
	return apperrors.Conflict(fmt.Sprintf("can't %s a %s product", op, existing.Status), nil)
}

func (s *Service) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product", nil)
	}
	return p, nil
}

func (s *Service) ListApproved(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListByStatus(ctx, ApprovedStatus)
}

func (s *Service) ListPending(ctx context.Context, admin *domain.User) ([]domain.Product, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(ctx, PendingStatus)
}

func (s *Service) ListBySeller(ctx context.Context, seller *domain.User) ([]domain.Product, error) {
	if seller == nil {
		return nil, apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(seller.Role, auth.CapSell) {
		return nil, apperrors.Forbidden("Seller access required", nil)
	}
	return s.repo.ListBySeller(ctx, seller.ID)
}

// FetchForDownload hands an admin the file reference for any listing,
// approved or not, and leaves a download_file audit row for it.
func (s *Service) FetchForDownload(ctx context.Context, admin *domain.User, productID string) (*domain.Product, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product", nil)
	}

	entry := auditservice.Entry(auditservice.ActionDownloadFile, admin, productID, auditservice.TargetProduct,
		fmt.Sprintf("Downloaded file: %s", p.FileName))
	if err := s.auditRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	return p, nil
}

func requireAdmin(admin *domain.User) error {
	if admin == nil {
		return apperrors.Unauthorized("Authentication required", nil)
	}
	if !auth.Allowed(admin.Role, auth.CapAdmin) {
		return apperrors.Forbidden("Admin access required", nil)
	}
	return nil
}
