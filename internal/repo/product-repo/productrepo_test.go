package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var productTestColumns = []string{
	"id", "title", "description", "price", "tags", "thumbnail_url", "file_url", "file_name", "file_size",
	"seller_id", "seller_name", "seller_photo_url", "status", "rejection_reason", "created_at", "approved_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	product := &domain.Product{
		ID:           "prod-1",
		Title:        "Icon Pack",
		Description:  "500 vector icons",
		Price:        199.0,
		Tags:         []string{"icons", "design"},
		ThumbnailURL: "/uploads/thumb-1.png",
		FileURL:      "/uploads/file-1.zip",
		FileName:     "icons.zip",
		FileSize:     1024,
		SellerID:     "seller-1",
		SellerName:   "Asha",
		Status:       "pending",
		CreatedAt:    timeNow,
	}

	tests := []struct {
		name      string
		product   *domain.Product
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Save product successfully",
			product: product,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
					WithArgs(
						product.ID, product.Title, product.Description, product.Price, product.Tags,
						product.ThumbnailURL, product.FileURL, product.FileName, product.FileSize,
						product.SellerID, product.SellerName, product.SellerPhotoURL, product.Status,
						product.RejectionReason, product.CreatedAt, product.ApprovedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			product: product,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
					WithArgs(
						product.ID, product.Title, product.Description, product.Price, product.Tags,
						product.ThumbnailURL, product.FileURL, product.FileName, product.FileSize,
						product.SellerID, product.SellerName, product.SellerPhotoURL, product.Status,
						product.RejectionReason, product.CreatedAt, product.ApprovedAt,
					).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), tt.product)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Product exists",
			id:   "prod-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", 199.0, []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "pending", (*string)(nil), timeNow, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs("prod-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Product{
				ID:           "prod-1",
				Title:        "Icon Pack",
				Description:  "500 vector icons",
				Price:        199.0,
				Tags:         []string{"icons"},
				ThumbnailURL: "/uploads/thumb-1.png",
				FileURL:      "/uploads/file-1.zip",
				FileName:     "icons.zip",
				FileSize:     1024,
				SellerID:     "seller-1",
				SellerName:   "Asha",
				Status:       "pending",
				CreatedAt:    timeNow,
			},
		},
		{
			name: "Product does not exist",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   "prod-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs("prod-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
		result    []domain.Product
	}{
		{
			name:   "Products found",
			status: "approved",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", 199.0, []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "approved", (*string)(nil), timeNow, &timeNow).
					AddRow("prod-2", "Font Bundle", "12 display fonts", 349.0, []string{"fonts"},
						"/uploads/thumb-2.png", "/uploads/file-2.zip", "fonts.zip", int64(2048),
						"seller-2", "Ravi", (*string)(nil), "approved", (*string)(nil), timeNow, &timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
					WithArgs("approved").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Product{
				{ID: "prod-1", Title: "Icon Pack", Description: "500 vector icons", Price: 199.0, Tags: []string{"icons"},
					ThumbnailURL: "/uploads/thumb-1.png", FileURL: "/uploads/file-1.zip", FileName: "icons.zip", FileSize: 1024,
					SellerID: "seller-1", SellerName: "Asha", Status: "approved", CreatedAt: timeNow, ApprovedAt: &timeNow},
				{ID: "prod-2", Title: "Font Bundle", Description: "12 display fonts", Price: 349.0, Tags: []string{"fonts"},
					ThumbnailURL: "/uploads/thumb-2.png", FileURL: "/uploads/file-2.zip", FileName: "fonts.zip", FileSize: 2048,
					SellerID: "seller-2", SellerName: "Ravi", Status: "approved", CreatedAt: timeNow, ApprovedAt: &timeNow},
			},
		},
		{
			name:   "No products found",
			status: "pending",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
					WithArgs("pending").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			status: "approved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
					WithArgs("approved").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:   "Error scanning row",
			status: "approved",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", "invalid_value", []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "approved", (*string)(nil), timeNow, &timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
					WithArgs("approved").
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByStatus(context.Background(), tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListBySeller(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		sellerID  string
		mockSetup func()
		expectErr bool
		result    []domain.Product
	}{
		{
			name:     "Products found",
			sellerID: "seller-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", 199.0, []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "pending", (*string)(nil), timeNow, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE seller_id = $1")).
					WithArgs("seller-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Product{
				{ID: "prod-1", Title: "Icon Pack", Description: "500 vector icons", Price: 199.0, Tags: []string{"icons"},
					ThumbnailURL: "/uploads/thumb-1.png", FileURL: "/uploads/file-1.zip", FileName: "icons.zip", FileSize: 1024,
					SellerID: "seller-1", SellerName: "Asha", Status: "pending", CreatedAt: timeNow},
			},
		},
		{
			name:     "Database error",
			sellerID: "seller-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE seller_id = $1")).
					WithArgs("seller-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListBySeller(context.Background(), tt.sellerID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Pending product approved",
			id:   "prod-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", 199.0, []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "approved", (*string)(nil), timeNow, &timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = $2")).
					WithArgs("prod-1", timeNow).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Product{
				ID: "prod-1", Title: "Icon Pack", Description: "500 vector icons", Price: 199.0, Tags: []string{"icons"},
				ThumbnailURL: "/uploads/thumb-1.png", FileURL: "/uploads/file-1.zip", FileName: "icons.zip", FileSize: 1024,
				SellerID: "seller-1", SellerName: "Asha", Status: "approved", CreatedAt: timeNow, ApprovedAt: &timeNow,
			},
		},
		{
			name: "No matching row",
			id:   "prod-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = $2")).
					WithArgs("prod-2", timeNow).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   "prod-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = $2")).
					WithArgs("prod-1", timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Approve(context.Background(), tt.id, timeNow)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	reason := "blurry thumbnail"

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Pending product rejected",
			id:   "prod-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(productTestColumns).
					AddRow("prod-1", "Icon Pack", "500 vector icons", 199.0, []string{"icons"},
						"/uploads/thumb-1.png", "/uploads/file-1.zip", "icons.zip", int64(1024),
						"seller-1", "Asha", (*string)(nil), "rejected", &reason, timeNow, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected', rejection_reason = $2")).
					WithArgs("prod-1", reason).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Product{
				ID: "prod-1", Title: "Icon Pack", Description: "500 vector icons", Price: 199.0, Tags: []string{"icons"},
				ThumbnailURL: "/uploads/thumb-1.png", FileURL: "/uploads/file-1.zip", FileName: "icons.zip", FileSize: 1024,
				SellerID: "seller-1", SellerName: "Asha", Status: "rejected", RejectionReason: &reason, CreatedAt: timeNow,
			},
		},
		{
			name: "No matching row",
			id:   "prod-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected', rejection_reason = $2")).
					WithArgs("prod-2", reason).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   "prod-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected', rejection_reason = $2")).
					WithArgs("prod-1", reason).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Reject(context.Background(), tt.id, reason)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
