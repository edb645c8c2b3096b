package service

import (
	"context"
	"math"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/repository"
)

// GraphRepository is the storage contract required by the services.
type GraphRepository interface {
	UpsertBloodBank(ctx context.Context, bank domain.BloodBank) error
	SearchNearbyBanks(ctx context.Context, opts repository.SearchNearbyOptions) ([]domain.NearbyBank, error)
	ListBloodBanks(ctx context.Context, opts repository.ListBanksOptions) (domain.BankListResult, error)
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	RegisterDonor(ctx context.Context, donor domain.Donor) error
}

// BankInput carries an incoming blood bank upsert payload.
type BankInput struct {
	ID            string
	Name          string
	Address       string
	Latitude      float64
	Longitude     float64
	ContactNumber string
	Active        *bool
	Inventory     map[string]int
}

// DonorInput carries an incoming donor registration payload.
type DonorInput struct {
	FullName  string
	BloodType string
	Contact   string
	Address   string
}

// RegisterInput carries an incoming account registration payload.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// PaginationMeta captures pagination metadata returned to API clients.
type PaginationMeta struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// BanksPage represents paginated blood banks with metadata.
type BanksPage struct {
	Items      []domain.BloodBank
	Pagination PaginationMeta
}

// ListBanksParams defines filters for listing banks.
type ListBanksParams struct {
	Page     int
	PageSize int
	Search   string
}

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}

func buildPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
		if total > 0 && totalPages == 0 {
			totalPages = 1
		}
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
