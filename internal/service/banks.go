package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/repository"
)

// ErrInvalidBloodType indicates an inventory entry or donor registration
// named a blood type outside the supported ABO/Rh groups.
var ErrInvalidBloodType = errors.New("unsupported blood type")

// BankService manages blood bank records and donor registrations.
type BankService struct {
	repo  GraphRepository
	nowFn func() time.Time
}

// NewBankService constructs a BankService.
func NewBankService(repo GraphRepository) *BankService {
	return &BankService{
		repo:  repo,
		nowFn: time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *BankService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// UpsertBank validates and persists a blood bank with its inventory,
// returning the bank's ID (generated when the input carries none).
func (s *BankService) UpsertBank(ctx context.Context, input BankInput) (string, error) {
	name := sanitizeString(input.Name)
	if name == "" {
		return "", fmt.Errorf("bank name is required")
	}
	address := sanitizeString(input.Address)
	if address == "" {
		return "", fmt.Errorf("bank address is required")
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	inventory := make([]domain.InventoryLevel, 0, len(input.Inventory))
	for bloodType, units := range input.Inventory {
		normalized, err := validBloodType(bloodType)
		if err != nil {
			return "", err
		}
		if units < 0 {
			return "", fmt.Errorf("units for %s must not be negative", normalized)
		}
		inventory = append(inventory, domain.InventoryLevel{
			BloodType: normalized,
			Units:     units,
		})
	}

	now := s.nowFn().UTC()
	bank := domain.BloodBank{
		ID:            id,
		Name:          name,
		Address:       address,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		ContactNumber: normalizePhone(input.ContactNumber),
		Active:        active,
		Inventory:     inventory,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.UpsertBloodBank(ctx, bank); err != nil {
		return "", err
	}
	return id, nil
}

// ListBanks retrieves paginated banks matching the search filter.
func (s *BankService) ListBanks(ctx context.Context, params ListBanksParams) (BanksPage, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)
	offset := (page - 1) * pageSize

	result, err := s.repo.ListBloodBanks(ctx, repository.ListBanksOptions{
		Offset: offset,
		Limit:  pageSize,
		Search: params.Search,
	})
	if err != nil {
		return BanksPage{}, err
	}

	return BanksPage{
		Items:      result.Items,
		Pagination: buildPaginationMeta(page, pageSize, result.Total),
	}, nil
}

// RegisterDonor validates and persists a donor registration, returning the
// generated donor ID.
func (s *BankService) RegisterDonor(ctx context.Context, input DonorInput) (string, error) {
	fullName := sanitizeString(input.FullName)
	if fullName == "" {
		return "", fmt.Errorf("donor full name is required")
	}
	bloodType, err := validBloodType(input.BloodType)
	if err != nil {
		return "", err
	}

	donor := domain.Donor{
		ID:           uuid.NewString(),
		FullName:     fullName,
		BloodType:    bloodType,
		Contact:      normalizePhone(input.Contact),
		Address:      sanitizeString(input.Address),
		RegisteredAt: s.nowFn().UTC(),
	}

	if err := s.repo.RegisterDonor(ctx, donor); err != nil {
		return "", err
	}
	return donor.ID, nil
}

func validBloodType(bloodType string) (string, error) {
	normalized := normalizeBloodType(bloodType)
	for _, known := range domain.BloodTypes {
		if normalized == known {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBloodType, bloodType)
}
