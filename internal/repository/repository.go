package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/graph"
)

// SearchNearbyOptions parameterizes the geographic availability query.
type SearchNearbyOptions struct {
	BloodType string
	Latitude  float64
	Longitude float64
}

// ListBanksOptions defines filters and pagination for bank listing.
type ListBanksOptions struct {
	Offset int
	Limit  int
	Search string
}

// Repository encapsulates graph persistence operations.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// UpsertBloodBank ensures a bank node exists with the latest metadata,
// location point, and per-type inventory nodes.
func (r *Repository) UpsertBloodBank(ctx context.Context, bank domain.BloodBank) error {
	if bank.ID == "" {
		return errors.New("blood bank id is required")
	}

	params := map[string]any{
		"bankId":    bank.ID,
		"latitude":  bank.Latitude,
		"longitude": bank.Longitude,
		"props":     bankProperties(bank),
		"inventory": inventoryParams(bank.Inventory),
	}

	if _, err := r.client.ExecuteWrite(ctx, upsertBloodBankCypher, params); err != nil {
		return fmt.Errorf("upsert blood bank %s: %w", bank.ID, err)
	}
	return nil
}

// SearchNearbyBanks returns active banks stocking the requested blood type,
// ordered by distance from the given position. The distance is computed by
// the graph engine's point.distance in meters and converted to kilometers.
func (r *Repository) SearchNearbyBanks(ctx context.Context, opts SearchNearbyOptions) ([]domain.NearbyBank, error) {
	if opts.BloodType == "" {
		return nil, errors.New("blood type is required")
	}

	params := map[string]any{
		"bloodType": opts.BloodType,
		"latitude":  opts.Latitude,
		"longitude": opts.Longitude,
	}

	res, err := r.client.ExecuteRead(ctx, searchNearbyBanksCypher, params)
	if err != nil {
		return nil, fmt.Errorf("search nearby banks: %w", err)
	}

	var banks []domain.NearbyBank
	for _, record := range res.Records {
		bank := domain.NearbyBank{
			ID:             toString(record["bankId"]),
			Name:           toString(record["name"]),
			Address:        toString(record["address"]),
			Latitude:       toFloat64(record["latitude"]),
			Longitude:      toFloat64(record["longitude"]),
			ContactNumber:  toString(record["contactNumber"]),
			DistanceKm:     toFloat64(record["distanceKm"]),
			RequestedUnits: toInt(record["requestedUnits"]),
			Inventory:      toInventoryMap(record["inventory"]),
		}
		banks = append(banks, bank)
	}
	return banks, nil
}

// ListBloodBanks returns paginated banks with their full inventory.
func (r *Repository) ListBloodBanks(ctx context.Context, opts ListBanksOptions) (domain.BankListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	params := map[string]any{
		"search": strings.ToLower(strings.TrimSpace(opts.Search)),
		"skip":   offset,
		"limit":  limit,
	}

	res, err := r.client.ExecuteRead(ctx, listBloodBanksCypher, params)
	if err != nil {
		return domain.BankListResult{}, fmt.Errorf("list blood banks query: %w", err)
	}

	var banks []domain.BloodBank
	for _, record := range res.Records {
		bank := domain.BloodBank{
			ID:            toString(record["bankId"]),
			Name:          toString(record["name"]),
			Address:       toString(record["address"]),
			Latitude:      toFloat64(record["latitude"]),
			Longitude:     toFloat64(record["longitude"]),
			ContactNumber: toString(record["contactNumber"]),
			Active:        toBool(record["active"]),
		}
		for bloodType, units := range toInventoryMap(record["inventory"]) {
			bank.Inventory = append(bank.Inventory, domain.InventoryLevel{
				BloodType: bloodType,
				Units:     units,
			})
		}
		if updated := toTimePtr(record["updatedAt"]); updated != nil {
			bank.UpdatedAt = *updated
		}
		banks = append(banks, bank)
	}

	countRes, err := r.client.ExecuteRead(ctx, countBloodBanksCypher, params)
	if err != nil {
		return domain.BankListResult{}, fmt.Errorf("count blood banks query: %w", err)
	}

	var total int64
	if len(countRes.Records) > 0 {
		total = toInt64(countRes.Records[0]["total"])
	}

	return domain.BankListResult{
		Items: banks,
		Total: total,
	}, nil
}

// CreateUser persists a new account node. Email uniqueness is checked by the
// caller via FindUserByEmail before writing.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	if user.ID == "" {
		return errors.New("user id is required")
	}
	if user.Email == "" {
		return errors.New("user email is required")
	}

	params := map[string]any{
		"id":           user.ID,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"fullName":     user.FullName,
		"role":         user.Role,
		"createdAt":    formatTime(user.CreatedAt),
	}

	if _, err := r.client.ExecuteWrite(ctx, createUserCypher, params); err != nil {
		return fmt.Errorf("create user %s: %w", user.ID, err)
	}
	return nil
}

// FindUserByEmail looks up an account by its normalized email. A nil user
// with a nil error means no account exists.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	res, err := r.client.ExecuteRead(ctx, findUserByEmailCypher, map[string]any{
		"email": email,
	})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, nil
	}

	record := res.Records[0]
	user := domain.User{
		ID:           toString(record["id"]),
		Email:        toString(record["email"]),
		PasswordHash: toString(record["passwordHash"]),
		FullName:     toString(record["fullName"]),
		Role:         toString(record["role"]),
	}
	if created := toTimePtr(record["createdAt"]); created != nil {
		user.CreatedAt = *created
	}
	return &user, nil
}

// RegisterDonor persists a donor registration node.
func (r *Repository) RegisterDonor(ctx context.Context, donor domain.Donor) error {
	if donor.ID == "" {
		return errors.New("donor id is required")
	}

	params := map[string]any{
		"id":           donor.ID,
		"fullName":     donor.FullName,
		"bloodType":    donor.BloodType,
		"contact":      donor.Contact,
		"address":      donor.Address,
		"registeredAt": formatTime(donor.RegisteredAt),
	}

	if _, err := r.client.ExecuteWrite(ctx, registerDonorCypher, params); err != nil {
		return fmt.Errorf("register donor %s: %w", donor.ID, err)
	}
	return nil
}

func bankProperties(b domain.BloodBank) map[string]any {
	props := map[string]any{
		"name":          b.Name,
		"address":       b.Address,
		"latitude":      b.Latitude,
		"longitude":     b.Longitude,
		"contactNumber": b.ContactNumber,
		"active":        b.Active,
		"updatedAt":     formatTime(b.UpdatedAt),
	}
	if !b.CreatedAt.IsZero() {
		props["createdAt"] = formatTime(b.CreatedAt)
	}
	return props
}

func inventoryParams(levels []domain.InventoryLevel) []map[string]any {
	result := make([]map[string]any, 0, len(levels))
	for _, level := range levels {
		result = append(result, map[string]any{
			"bloodType": level.BloodType,
			"units":     level.Units,
		})
	}
	return result
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
