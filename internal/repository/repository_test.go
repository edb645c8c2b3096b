package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/graph"
)

func TestRepository_UpsertBloodBank(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	now := time.Now().UTC()
	bank := domain.BloodBank{
		ID:            "BB-001",
		Name:          "Central Blood Bank",
		Address:       "12 MG Road, Bengaluru",
		Latitude:      12.9716,
		Longitude:     77.5946,
		ContactNumber: "+918012345678",
		Active:        true,
		Inventory: []domain.InventoryLevel{
			{BloodType: "A+", Units: 12},
			{BloodType: "O-", Units: 3},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.UpsertBloodBank(context.Background(), bank); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}

	call := calls[0]
	if call.Query != upsertBloodBankCypher {
		t.Fatalf("unexpected query\nexpected:\n%s\ngot:\n%s", upsertBloodBankCypher, call.Query)
	}
	if call.Params["bankId"] != bank.ID {
		t.Errorf("expected bankId %s, got %v", bank.ID, call.Params["bankId"])
	}
	if call.Params["latitude"] != bank.Latitude {
		t.Errorf("latitude mismatch: want %v got %v", bank.Latitude, call.Params["latitude"])
	}

	props, ok := call.Params["props"].(map[string]any)
	if !ok {
		t.Fatalf("expected props map, got %T", call.Params["props"])
	}
	if props["name"] != bank.Name {
		t.Errorf("name mismatch: want %s got %v", bank.Name, props["name"])
	}
	if props["active"] != true {
		t.Errorf("expected active true, got %v", props["active"])
	}

	inventory, ok := call.Params["inventory"].([]map[string]any)
	if !ok || len(inventory) != 2 {
		t.Fatalf("expected inventory slice of len 2, got %T (len=%d)", call.Params["inventory"], len(inventory))
	}
}

func TestRepository_UpsertBloodBankRequiresID(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if err := repo.UpsertBloodBank(context.Background(), domain.BloodBank{}); err == nil {
		t.Fatal("expected error for missing bank id")
	}
}

func TestRepository_SearchNearbyBanks(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{
			"bankId":         "BB-001",
			"name":           "Central Blood Bank",
			"address":        "12 MG Road",
			"latitude":       12.9716,
			"longitude":      77.5946,
			"contactNumber":  "+918012345678",
			"distanceKm":     3.4821,
			"requestedUnits": int64(5),
			"inventory": []any{
				map[string]any{"bloodType": "A+", "units": int64(5)},
				map[string]any{"bloodType": "O+", "units": int64(9)},
			},
		},
	}})
	repo := New(mem)

	banks, err := repo.SearchNearbyBanks(context.Background(), SearchNearbyOptions{
		BloodType: "A+",
		Latitude:  12.95,
		Longitude: 77.60,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(banks) != 1 {
		t.Fatalf("expected 1 bank, got %d", len(banks))
	}

	bank := banks[0]
	if bank.ID != "BB-001" {
		t.Errorf("unexpected bank id %s", bank.ID)
	}
	if bank.RequestedUnits != 5 {
		t.Errorf("expected 5 requested units, got %d", bank.RequestedUnits)
	}
	if bank.Inventory["O+"] != 9 {
		t.Errorf("expected O+ units 9, got %d", bank.Inventory["O+"])
	}

	calls := mem.ReadCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 read query, got %d", len(calls))
	}
	if calls[0].Query != searchNearbyBanksCypher {
		t.Fatalf("unexpected query executed")
	}
	if calls[0].Params["bloodType"] != "A+" {
		t.Errorf("expected bloodType A+, got %v", calls[0].Params["bloodType"])
	}
}

func TestRepository_SearchNearbyBanksRequiresBloodType(t *testing.T) {
	repo := New(graph.NewMemoryClient())
	if _, err := repo.SearchNearbyBanks(context.Background(), SearchNearbyOptions{}); err == nil {
		t.Fatal("expected error for missing blood type")
	}
}

func TestRepository_ListBloodBanks(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{
			"bankId":        "BB-002",
			"name":          "Red Cross Center",
			"address":       "45 Park St",
			"latitude":      22.55,
			"longitude":     88.35,
			"contactNumber": "+913312345678",
			"active":        true,
			"updatedAt":     "2026-08-20T10:00:00Z",
			"inventory": []any{
				map[string]any{"bloodType": "B+", "units": int64(7)},
			},
		},
	}})
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{"total": int64(12)},
	}})
	repo := New(mem)

	result, err := repo.ListBloodBanks(context.Background(), ListBanksOptions{Limit: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 bank, got %d", len(result.Items))
	}
	if result.Total != 12 {
		t.Errorf("expected total 12, got %d", result.Total)
	}
	if result.Items[0].UpdatedAt.IsZero() {
		t.Error("expected updatedAt to be parsed")
	}
	if len(result.Items[0].Inventory) != 1 || result.Items[0].Inventory[0].Units != 7 {
		t.Errorf("unexpected inventory %+v", result.Items[0].Inventory)
	}
}

func TestRepository_FindUserByEmail(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{
			"id":           "USR-001",
			"email":        "jane@example.com",
			"passwordHash": "$2a$10$abcdefg",
			"fullName":     "Jane Doe",
			"role":         "PATIENT",
			"createdAt":    "2026-01-15T08:30:00Z",
		},
	}})
	repo := New(mem)

	user, err := repo.FindUserByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user == nil {
		t.Fatal("expected a user")
	}
	if user.Role != "PATIENT" {
		t.Errorf("expected PATIENT role, got %s", user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected createdAt to be parsed")
	}
}

func TestRepository_FindUserByEmailNotFound(t *testing.T) {
	repo := New(graph.NewMemoryClient())

	user, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestRepository_CreateUser(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	user := domain.User{
		ID:           "USR-001",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$abcdefg",
		FullName:     "Jane Doe",
		Role:         "PATIENT",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 || calls[0].Query != createUserCypher {
		t.Fatalf("expected createUserCypher write, got %+v", calls)
	}
	if calls[0].Params["passwordHash"] != user.PasswordHash {
		t.Error("password hash not forwarded")
	}
}

func TestRepository_RegisterDonor(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	donor := domain.Donor{
		ID:           "DNR-001",
		FullName:     "Arjun Mehta",
		BloodType:    "O-",
		Contact:      "+919812345678",
		Address:      "7 Lake View, Pune",
		RegisteredAt: time.Now().UTC(),
	}
	if err := repo.RegisterDonor(context.Background(), donor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 || calls[0].Query != registerDonorCypher {
		t.Fatalf("expected registerDonorCypher write, got %+v", calls)
	}
}

func TestRepository_PropagatesClientErrors(t *testing.T) {
	boom := errors.New("connection reset")
	repo := New(graph.NewMemoryClient().WithError(boom))

	if _, err := repo.SearchNearbyBanks(context.Background(), SearchNearbyOptions{BloodType: "A+"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
	if err := repo.UpsertBloodBank(context.Background(), domain.BloodBank{ID: "BB-001"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped client error, got %v", err)
	}
}
