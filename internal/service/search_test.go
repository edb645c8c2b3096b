package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/repository"
)

// stubRepo is a configurable in-memory GraphRepository shared by the service
// tests in this package.
type stubRepo struct {
	mu            sync.Mutex
	nearbyBanks   []domain.NearbyBank
	searchOpts    []repository.SearchNearbyOptions
	bankList      domain.BankListResult
	listOpts      []repository.ListBanksOptions
	upsertedBanks []domain.BloodBank
	users         map[string]domain.User
	createdUsers  []domain.User
	donors        []domain.Donor
	err           error
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: map[string]domain.User{}}
}

func (s *stubRepo) UpsertBloodBank(_ context.Context, bank domain.BloodBank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.upsertedBanks = append(s.upsertedBanks, bank)
	return nil
}

func (s *stubRepo) SearchNearbyBanks(_ context.Context, opts repository.SearchNearbyOptions) ([]domain.NearbyBank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.searchOpts = append(s.searchOpts, opts)
	return s.nearbyBanks, nil
}

func (s *stubRepo) ListBloodBanks(_ context.Context, opts repository.ListBanksOptions) (domain.BankListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.BankListResult{}, s.err
	}
	s.listOpts = append(s.listOpts, opts)
	return s.bankList, nil
}

func (s *stubRepo) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.users[user.Email] = user
	s.createdUsers = append(s.createdUsers, user)
	return nil
}

func (s *stubRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.users[email]; ok {
		u := user
		return &u, nil
	}
	return nil, nil
}

func (s *stubRepo) RegisterDonor(_ context.Context, donor domain.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.donors = append(s.donors, donor)
	return nil
}

func TestSearchBlood_RanksByDistance(t *testing.T) {
	repo := newStubRepo()
	repo.nearbyBanks = []domain.NearbyBank{
		{ID: "far", DistanceKm: 9.876, Latitude: 1, Longitude: 2},
		{ID: "near", DistanceKm: 1.234, Latitude: 3, Longitude: 4},
	}
	svc := NewSearchService(repo)

	results, err := svc.SearchBlood(context.Background(), SearchParams{BloodType: "A+"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, 1.23, results[0].DistanceKm)
	assert.Equal(t, 3, results[0].ETAMinutes) // int(1.234 * 2.5)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=3,4", results[0].GoogleMapsURL)
	assert.NotNil(t, results[0].Inventory)
}

func TestSearchBlood_RanksByETA(t *testing.T) {
	repo := newStubRepo()
	repo.nearbyBanks = []domain.NearbyBank{
		{ID: "a", DistanceKm: 4.0},
		{ID: "b", DistanceKm: 2.0},
		{ID: "c", DistanceKm: 8.0},
	}
	svc := NewSearchService(repo)

	results, err := svc.SearchBlood(context.Background(), SearchParams{BloodType: "O-", SortBy: SortByETA})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []int{5, 10, 20}, []int{results[0].ETAMinutes, results[1].ETAMinutes, results[2].ETAMinutes})
	assert.Equal(t, "b", results[0].ID)
}

func TestSearchBlood_CapsResults(t *testing.T) {
	repo := newStubRepo()
	for i := 0; i < 9; i++ {
		repo.nearbyBanks = append(repo.nearbyBanks, domain.NearbyBank{
			ID:         string(rune('a' + i)),
			DistanceKm: float64(9 - i),
		})
	}
	svc := NewSearchService(repo)

	results, err := svc.SearchBlood(context.Background(), SearchParams{BloodType: "B+"})
	require.NoError(t, err)
	assert.Len(t, results, maxSearchResults)
	assert.Equal(t, 1.0, results[0].DistanceKm)
}

func TestSearchBlood_NormalizesBloodType(t *testing.T) {
	repo := newStubRepo()
	svc := NewSearchService(repo)

	_, err := svc.SearchBlood(context.Background(), SearchParams{BloodType: " ab + "})
	require.NoError(t, err)
	require.Len(t, repo.searchOpts, 1)
	assert.Equal(t, "AB+", repo.searchOpts[0].BloodType)
}

func TestSearchBlood_RequiresBloodType(t *testing.T) {
	svc := NewSearchService(newStubRepo())

	_, err := svc.SearchBlood(context.Background(), SearchParams{})
	assert.Error(t, err)
}

func TestSearchBlood_PropagatesRepositoryError(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("graph down")
	svc := NewSearchService(repo)

	_, err := svc.SearchBlood(context.Background(), SearchParams{BloodType: "A+"})
	assert.ErrorContains(t, err, "graph down")
}
