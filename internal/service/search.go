package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ananyac/lifelink/backend/internal/domain"
	"github.com/ananyac/lifelink/backend/internal/repository"
)

// Sort preferences accepted by the search endpoint.
const (
	SortByDistance = "distance"
	SortByETA      = "eta"
)

// maxSearchResults caps how many banks a single search returns.
const maxSearchResults = 5

// etaMinutesPerKm is the simplified urban travel model: 2.5 minutes per
// kilometer. TODO: replace with a distance-matrix provider once one is
// budgeted.
const etaMinutesPerKm = 2.5

// SearchParams describes one availability search.
type SearchParams struct {
	BloodType string
	Latitude  float64
	Longitude float64
	SortBy    string
}

// SearchService answers nearby-availability queries.
type SearchService struct {
	repo GraphRepository
}

// NewSearchService constructs a SearchService.
func NewSearchService(repo GraphRepository) *SearchService {
	return &SearchService{repo: repo}
}

// SearchBlood finds active banks with available units of the requested type,
// ranks them by distance or estimated travel time, and returns at most
// maxSearchResults entries.
func (s *SearchService) SearchBlood(ctx context.Context, params SearchParams) ([]domain.SearchResult, error) {
	bloodType := normalizeBloodType(params.BloodType)
	if bloodType == "" {
		return nil, fmt.Errorf("blood type is required")
	}

	banks, err := s.repo.SearchNearbyBanks(ctx, repository.SearchNearbyOptions{
		BloodType: bloodType,
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	})
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(banks))
	for _, bank := range banks {
		inventory := bank.Inventory
		if inventory == nil {
			inventory = map[string]int{}
		}
		results = append(results, domain.SearchResult{
			ID:             bank.ID,
			Name:           bank.Name,
			Address:        bank.Address,
			Latitude:       bank.Latitude,
			Longitude:      bank.Longitude,
			ContactNumber:  bank.ContactNumber,
			DistanceKm:     roundTo2(bank.DistanceKm),
			ETAMinutes:     int(bank.DistanceKm * etaMinutesPerKm),
			RequestedUnits: bank.RequestedUnits,
			Inventory:      inventory,
			GoogleMapsURL:  directionsURL(bank.Latitude, bank.Longitude),
		})
	}

	if params.SortBy == SortByETA {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ETAMinutes < results[j].ETAMinutes
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

func directionsURL(latitude, longitude float64) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", latitude, longitude)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
