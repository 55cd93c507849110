package service

import (
	"sort"
	"strings"

	"carvendor/internal/domain/entity"
)

// CatalogCriteria are the showroom filter controls. All supplied criteria
// are ANDed; zero values impose no constraint. MinPrice/MaxPrice are
// inclusive bounds; nil means unbounded.
type CatalogCriteria struct {
	Make     string // case-insensitive substring match
	FuelType string // exact match
	Status   string // exact match
	MinPrice *int
	MaxPrice *int
}

// FilterCars narrows the car set by the supplied criteria. It is stateless
// and recomputed in full on every call; the input order (newest-first as
// delivered by the store) is preserved and the input slice is not mutated.
func FilterCars(cars []*entity.Car, criteria CatalogCriteria) []*entity.Car {
	filtered := make([]*entity.Car, 0, len(cars))

	makeNeedle := strings.ToLower(criteria.Make)

	for _, car := range cars {
		if makeNeedle != "" && !strings.Contains(strings.ToLower(car.Make), makeNeedle) {
			continue
		}
		if criteria.FuelType != "" && car.FuelType != criteria.FuelType {
			continue
		}
		if criteria.Status != "" && car.Status != criteria.Status {
			continue
		}
		if criteria.MinPrice != nil && car.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && car.Price > *criteria.MaxPrice {
			continue
		}
		filtered = append(filtered, car)
	}

	return filtered
}

// MakeOptions returns the distinct makes present in the car set, sorted
// ascending, for building the make selector.
func MakeOptions(cars []*entity.Car) []string {
	return distinct(cars, func(car *entity.Car) string { return car.Make })
}

// FuelTypeOptions returns the distinct fuel types present in the car set,
// sorted ascending.
func FuelTypeOptions(cars []*entity.Car) []string {
	return distinct(cars, func(car *entity.Car) string { return car.FuelType })
}

func distinct(cars []*entity.Car, key func(*entity.Car) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, car := range cars {
		v := key(car)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
