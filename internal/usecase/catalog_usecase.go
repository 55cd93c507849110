package usecase

import (
	"context"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/internal/domain/service"
)

// CatalogUseCase serves the public showroom: a paged snapshot of the car
// set, narrowed in memory by the filter engine.
type CatalogUseCase struct {
	carRepo repository.CarRepository
}

func NewCatalogUseCase(carRepo repository.CarRepository) *CatalogUseCase {
	return &CatalogUseCase{
		carRepo: carRepo,
	}
}

// CatalogPage is one filtered page of the showroom plus the option sets
// for the filter controls, derived from the unfiltered page.
type CatalogPage struct {
	Cars       []*entity.Car `json:"cars"`
	Makes      []string      `json:"makes"`
	FuelTypes  []string      `json:"fuel_types"`
	NextCursor string        `json:"-"`
}

func (uc *CatalogUseCase) Browse(ctx context.Context, limit int, cursor string, criteria service.CatalogCriteria) (*CatalogPage, error) {
	cars, next, err := uc.carRepo.List(ctx, limit, cursor)
	if err != nil {
		return nil, err
	}

	return &CatalogPage{
		Cars:       service.FilterCars(cars, criteria),
		Makes:      service.MakeOptions(cars),
		FuelTypes:  service.FuelTypeOptions(cars),
		NextCursor: next,
	}, nil
}

func (uc *CatalogUseCase) Featured(ctx context.Context) ([]*entity.Car, error) {
	return uc.carRepo.ListFeatured(ctx)
}
