package usecase

import (
	"context"
	"encoding/json"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/logger"
)

// CatalogSyncUseCase holds the single subscription on the car collection
// and republishes every delivered set to connected catalog clients. Each
// delivery is the full current set; clients replace their state in place.
type CatalogSyncUseCase struct {
	carRepo   repository.CarRepository
	publisher CatalogPublisher
}

func NewCatalogSyncUseCase(carRepo repository.CarRepository, publisher CatalogPublisher) *CatalogSyncUseCase {
	return &CatalogSyncUseCase{
		carRepo:   carRepo,
		publisher: publisher,
	}
}

type catalogUpdate struct {
	Type string        `json:"type"`
	Cars []*entity.Car `json:"cars"`
}

// Start subscribes to store change notifications and fans them out until
// ctx is done. The subscription is released on teardown.
func (uc *CatalogSyncUseCase) Start(ctx context.Context) error {
	sub, err := uc.carRepo.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		defer sub.Unsubscribe()

		for {
			select {
			case cars, ok := <-sub.Updates():
				if !ok {
					if err := sub.Err(); err != nil {
						logger.Error("Catalog sync ended: %v", err)
					}
					return
				}

				payload, err := json.Marshal(catalogUpdate{Type: "catalog", Cars: cars})
				if err != nil {
					logger.Error("Failed to encode catalog update: %v", err)
					continue
				}
				uc.publisher.BroadcastCatalog(payload)

			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}
