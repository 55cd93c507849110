package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carvendor/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func testCars() []*entity.Car {
	return []*entity.Car{
		{ID: "1", Make: "Ford", Model: "Fiesta", FuelType: "petrol", Status: "available", Price: 5000},
		{ID: "2", Make: "BMW", Model: "320d", FuelType: "diesel", Status: "available", Price: 15000},
		{ID: "3", Make: "Tesla", Model: "Model 3", FuelType: "electric", Status: "sold", Price: 30000},
		{ID: "4", Make: "Ford", Model: "Focus", FuelType: "diesel", Status: "pending", Price: 9000},
	}
}

func TestFilterCarsEmptyCriteriaReturnsAllInOrder(t *testing.T) {
	cars := testCars()

	result := FilterCars(cars, CatalogCriteria{})

	assert.Len(t, result, len(cars))
	for i := range cars {
		assert.Equal(t, cars[i].ID, result[i].ID)
	}
}

func TestFilterCarsByMakeSubstringCaseInsensitive(t *testing.T) {
	result := FilterCars(testCars(), CatalogCriteria{Make: "for"})

	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "4", result[1].ID)
}

func TestFilterCarsByFuelTypeExact(t *testing.T) {
	result := FilterCars(testCars(), CatalogCriteria{FuelType: "diesel"})

	assert.Len(t, result, 2)
	assert.Equal(t, "2", result[0].ID)
	assert.Equal(t, "4", result[1].ID)
}

func TestFilterCarsByStatus(t *testing.T) {
	result := FilterCars(testCars(), CatalogCriteria{Status: "available"})

	assert.Len(t, result, 2)
}

func TestFilterCarsPriceBandInclusive(t *testing.T) {
	// Store with 5000, 15000, 30000; the band [10000, 20000] keeps only
	// the 15000 car.
	cars := []*entity.Car{
		{ID: "a", Price: 5000},
		{ID: "b", Price: 15000},
		{ID: "c", Price: 30000},
	}

	result := FilterCars(cars, CatalogCriteria{MinPrice: intPtr(10000), MaxPrice: intPtr(20000)})

	assert.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID)

	// Bounds are inclusive.
	result = FilterCars(cars, CatalogCriteria{MinPrice: intPtr(5000), MaxPrice: intPtr(15000)})
	assert.Len(t, result, 2)
}

func TestFilterCarsSequentialNarrowingEqualsCombined(t *testing.T) {
	cars := testCars()

	byFuel := CatalogCriteria{FuelType: "diesel"}
	byPrice := CatalogCriteria{MaxPrice: intPtr(10000)}
	combined := CatalogCriteria{FuelType: "diesel", MaxPrice: intPtr(10000)}

	narrowed := FilterCars(FilterCars(cars, byFuel), byPrice)
	direct := FilterCars(cars, combined)
	reversed := FilterCars(FilterCars(cars, byPrice), byFuel)

	assert.Equal(t, direct, narrowed)
	assert.Equal(t, direct, reversed)
}

func TestFilterCarsDoesNotMutateInput(t *testing.T) {
	cars := testCars()

	FilterCars(cars, CatalogCriteria{FuelType: "petrol"})

	assert.Len(t, cars, 4)
	assert.Equal(t, "1", cars[0].ID)
}

func TestMakeOptionsDistinctSorted(t *testing.T) {
	options := MakeOptions(testCars())

	assert.Equal(t, []string{"BMW", "Ford", "Tesla"}, options)
}

func TestFuelTypeOptionsDistinctSorted(t *testing.T) {
	options := FuelTypeOptions(testCars())

	assert.Equal(t, []string{"diesel", "electric", "petrol"}, options)
}

func TestOptionsSkipEmptyValues(t *testing.T) {
	cars := []*entity.Car{{Make: ""}, {Make: "Audi"}}

	assert.Equal(t, []string{"Audi"}, MakeOptions(cars))
}
