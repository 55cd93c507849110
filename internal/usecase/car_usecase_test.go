package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carvendor/pkg/errors"
)

func validCarInput() CarInput {
	return CarInput{
		Make:         "Ford",
		Model:        "Fiesta",
		Year:         2019,
		Price:        8000,
		Mileage:      42000,
		FuelType:     "petrol",
		Transmission: "manual",
		BodyType:     "hatchback",
		Color:        "blue",
		Status:       "available",
	}
}

func TestCreateCarDefaultsDownPaymentToTenPercent(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Price = 20000
	input.DownPayment = 0

	car, err := uc.CreateCar(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 2000, car.DownPayment)
}

func TestCreateCarKeepsExplicitDownPayment(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Price = 20000
	input.DownPayment = 5000

	car, err := uc.CreateCar(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 5000, car.DownPayment)
}

func TestCreateCarRejectsDownPaymentAbovePrice(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Price = 8000
	input.DownPayment = 9000

	_, err := uc.CreateCar(context.Background(), input)

	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
}

func TestCreateCarRejectsNegativePrice(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Price = -1

	_, err := uc.CreateCar(context.Background(), input)

	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
}

func TestCreateCarRejectsOutOfRangeYear(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Year = 1985
	_, err := uc.CreateCar(context.Background(), input)
	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))

	input.Year = time.Now().Year() + 2
	_, err = uc.CreateCar(context.Background(), input)
	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))

	input.Year = time.Now().Year() + 1
	_, err = uc.CreateCar(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateCarStampsTimestampsAndStatus(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	input := validCarInput()
	input.Status = ""

	car, err := uc.CreateCar(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "available", car.Status)
	assert.False(t, car.CreatedAt.IsZero())
	assert.False(t, car.UpdatedAt.IsZero())
}

func TestUpdateCarRederivesPriorDefaultDownPayment(t *testing.T) {
	repo := newFakeCarRepo()
	uc := NewCarUseCase(repo)

	input := validCarInput()
	input.Price = 20000
	car, err := uc.CreateCar(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, 2000, car.DownPayment)

	// Price changes while the stored down payment is still the 10%
	// default: the default follows the new price.
	update := validCarInput()
	update.Price = 30000
	update.DownPayment = 2000

	updated, err := uc.UpdateCar(context.Background(), car.ID, update)

	assert.NoError(t, err)
	assert.Equal(t, 3000, updated.DownPayment)
}

func TestUpdateCarKeepsHandPickedDownPayment(t *testing.T) {
	repo := newFakeCarRepo()
	uc := NewCarUseCase(repo)

	input := validCarInput()
	input.Price = 20000
	input.DownPayment = 7500
	car, err := uc.CreateCar(context.Background(), input)
	assert.NoError(t, err)

	update := validCarInput()
	update.Price = 30000
	update.DownPayment = 7500

	updated, err := uc.UpdateCar(context.Background(), car.ID, update)

	assert.NoError(t, err)
	assert.Equal(t, 7500, updated.DownPayment)
}

func TestUpdateCarUnknownIDReturnsNotFound(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	_, err := uc.UpdateCar(context.Background(), "missing", validCarInput())

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteCarUnknownIDReturnsNotFound(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	err := uc.DeleteCar(context.Background(), "missing")

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDownPaymentNeverExceedsPrice(t *testing.T) {
	uc := NewCarUseCase(newFakeCarRepo())

	for _, price := range []int{0, 1, 999, 5000, 19999, 100000} {
		input := validCarInput()
		input.Price = price
		input.DownPayment = 0

		car, err := uc.CreateCar(context.Background(), input)

		assert.NoError(t, err)
		assert.LessOrEqual(t, car.DownPayment, car.Price)
	}
}
