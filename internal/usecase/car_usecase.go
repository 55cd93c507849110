package usecase

import (
	"context"
	"math"
	"time"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/pkg/errors"
)

const (
	minYear = 1990

	// Convenience default applied when no down payment is supplied.
	defaultDownPaymentPercent = 10
)

type CarUseCase struct {
	carRepo repository.CarRepository
}

func NewCarUseCase(carRepo repository.CarRepository) *CarUseCase {
	return &CarUseCase{
		carRepo: carRepo,
	}
}

type CarInput struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int      `json:"price"`
	DownPayment  int      `json:"down_payment"`
	Mileage      int      `json:"mileage"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	BodyType     string   `json:"body_type"`
	Color        string   `json:"color"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Status       string   `json:"status"`
	IsFeatured   bool     `json:"is_featured"`
}

func (uc *CarUseCase) CreateCar(ctx context.Context, input CarInput) (*entity.Car, error) {
	if err := validateCarInput(input); err != nil {
		return nil, err
	}

	downPayment := input.DownPayment
	if downPayment == 0 {
		downPayment = defaultDownPayment(input.Price)
	}

	car := &entity.Car{
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		Price:        input.Price,
		DownPayment:  downPayment,
		Mileage:      input.Mileage,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		BodyType:     input.BodyType,
		Color:        input.Color,
		Description:  input.Description,
		Features:     input.Features,
		Images:       input.Images,
		Status:       input.Status,
		IsFeatured:   input.IsFeatured,
	}
	if car.Status == "" {
		car.Status = entity.CarStatusAvailable
	}

	if err := uc.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

func (uc *CarUseCase) UpdateCar(ctx context.Context, id string, input CarInput) (*entity.Car, error) {
	if err := validateCarInput(input); err != nil {
		return nil, err
	}

	car, err := uc.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-derive the 10% default when the incoming down payment is unset,
	// or when it is unchanged and was itself a prior 10% default; an
	// explicitly chosen amount is left alone.
	downPayment := input.DownPayment
	if downPayment == 0 || (downPayment == car.DownPayment && isDefaultDownPayment(car.DownPayment, car.Price)) {
		downPayment = defaultDownPayment(input.Price)
	}

	car.Make = input.Make
	car.Model = input.Model
	car.Year = input.Year
	car.Price = input.Price
	car.DownPayment = downPayment
	car.Mileage = input.Mileage
	car.FuelType = input.FuelType
	car.Transmission = input.Transmission
	car.BodyType = input.BodyType
	car.Color = input.Color
	car.Description = input.Description
	car.Features = input.Features
	car.Images = input.Images
	car.Status = input.Status
	car.IsFeatured = input.IsFeatured

	if err := uc.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

func (uc *CarUseCase) GetCarByID(ctx context.Context, id string) (*entity.Car, error) {
	return uc.carRepo.GetByID(ctx, id)
}

func (uc *CarUseCase) DeleteCar(ctx context.Context, id string) error {
	if _, err := uc.carRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.carRepo.Delete(ctx, id)
}

func validateCarInput(input CarInput) error {
	if input.Make == "" || input.Model == "" {
		return errors.ValidationFailed("Make and model are required", nil)
	}
	if input.Price < 0 {
		return errors.ValidationFailed("Price must not be negative", nil)
	}
	if input.DownPayment < 0 {
		return errors.ValidationFailed("Down payment must not be negative", nil)
	}
	if input.DownPayment > input.Price {
		return errors.ValidationFailed("Down payment must not exceed the price", nil)
	}
	if maxYear := time.Now().Year() + 1; input.Year < minYear || input.Year > maxYear {
		return errors.ValidationFailed("Year is out of range", nil)
	}
	return nil
}

func defaultDownPayment(price int) int {
	return int(math.Round(float64(price) * defaultDownPaymentPercent / 100))
}

func isDefaultDownPayment(downPayment, price int) bool {
	if price <= 0 {
		return downPayment == 0
	}
	return int(math.Round(float64(downPayment)/float64(price)*100)) == defaultDownPaymentPercent
}
