package entity

import (
	"time"
)

// Car statuses
const (
	CarStatusAvailable = "available"
	CarStatusPending   = "pending"
	CarStatusSold      = "sold"
)

type Car struct {
	ID           string    `json:"id" firestore:"id"`
	Make         string    `json:"make" firestore:"make"`
	Model        string    `json:"model" firestore:"model"`
	Year         int       `json:"year" firestore:"year"`
	Price        int       `json:"price" firestore:"price"` // whole pounds
	DownPayment  int       `json:"down_payment" firestore:"downPayment"`
	Mileage      int       `json:"mileage" firestore:"mileage"`
	FuelType     string    `json:"fuel_type" firestore:"fuelType"`         // "petrol", "diesel", "electric", "hybrid"
	Transmission string    `json:"transmission" firestore:"transmission"`  // "manual", "automatic"
	BodyType     string    `json:"body_type" firestore:"bodyType"`         // "sedan", "suv", "hatchback", "coupe", "convertible", "estate"
	Color        string    `json:"color" firestore:"color"`
	Description  string    `json:"description" firestore:"description"`
	Features     []string  `json:"features" firestore:"features"`
	Images       []string  `json:"images" firestore:"images"`
	Status       string    `json:"status" firestore:"status"`
	IsFeatured   bool      `json:"is_featured" firestore:"isFeatured"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
