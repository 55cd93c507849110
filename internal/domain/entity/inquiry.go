package entity

import (
	"time"
)

// Message statuses
const (
	MessageStatusNew  = "new"
	MessageStatusRead = "read"
)

// ContactSubmission is a general message sent through the contact form.
type ContactSubmission struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Subject   string    `json:"subject" firestore:"subject"`
	Message   string    `json:"message" firestore:"message"`
	Read      bool      `json:"read" firestore:"read"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// CarDetails is the snapshot of a car taken when an inquiry is submitted.
// It is intentionally denormalized: the inquiry keeps showing what the
// visitor saw even if the car is later changed or deleted.
type CarDetails struct {
	Make  string `json:"make" firestore:"make"`
	Model string `json:"model" firestore:"model"`
	Year  int    `json:"year" firestore:"year"`
	Price int    `json:"price" firestore:"price"`
}

// CarInquiry is a visitor message about a specific car.
type CarInquiry struct {
	ID         string     `json:"id" firestore:"id"`
	Name       string     `json:"name" firestore:"name"`
	Email      string     `json:"email" firestore:"email"`
	Phone      string     `json:"phone,omitempty" firestore:"phone,omitempty"`
	Message    string     `json:"message" firestore:"message"`
	CarID      string     `json:"car_id" firestore:"carId"`
	CarDetails CarDetails `json:"car_details" firestore:"carDetails"`
	Read       bool       `json:"read" firestore:"read"`
	Status     string     `json:"status" firestore:"status"`
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt"`
}
