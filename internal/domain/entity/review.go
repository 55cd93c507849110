package entity

import (
	"time"
)

// Review is a customer review, optionally tied to a car. CarID is a weak
// reference: the car may have been deleted and the review still renders.
type Review struct {
	ID           string    `json:"id" firestore:"id"`
	CustomerName string    `json:"customer_name" firestore:"customerName"`
	Rating       int       `json:"rating" firestore:"rating"` // 1-5
	Comment      string    `json:"comment" firestore:"comment"`
	CarID        string    `json:"car_id,omitempty" firestore:"carId,omitempty"`
	IsApproved   bool      `json:"is_approved" firestore:"isApproved"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
