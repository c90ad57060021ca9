// File: models/records.go
package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a row of the bookings collection. Creation flows live outside
// this service; it only reads bookings for calendars and statistics.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	WorkerID    string    `bson:"worker_id" json:"worker_id"`
	EmployerID  string    `bson:"employer_id" json:"employer_id"`
	ServiceKey  string    `bson:"service_key,omitempty" json:"service_key,omitempty"`
	Status      string    `bson:"status" json:"status"`
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	EndTime     time.Time `bson:"end_time" json:"end_time"`
	TotalAmount float64   `bson:"total_amount" json:"total_amount"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Review is left by an employer after a completed booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	WorkerID   string    `bson:"worker_id" json:"worker_id"`
	EmployerID string    `bson:"employer_id" json:"employer_id"`
	BookingID  string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Rating     float64   `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// ReviewPage is one page of a worker's reviews plus the overall average.
type ReviewPage struct {
	Page[Review]
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// CalendarEntry is one booking as shown on a worker's month calendar.
type CalendarEntry struct {
	BookingID string    `json:"booking_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
