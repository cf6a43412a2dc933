package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingRefunded  BookingStatus = "refunded"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingRefunded:
		return true
	}
	return false
}

// Booking is a reservation of a listing by a guest for a date range.
// Dates are date-only values at UTC midnight. The check constraint repeats
// the date-ordering invariant at the storage layer.
type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ListingID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"listing_id"`
	Listing         Listing       `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing"`
	GuestID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"guest_id"`
	Guest           User          `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"guest"`
	CheckInDate     time.Time     `gorm:"type:date;not null;index:idx_bookings_dates" json:"check_in_date"`
	CheckOutDate    time.Time     `gorm:"type:date;not null;index:idx_bookings_dates;check:chk_bookings_date_order,check_out_date > check_in_date" json:"check_out_date"`
	NumGuests       int           `gorm:"not null;default:1" json:"num_guests"`
	TotalPrice      float64       `gorm:"type:decimal(10,2);not null;check:total_price > 0" json:"total_price"`
	Status          BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// DurationNights returns the number of nights between check-in and check-out.
func (b *Booking) DurationNights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// IsPastCheckout reports whether the check-out date has already passed.
func (b *Booking) IsPastCheckout() bool {
	return b.CheckOutDate.Before(Today())
}

// Today returns the current UTC date at midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
