package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a rating and comment left by a user for a listing, optionally
// tied to a completed booking. A (listing, reviewer) pair may hold at most
// one review, enforced by the composite unique index.
type Review struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ListingID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_reviewer" json:"listing_id"`
	Listing    Listing    `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing"`
	ReviewerID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_reviewer" json:"reviewer_id"`
	Reviewer   User       `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"reviewer"`
	BookingID  *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"booking_id"`
	Booking    *Booking   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5;index" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CleanlinessRating   *int `gorm:"check:cleanliness_rating IS NULL OR (cleanliness_rating >= 1 AND cleanliness_rating <= 5)" json:"cleanliness_rating"`
	CommunicationRating *int `gorm:"check:communication_rating IS NULL OR (communication_rating >= 1 AND communication_rating <= 5)" json:"communication_rating"`
	LocationRating      *int `gorm:"check:location_rating IS NULL OR (location_rating >= 1 AND location_rating <= 5)" json:"location_rating"`
	ValueRating         *int `gorm:"check:value_rating IS NULL OR (value_rating >= 1 AND value_rating <= 5)" json:"value_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
