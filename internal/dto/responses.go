package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
)

// UserResponse is the nested representation of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// ListingResponse carries the listing with its host nested and the derived
// rating fields computed at serialization time.
type ListingResponse struct {
	ID            uuid.UUID           `json:"id"`
	Host          UserResponse        `json:"host"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	PropertyType  models.PropertyType `json:"property_type"`
	PricePerNight float64             `json:"price_per_night"`
	Location      string              `json:"location"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Country       string              `json:"country"`
	Latitude      *float64            `json:"latitude"`
	Longitude     *float64            `json:"longitude"`
	Bedrooms      int                 `json:"bedrooms"`
	Bathrooms     int                 `json:"bathrooms"`
	MaxGuests     int                 `json:"max_guests"`
	Amenities     string              `json:"amenities"`
	IsAvailable   bool                `json:"is_available"`
	AverageRating float64             `json:"average_rating"`
	ReviewCount   int64               `json:"review_count"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewListingResponse(l *models.Listing, rating repository.RatingSummary) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Host:          NewUserResponse(&l.Host),
		Title:         l.Title,
		Description:   l.Description,
		PropertyType:  l.PropertyType,
		PricePerNight: l.PricePerNight,
		Location:      l.Location,
		City:          l.City,
		State:         l.State,
		Country:       l.Country,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		MaxGuests:     l.MaxGuests,
		Amenities:     l.Amenities,
		IsAvailable:   l.IsAvailable,
		AverageRating: rating.Average,
		ReviewCount:   rating.Count,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// BookingResponse nests the listing and the guest. Dates cross the wire as
// YYYY-MM-DD strings; duration and past-checkout are derived on read.
type BookingResponse struct {
	ID              uuid.UUID            `json:"id"`
	Listing         ListingResponse      `json:"listing"`
	Guest           UserResponse         `json:"guest"`
	CheckInDate     string               `json:"check_in_date"`
	CheckOutDate    string               `json:"check_out_date"`
	NumGuests       int                  `json:"num_guests"`
	TotalPrice      float64              `json:"total_price"`
	Status          models.BookingStatus `json:"status"`
	SpecialRequests string               `json:"special_requests"`
	DurationNights  int                  `json:"duration_nights"`
	IsPastCheckout  bool                 `json:"is_past_checkout"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func NewBookingResponse(b *models.Booking, listing ListingResponse) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Listing:         listing,
		Guest:           NewUserResponse(&b.Guest),
		CheckInDate:     b.CheckInDate.Format(DateLayout),
		CheckOutDate:    b.CheckOutDate.Format(DateLayout),
		NumGuests:       b.NumGuests,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		DurationNights:  b.DurationNights(),
		IsPastCheckout:  b.IsPastCheckout(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type ReviewResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Listing             ListingResponse `json:"listing"`
	Reviewer            UserResponse    `json:"reviewer"`
	BookingID           *uuid.UUID      `json:"booking_id"`
	Rating              int             `json:"rating"`
	Comment             string          `json:"comment"`
	CleanlinessRating   *int            `json:"cleanliness_rating"`
	CommunicationRating *int            `json:"communication_rating"`
	LocationRating      *int            `json:"location_rating"`
	ValueRating         *int            `json:"value_rating"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func NewReviewResponse(r *models.Review, listing ListingResponse) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		Listing:             listing,
		Reviewer:            NewUserResponse(&r.Reviewer),
		BookingID:           r.BookingID,
		Rating:              r.Rating,
		Comment:             r.Comment,
		CleanlinessRating:   r.CleanlinessRating,
		CommunicationRating: r.CommunicationRating,
		LocationRating:      r.LocationRating,
		ValueRating:         r.ValueRating,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
