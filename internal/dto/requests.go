// Package dto defines the request and response shapes of the API boundary.
// Write payloads never carry ids, timestamps, or derived fields; those are
// always server-assigned.
package dto

const DateLayout = "2006-01-02"

type CreateListingRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description" binding:"required"`
	PropertyType  string   `json:"property_type"`
	PricePerNight float64  `json:"price_per_night" binding:"required"`
	Location      string   `json:"location" binding:"required,max=200"`
	City          string   `json:"city" binding:"required,max=100"`
	State         string   `json:"state" binding:"required,max=100"`
	Country       string   `json:"country" binding:"required,max=100"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,longitude"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     string   `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
}

type UpdateListingRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=200"`
	Description   *string  `json:"description"`
	PropertyType  *string  `json:"property_type"`
	PricePerNight *float64 `json:"price_per_night"`
	Location      *string  `json:"location" binding:"omitempty,max=200"`
	City          *string  `json:"city" binding:"omitempty,max=100"`
	State         *string  `json:"state" binding:"omitempty,max=100"`
	Country       *string  `json:"country" binding:"omitempty,max=100"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,longitude"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	MaxGuests     *int     `json:"max_guests"`
	Amenities     *string  `json:"amenities"`
	IsAvailable   *bool    `json:"is_available"`
}

type CreateBookingRequest struct {
	ListingID       string  `json:"listing_id" binding:"required,uuid"`
	CheckInDate     string  `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate    string  `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	NumGuests       int     `json:"num_guests"`
	TotalPrice      float64 `json:"total_price" binding:"required"`
	SpecialRequests string  `json:"special_requests"`
}

type UpdateBookingRequest struct {
	CheckInDate     *string  `json:"check_in_date" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string  `json:"check_out_date" binding:"omitempty,datetime=2006-01-02"`
	NumGuests       *int     `json:"num_guests"`
	TotalPrice      *float64 `json:"total_price"`
	SpecialRequests *string  `json:"special_requests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	ListingID           string  `json:"listing_id" binding:"required,uuid"`
	BookingID           *string `json:"booking_id" binding:"omitempty,uuid"`
	Rating              int     `json:"rating" binding:"required"`
	Comment             string  `json:"comment" binding:"required"`
	CleanlinessRating   *int    `json:"cleanliness_rating"`
	CommunicationRating *int    `json:"communication_rating"`
	LocationRating      *int    `json:"location_rating"`
	ValueRating         *int    `json:"value_rating"`
}

type UpdateReviewRequest struct {
	Rating              *int    `json:"rating"`
	Comment             *string `json:"comment"`
	CleanlinessRating   *int    `json:"cleanliness_rating"`
	CommunicationRating *int    `json:"communication_rating"`
	LocationRating      *int    `json:"location_rating"`
	ValueRating         *int    `json:"value_rating"`
}

type ListListingsQuery struct {
	City         string  `form:"city"`
	Country      string  `form:"country"`
	PropertyType string  `form:"property_type"`
	MinPrice     float64 `form:"min_price"`
	MaxPrice     float64 `form:"max_price"`
	Available    bool    `form:"available"`
	Limit        int     `form:"limit"`
	Offset       int     `form:"offset"`
}

type NearbyListingsQuery struct {
	Latitude  float64 `form:"lat" binding:"required,latitude"`
	Longitude float64 `form:"lng" binding:"required,longitude"`
	RadiusKM  float64 `form:"radius_km"`
}
