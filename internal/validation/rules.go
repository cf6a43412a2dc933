// Package validation holds the cross-field and cross-entity rules evaluated
// before an entity is committed. Rules are pure functions over already-decoded
// values; they collect every violation instead of stopping at the first, and
// they never mutate their inputs.
package validation

import (
	"fmt"
	"time"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
)

const maxGuestsCeiling = 50

// ValidateListing checks single-entity listing constraints.
func ValidateListing(l *models.Listing) Errors {
	var errs Errors
	if l.Title == "" {
		errs = append(errs, FieldErr("title", "title is required"))
	}
	if !l.PropertyType.Valid() {
		errs = append(errs, FieldErr("property_type", fmt.Sprintf("unknown property type %q", l.PropertyType)))
	}
	if l.PricePerNight <= 0 {
		errs = append(errs, FieldErr("price_per_night", "price per night must be greater than 0"))
	}
	if l.Bedrooms < 0 {
		errs = append(errs, FieldErr("bedrooms", "bedrooms cannot be negative"))
	}
	if l.Bathrooms < 0 {
		errs = append(errs, FieldErr("bathrooms", "bathrooms cannot be negative"))
	}
	if l.MaxGuests < 1 {
		errs = append(errs, FieldErr("max_guests", "maximum guests must be at least 1"))
	}
	if l.MaxGuests > maxGuestsCeiling {
		errs = append(errs, FieldErr("max_guests", fmt.Sprintf("maximum guests cannot exceed %d", maxGuestsCeiling)))
	}
	if (l.Latitude == nil) != (l.Longitude == nil) {
		errs = append(errs, FieldErr("latitude", "latitude and longitude must be set together"))
	}
	return errs
}

// ValidateBooking checks booking rules against its listing. today is the
// current UTC date; past check-in is evaluated here once, at validation time.
func ValidateBooking(b *models.Booking, listing *models.Listing, today time.Time) Errors {
	var errs Errors
	if !b.CheckOutDate.After(b.CheckInDate) {
		errs = append(errs, CrossFieldErr(CodeInvalidDateRange, "check_out_date",
			"check-out date must be after check-in date"))
	}
	if b.CheckInDate.Before(today) {
		errs = append(errs, CrossFieldErr(CodePastCheckIn, "check_in_date",
			"check-in date cannot be in the past"))
	}
	if b.NumGuests < 1 {
		errs = append(errs, FieldErr("num_guests", "number of guests must be at least 1"))
	} else if b.NumGuests > listing.MaxGuests {
		errs = append(errs, CrossFieldErr(CodeCapacityExceeded, "num_guests",
			fmt.Sprintf("number of guests (%d) exceeds listing capacity (%d)", b.NumGuests, listing.MaxGuests)))
	}
	if b.TotalPrice <= 0 {
		errs = append(errs, FieldErr("total_price", "total price must be greater than 0"))
	}
	if !b.Status.Valid() {
		errs = append(errs, FieldErr("status", fmt.Sprintf("unknown booking status %q", b.Status)))
	}
	return errs
}

// ValidateReview checks review rules against its listing and, when attached,
// its booking. booking is nil when the review is not tied to a stay.
func ValidateReview(r *models.Review, listing *models.Listing, booking *models.Booking) Errors {
	errs := validateRatings(r)

	if r.ReviewerID == listing.HostID {
		errs = append(errs, CrossFieldErr(CodeSelfReview, "reviewer_id",
			"hosts cannot review their own listings"))
	}

	if booking != nil {
		if booking.ListingID != listing.ID {
			errs = append(errs, CrossFieldErr(CodeBookingMismatch, "booking_id",
				"booking must be for the same listing"))
		}
		if booking.GuestID != r.ReviewerID {
			errs = append(errs, CrossFieldErr(CodeBookingMismatch, "booking_id",
				"review must be by the guest who made the booking"))
		}
		if booking.Status != models.BookingCompleted {
			errs = append(errs, CrossFieldErr(CodeIncompleteBooking, "booking_id",
				fmt.Sprintf("can only review completed bookings, booking is %q", booking.Status)))
		}
	}
	return errs
}

// validateRatings bounds the overall rating and each optional sub-rating to
// [1,5]. This is the single enforcement point for rating bounds; the database
// check constraints only back it up.
func validateRatings(r *models.Review) Errors {
	var errs Errors
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, FieldErr("rating", "rating must be between 1 and 5"))
	}
	for field, value := range map[string]*int{
		"cleanliness_rating":   r.CleanlinessRating,
		"communication_rating": r.CommunicationRating,
		"location_rating":      r.LocationRating,
		"value_rating":         r.ValueRating,
	} {
		if value != nil && (*value < 1 || *value > 5) {
			errs = append(errs, FieldErr(field, field+" must be between 1 and 5"))
		}
	}
	if r.Comment == "" {
		errs = append(errs, FieldErr("comment", "comment is required"))
	}
	return errs
}
