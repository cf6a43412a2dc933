package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

type BookingService struct {
	bookings *repository.BookingRepository
	listings *repository.ListingRepository
	logger   *logrus.Logger
}

func NewBookingService(bookings *repository.BookingRepository, listings *repository.ListingRepository, logger *logrus.Logger) *BookingService {
	return &BookingService{bookings: bookings, listings: listings, logger: logger}
}

// Create resolves the listing, checks availability, runs the booking rules,
// and stores the booking with the principal as guest.
func (s *BookingService) Create(ctx context.Context, principal models.User, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	listingID, err := uuid.Parse(in.ListingID)
	if err != nil {
		return nil, validation.FieldErr("listing_id", "listing_id must be a valid UUID")
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsAvailable {
		return nil, validation.CrossFieldErr(validation.CodeListingUnavailable, "listing_id",
			"this listing is not currently available for booking")
	}

	checkIn, err := parseDate(in.CheckInDate)
	if err != nil {
		return nil, validation.FieldErr("check_in_date", "check_in_date must be a YYYY-MM-DD date")
	}
	checkOut, err := parseDate(in.CheckOutDate)
	if err != nil {
		return nil, validation.FieldErr("check_out_date", "check_out_date must be a YYYY-MM-DD date")
	}

	booking := models.Booking{
		ListingID:       listing.ID,
		Listing:         *listing,
		GuestID:         principal.ID,
		Guest:           principal,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       in.NumGuests,
		TotalPrice:      in.TotalPrice,
		Status:          models.BookingPending,
		SpecialRequests: in.SpecialRequests,
	}
	if booking.NumGuests == 0 {
		booking.NumGuests = 1
	}

	if err := validation.ValidateBooking(&booking, listing, models.Today()).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, &booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"listing_id": listing.ID,
		"guest_id":   principal.ID,
	}).Info("Booking created")

	return s.serialize(ctx, &booking)
}

// Get returns a booking to its guest or to the listing's host.
func (s *BookingService) Get(ctx context.Context, principal models.User, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != principal.ID && booking.Listing.HostID != principal.ID {
		return nil, validation.ForbiddenErr("only the guest or the host can view this booking")
	}
	return s.serialize(ctx, booking)
}

// ListMine returns the principal's bookings as guest.
func (s *BookingService) ListMine(ctx context.Context, principal models.User) ([]dto.BookingResponse, error) {
	bookings, err := s.bookings.ListByGuest(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return s.serializeAll(ctx, bookings)
}

// ListForListing returns a listing's bookings to its host.
func (s *BookingService) ListForListing(ctx context.Context, principal models.User, listingID uuid.UUID) ([]dto.BookingResponse, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.HostID != principal.ID {
		return nil, validation.ForbiddenErr("only the host can list bookings for this listing")
	}
	bookings, err := s.bookings.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return s.serializeAll(ctx, bookings)
}

// Update modifies a pending booking. Only the guest may update, and the
// changed booking is re-validated in full.
func (s *BookingService) Update(ctx context.Context, principal models.User, id uuid.UUID, in dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != principal.ID {
		return nil, validation.ForbiddenErr("only the guest can modify this booking")
	}
	if booking.Status != models.BookingPending {
		return nil, validation.CrossFieldErr(validation.CodeInvalidField, "status",
			"only pending bookings can be modified")
	}

	if in.CheckInDate != nil {
		d, err := parseDate(*in.CheckInDate)
		if err != nil {
			return nil, validation.FieldErr("check_in_date", "check_in_date must be a YYYY-MM-DD date")
		}
		booking.CheckInDate = d
	}
	if in.CheckOutDate != nil {
		d, err := parseDate(*in.CheckOutDate)
		if err != nil {
			return nil, validation.FieldErr("check_out_date", "check_out_date must be a YYYY-MM-DD date")
		}
		booking.CheckOutDate = d
	}
	if in.NumGuests != nil {
		booking.NumGuests = *in.NumGuests
	}
	if in.TotalPrice != nil {
		booking.TotalPrice = *in.TotalPrice
	}
	if in.SpecialRequests != nil {
		booking.SpecialRequests = *in.SpecialRequests
	}

	if err := validation.ValidateBooking(booking, &booking.Listing, models.Today()).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.serialize(ctx, booking)
}

// UpdateStatus moves a booking through its lifecycle. The guest may cancel;
// the host may confirm, complete, or refund.
func (s *BookingService) UpdateStatus(ctx context.Context, principal models.User, id uuid.UUID, status models.BookingStatus) (*dto.BookingResponse, error) {
	if !status.Valid() {
		return nil, validation.FieldErr("status", "unknown booking status")
	}
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isGuest := booking.GuestID == principal.ID
	isHost := booking.Listing.HostID == principal.ID
	switch {
	case status == models.BookingCancelled && isGuest:
	case (status == models.BookingConfirmed || status == models.BookingCompleted || status == models.BookingRefunded) && isHost:
	default:
		return nil, validation.ForbiddenErr("not allowed to set this booking status")
	}

	booking.Status = status
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"status":     status,
	}).Info("Booking status updated")

	return s.serialize(ctx, booking)
}

// Delete removes a booking. Only the guest may delete.
func (s *BookingService) Delete(ctx context.Context, principal models.User, id uuid.UUID) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.GuestID != principal.ID {
		return validation.ForbiddenErr("only the guest can delete this booking")
	}
	return s.bookings.Delete(ctx, id)
}

func (s *BookingService) serialize(ctx context.Context, b *models.Booking) (*dto.BookingResponse, error) {
	rating, err := s.listings.Rating(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBookingResponse(b, dto.NewListingResponse(&b.Listing, rating))
	return &resp, nil
}

func (s *BookingService) serializeAll(ctx context.Context, bookings []models.Booking) ([]dto.BookingResponse, error) {
	ids := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ListingID
	}
	ratings, err := s.listings.Ratings(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out[i] = dto.NewBookingResponse(b, dto.NewListingResponse(&b.Listing, ratings[b.ListingID]))
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dto.DateLayout, s, time.UTC)
}
