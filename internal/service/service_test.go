package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/database"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

type testEnv struct {
	db       *gorm.DB
	listings *ListingService
	bookings *BookingService
	reviews  *ReviewService
	users    *repository.UserRepository
}

func setupEnv(t *testing.T) *testEnv {
	db, err := database.NewTestDB()
	require.NoError(t, err)
	require.NoError(t, database.MigrateSchema(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	return &testEnv{
		db:       db,
		listings: NewListingService(listingRepo, logger),
		bookings: NewBookingService(bookingRepo, listingRepo, logger),
		reviews:  NewReviewService(reviewRepo, bookingRepo, listingRepo, logger),
		users:    repository.NewUserRepository(db),
	}
}

func (e *testEnv) user(t *testing.T, username string) models.User {
	user := models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, e.users.Create(context.Background(), &user))
	return user
}

func (e *testEnv) listing(t *testing.T, host models.User, maxGuests int) dto.ListingResponse {
	resp, err := e.listings.Create(context.Background(), host, dto.CreateListingRequest{
		Title:         "Test Listing",
		Description:   "A place to stay",
		PropertyType:  "apartment",
		PricePerNight: 100,
		Location:      "1 Main St",
		City:          "Accra",
		State:         "Greater Accra",
		Country:       "Ghana",
		MaxGuests:     &maxGuests,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) booking(t *testing.T, listing dto.ListingResponse, guest models.User) dto.BookingResponse {
	booking, err := e.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    listing.ID.String(),
		CheckInDate:  models.Today().AddDate(0, 0, 5).Format(dto.DateLayout),
		CheckOutDate: models.Today().AddDate(0, 0, 8).Format(dto.DateLayout),
		NumGuests:    2,
		TotalPrice:   300,
	})
	require.NoError(t, err)
	return *booking
}

// errCodes flattens either error shape the services return into a code list.
func errCodes(err error) []string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		codes := make([]string, len(verrs))
		for i, e := range verrs {
			codes[i] = e.Code
		}
		return codes
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return []string{verr.Code}
	}
	return nil
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Contains(t, errCodes(err), code)
}

func TestCreateListingSetsPrincipalAsHost(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")

	listing := env.listing(t, host, 4)
	assert.Equal(t, host.ID, listing.Host.ID)
	assert.Equal(t, "host", listing.Host.Username)
	assert.Equal(t, 4, listing.MaxGuests)
	assert.True(t, listing.IsAvailable)
	assert.Equal(t, float64(0), listing.AverageRating)
	assert.Equal(t, int64(0), listing.ReviewCount)
}

func TestCreateListingRejectsBadFields(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")

	_, err := env.listings.Create(context.Background(), host, dto.CreateListingRequest{
		Title: "Bad", Description: "d", PricePerNight: -5,
		Location: "x", City: "x", State: "x", Country: "x",
	})
	assertCode(t, err, validation.CodeInvalidField)
}

func TestListingUpdateForbiddenForNonHost(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	other := env.user(t, "other")
	listing := env.listing(t, host, 4)

	title := "Hijacked"
	_, err := env.listings.Update(context.Background(), other, listing.ID, dto.UpdateListingRequest{Title: &title})
	assertCode(t, err, validation.CodeForbidden)

	_, err = env.listings.Update(context.Background(), host, listing.ID, dto.UpdateListingRequest{Title: &title})
	require.NoError(t, err)
}

func TestListingDeleteCascadesThroughService(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)
	env.booking(t, listing, guest)

	require.NoError(t, env.listings.Delete(context.Background(), host, listing.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.Booking{}).Where("listing_id = ?", listing.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingListingNotFound(t *testing.T) {
	env := setupEnv(t)
	guest := env.user(t, "guest")

	_, err := env.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    uuid.New().String(),
		CheckInDate:  models.Today().AddDate(0, 0, 5).Format(dto.DateLayout),
		CheckOutDate: models.Today().AddDate(0, 0, 8).Format(dto.DateLayout),
		NumGuests:    2,
		TotalPrice:   300,
	})
	assertCode(t, err, validation.CodeListingNotFound)
}

func TestCreateBookingUnavailableListing(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	unavailable := false
	_, err := env.listings.Update(context.Background(), host, listing.ID, dto.UpdateListingRequest{IsAvailable: &unavailable})
	require.NoError(t, err)

	_, err = env.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    listing.ID.String(),
		CheckInDate:  models.Today().AddDate(0, 0, 5).Format(dto.DateLayout),
		CheckOutDate: models.Today().AddDate(0, 0, 8).Format(dto.DateLayout),
		NumGuests:    2,
		TotalPrice:   300,
	})
	assertCode(t, err, validation.CodeListingUnavailable)
}

func TestCreateBookingEqualDatesRejected(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	day := models.Today().AddDate(0, 0, 10).Format(dto.DateLayout)
	_, err := env.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    listing.ID.String(),
		CheckInDate:  day,
		CheckOutDate: day,
		NumGuests:    2,
		TotalPrice:   300,
	})
	assertCode(t, err, validation.CodeInvalidDateRange)
}

func TestCreateBookingYesterdayRejected(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	_, err := env.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    listing.ID.String(),
		CheckInDate:  models.Today().AddDate(0, 0, -1).Format(dto.DateLayout),
		CheckOutDate: models.Today().AddDate(0, 0, 3).Format(dto.DateLayout),
		NumGuests:    2,
		TotalPrice:   300,
	})
	assertCode(t, err, validation.CodePastCheckIn)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	_, err := env.bookings.Create(context.Background(), guest, dto.CreateBookingRequest{
		ListingID:    listing.ID.String(),
		CheckInDate:  models.Today().AddDate(0, 0, 5).Format(dto.DateLayout),
		CheckOutDate: models.Today().AddDate(0, 0, 8).Format(dto.DateLayout),
		NumGuests:    5,
		TotalPrice:   300,
	})
	assertCode(t, err, validation.CodeCapacityExceeded)
}

func TestCreateBookingDerivedFields(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	booking := env.booking(t, listing, guest)
	assert.Equal(t, 3, booking.DurationNights)
	assert.False(t, booking.IsPastCheckout)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, guest.ID, booking.Guest.ID)
	assert.Equal(t, listing.ID, booking.Listing.ID)
	assert.Equal(t, host.ID, booking.Listing.Host.ID)
}

func TestBookingStatusTransitions(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	other := env.user(t, "other")
	listing := env.listing(t, host, 4)
	booking := env.booking(t, listing, guest)

	// guest cannot confirm
	_, err := env.bookings.UpdateStatus(context.Background(), guest, booking.ID, models.BookingConfirmed)
	assertCode(t, err, validation.CodeForbidden)

	// host confirms
	updated, err := env.bookings.UpdateStatus(context.Background(), host, booking.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	// stranger cannot cancel
	_, err = env.bookings.UpdateStatus(context.Background(), other, booking.ID, models.BookingCancelled)
	assertCode(t, err, validation.CodeForbidden)

	// guest cancels
	updated, err = env.bookings.UpdateStatus(context.Background(), guest, booking.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
}

func TestBookingUpdateOnlyPending(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)
	booking := env.booking(t, listing, guest)

	_, err := env.bookings.UpdateStatus(context.Background(), host, booking.ID, models.BookingConfirmed)
	require.NoError(t, err)

	guests := 3
	_, err = env.bookings.Update(context.Background(), guest, booking.ID, dto.UpdateBookingRequest{NumGuests: &guests})
	assertCode(t, err, validation.CodeInvalidField)
}

func TestBookingGetVisibility(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	other := env.user(t, "other")
	listing := env.listing(t, host, 4)
	booking := env.booking(t, listing, guest)

	_, err := env.bookings.Get(context.Background(), guest, booking.ID)
	require.NoError(t, err)
	_, err = env.bookings.Get(context.Background(), host, booking.ID)
	require.NoError(t, err)
	_, err = env.bookings.Get(context.Background(), other, booking.ID)
	assertCode(t, err, validation.CodeForbidden)
}

func TestCreateReviewSelfReviewRejected(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	listing := env.listing(t, host, 4)

	_, err := env.reviews.Create(context.Background(), host, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		Rating:    5,
		Comment:   "My own place is great",
	})
	assertCode(t, err, validation.CodeSelfReview)
}

func TestCreateReviewWithPendingBookingRejected(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)
	booking := env.booking(t, listing, guest)

	bookingID := booking.ID.String()
	_, err := env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		BookingID: &bookingID,
		Rating:    4,
		Comment:   "Not done yet",
	})
	assertCode(t, err, validation.CodeIncompleteBooking)
}

func TestCreateReviewWithCompletedBooking(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)
	booking := env.booking(t, listing, guest)

	_, err := env.bookings.UpdateStatus(context.Background(), host, booking.ID, models.BookingCompleted)
	require.NoError(t, err)

	bookingID := booking.ID.String()
	clean := 5
	review, err := env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID:         listing.ID.String(),
		BookingID:         &bookingID,
		Rating:            4,
		Comment:           "Lovely stay",
		CleanlinessRating: &clean,
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, review.Reviewer.ID)
	require.NotNil(t, review.BookingID)
	assert.Equal(t, booking.ID, *review.BookingID)
	require.NotNil(t, review.CleanlinessRating)
	assert.Equal(t, 5, *review.CleanlinessRating)
}

func TestCreateReviewMismatchedBookingRejected(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)
	otherListing := env.listing(t, host, 4)
	booking := env.booking(t, otherListing, guest)

	_, err := env.bookings.UpdateStatus(context.Background(), host, booking.ID, models.BookingCompleted)
	require.NoError(t, err)

	bookingID := booking.ID.String()
	_, err = env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		BookingID: &bookingID,
		Rating:    4,
		Comment:   "Wrong booking",
	})
	assertCode(t, err, validation.CodeBookingMismatch)
}

func TestSecondReviewIsDuplicateConflict(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	_, err := env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		Rating:    4,
		Comment:   "First impressions",
	})
	require.NoError(t, err)

	_, err = env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		Rating:    2,
		Comment:   "Changed my mind",
	})
	assertCode(t, err, validation.CodeDuplicateReview)
}

func TestAverageRatingOverReviews(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	listing := env.listing(t, host, 4)

	for i, rating := range []int{3, 4, 5} {
		reviewer := env.user(t, "reviewer"+string(rune('a'+i)))
		_, err := env.reviews.Create(context.Background(), reviewer, dto.CreateReviewRequest{
			ListingID: listing.ID.String(),
			Rating:    rating,
			Comment:   "ok",
		})
		require.NoError(t, err)
	}

	got, err := env.listings.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.AverageRating)
	assert.Equal(t, int64(3), got.ReviewCount)
}

func TestReviewUpdateReValidatesBounds(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")
	guest := env.user(t, "guest")
	listing := env.listing(t, host, 4)

	review, err := env.reviews.Create(context.Background(), guest, dto.CreateReviewRequest{
		ListingID: listing.ID.String(),
		Rating:    4,
		Comment:   "Good",
	})
	require.NoError(t, err)

	bad := 9
	_, err = env.reviews.Update(context.Background(), guest, review.ID, dto.UpdateReviewRequest{Rating: &bad})
	assertCode(t, err, validation.CodeInvalidField)

	_, err = env.reviews.Update(context.Background(), host, review.ID, dto.UpdateReviewRequest{})
	assertCode(t, err, validation.CodeForbidden)
}

func TestListNearbyFiltersByRadius(t *testing.T) {
	env := setupEnv(t)
	host := env.user(t, "host")

	accraLat, accraLng := 5.6037, -0.1870
	kumasiLat, kumasiLng := 6.6885, -1.6244

	maxGuests := 4
	_, err := env.listings.Create(context.Background(), host, dto.CreateListingRequest{
		Title: "Accra Apartment", Description: "d", PricePerNight: 100,
		Location: "1 Main St", City: "Accra", State: "GA", Country: "Ghana",
		Latitude: &accraLat, Longitude: &accraLng, MaxGuests: &maxGuests,
	})
	require.NoError(t, err)
	_, err = env.listings.Create(context.Background(), host, dto.CreateListingRequest{
		Title: "Kumasi House", Description: "d", PricePerNight: 100,
		Location: "2 Side St", City: "Kumasi", State: "AS", Country: "Ghana",
		Latitude: &kumasiLat, Longitude: &kumasiLng, MaxGuests: &maxGuests,
	})
	require.NoError(t, err)

	// Accra and Kumasi are roughly 200km apart
	nearby, err := env.listings.ListNearby(context.Background(), dto.NearbyListingsQuery{
		Latitude: accraLat, Longitude: accraLng, RadiusKM: 50,
	})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "Accra Apartment", nearby[0].Title)

	all, err := env.listings.ListNearby(context.Background(), dto.NearbyListingsQuery{
		Latitude: accraLat, Longitude: accraLng, RadiusKM: 500,
	})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
