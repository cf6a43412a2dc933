package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

type ReviewService struct {
	reviews  *repository.ReviewRepository
	bookings *repository.BookingRepository
	listings *repository.ListingRepository
	logger   *logrus.Logger
}

func NewReviewService(reviews *repository.ReviewRepository, bookings *repository.BookingRepository, listings *repository.ListingRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, listings: listings, logger: logger}
}

// Create resolves the listing and the optional booking, runs the review
// rules, and stores the review with the principal as reviewer. The unique
// (listing, reviewer) constraint is pre-checked here; the repository
// translates a raced violation to the same duplicate conflict.
func (s *ReviewService) Create(ctx context.Context, principal models.User, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	listingID, err := uuid.Parse(in.ListingID)
	if err != nil {
		return nil, validation.FieldErr("listing_id", "listing_id must be a valid UUID")
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	var booking *models.Booking
	review := models.Review{
		ListingID:           listing.ID,
		Listing:             *listing,
		ReviewerID:          principal.ID,
		Reviewer:            principal,
		Rating:              in.Rating,
		Comment:             in.Comment,
		CleanlinessRating:   in.CleanlinessRating,
		CommunicationRating: in.CommunicationRating,
		LocationRating:      in.LocationRating,
		ValueRating:         in.ValueRating,
	}
	if in.BookingID != nil {
		bookingID, err := uuid.Parse(*in.BookingID)
		if err != nil {
			return nil, validation.FieldErr("booking_id", "booking_id must be a valid UUID")
		}
		booking, err = s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		review.BookingID = &booking.ID
	}

	exists, err := s.reviews.ExistsForListingAndReviewer(ctx, listing.ID, principal.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validation.DuplicateErr(validation.CodeDuplicateReview, "listing_id",
			"this user has already reviewed this listing")
	}

	if err := validation.ValidateReview(&review, listing, booking).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.reviews.Create(ctx, &review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"review_id":   review.ID,
		"listing_id":  listing.ID,
		"reviewer_id": principal.ID,
		"rating":      review.Rating,
	}).Info("Review created")

	return s.serialize(ctx, &review)
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*dto.ReviewResponse, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.serialize(ctx, review)
}

func (s *ReviewService) ListForListing(ctx context.Context, listingID uuid.UUID) ([]dto.ReviewResponse, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	rating, err := s.listings.Rating(ctx, listingID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = dto.NewReviewResponse(&reviews[i], dto.NewListingResponse(&reviews[i].Listing, rating))
	}
	return out, nil
}

// Update modifies a review's ratings or comment. Only the reviewer may
// update; bounds are re-checked against the same rules as creation.
func (s *ReviewService) Update(ctx context.Context, principal models.User, id uuid.UUID, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != principal.ID {
		return nil, validation.ForbiddenErr("only the reviewer can modify this review")
	}

	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	if in.CleanlinessRating != nil {
		review.CleanlinessRating = in.CleanlinessRating
	}
	if in.CommunicationRating != nil {
		review.CommunicationRating = in.CommunicationRating
	}
	if in.LocationRating != nil {
		review.LocationRating = in.LocationRating
	}
	if in.ValueRating != nil {
		review.ValueRating = in.ValueRating
	}

	var booking *models.Booking
	if review.BookingID != nil {
		booking, err = s.bookings.GetByID(ctx, *review.BookingID)
		if err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateReview(review, &review.Listing, booking).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.serialize(ctx, review)
}

// Delete removes a review. Only the reviewer may delete.
func (s *ReviewService) Delete(ctx context.Context, principal models.User, id uuid.UUID) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.ReviewerID != principal.ID {
		return validation.ForbiddenErr("only the reviewer can delete this review")
	}
	return s.reviews.Delete(ctx, id)
}

func (s *ReviewService) serialize(ctx context.Context, r *models.Review) (*dto.ReviewResponse, error) {
	rating, err := s.listings.Rating(ctx, r.ListingID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewReviewResponse(r, dto.NewListingResponse(&r.Listing, rating))
	return &resp, nil
}
