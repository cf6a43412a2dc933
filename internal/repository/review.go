package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. A (listing, reviewer) unique violation, including
// one raced in after the service-level pre-check, is reported as a duplicate
// conflict, never as a raw storage error.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error; err != nil {
		if isDuplicateErr(err) {
			return validation.DuplicateErr(validation.CodeDuplicateReview, "listing_id",
				"this user has already reviewed this listing")
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Listing").
		Preload("Listing.Host").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validation.NotFoundErr(validation.CodeReviewNotFound, "review not found")
		}
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Listing").
		Preload("Listing.Host").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by listing: %w", err)
	}
	return reviews, nil
}

// ExistsForListingAndReviewer reports whether the (listing, reviewer) pair
// already has a review.
func (r *ReviewRepository) ExistsForListingAndReviewer(ctx context.Context, listingID, reviewerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("listing_id = ? AND reviewer_id = ?", listingID, reviewerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for existing review: %w", err)
	}
	return count > 0, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return validation.NotFoundErr(validation.CodeReviewNotFound, "review not found")
	}
	return nil
}

// isDuplicateErr matches unique-constraint violations across drivers. Gorm's
// error translation covers postgres and recent sqlite drivers; the string
// check catches sqlite builds that predate the translator.
func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
