// Package repository contains the per-entity data access layers over gorm.
// Storage-engine errors are translated into the structured validation errors
// the API exposes; raw driver errors never leave this package for the cases
// the taxonomy covers.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

// RatingSummary is the derived rating state of a listing, computed on read.
type RatingSummary struct {
	Average float64 `json:"average_rating"`
	Count   int64   `json:"review_count"`
}

// ListingFilter narrows List results. Zero values mean "no filter".
type ListingFilter struct {
	City          string
	Country       string
	PropertyType  models.PropertyType
	MinPrice      float64
	MaxPrice      float64
	AvailableOnly bool
	Limit         int
	Offset        int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create inserts the listing row. Associated structs populated by the caller
// are left alone; references must already exist.
func (r *ListingRepository) Create(ctx context.Context, l *models.Listing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetByID loads a listing with its host. Unresolved ids become a structured
// not-found error.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).Preload("Host").First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validation.NotFoundErr(validation.CodeListingNotFound, "listing not found")
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	return &listing, nil
}

func (r *ListingRepository) List(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	q := r.db.WithContext(ctx).Preload("Host").Order("created_at DESC")
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var listings []models.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// ListWithCoordinates returns available listings that carry geo coordinates,
// for the nearby search.
func (r *ListingRepository) ListWithCoordinates(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.WithContext(ctx).Preload("Host").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("is_available = ?", true).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings with coordinates: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *models.Listing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error; err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// Delete removes a listing together with its dependent bookings and reviews
// in one transaction, mirroring the cascade the foreign keys declare.
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing reviews: %w", err)
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing bookings: %w", err)
		}
		res := tx.Delete(&models.Listing{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete listing: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return validation.NotFoundErr(validation.CodeListingNotFound, "listing not found")
		}
		return nil
	})
}

// Rating computes the mean review rating and the review count for a listing.
// A listing with no reviews yields exactly 0.
func (r *ListingRepository) Rating(ctx context.Context, id uuid.UUID) (RatingSummary, error) {
	var summary RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("listing_id = ?", id).
		Scan(&summary).Error
	if err != nil {
		return RatingSummary{}, fmt.Errorf("failed to aggregate listing rating: %w", err)
	}
	return summary, nil
}

// Ratings batches Rating for a set of listings so list endpoints do one
// aggregate query instead of one per row.
func (r *ListingRepository) Ratings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]RatingSummary, error) {
	out := make(map[uuid.UUID]RatingSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ListingID uuid.UUID
		Average   float64
		Count     int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("listing_id, COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("listing_id IN ?", ids).
		Group("listing_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate listing ratings: %w", err)
	}
	for _, row := range rows {
		out[row.ListingID] = RatingSummary{Average: row.Average, Count: row.Count}
	}
	return out, nil
}
