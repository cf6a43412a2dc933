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

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Listing").
		Preload("Listing.Host").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validation.NotFoundErr(validation.CodeBookingNotFound, "booking not found")
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Listing").
		Preload("Listing.Host").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by guest: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Listing").
		Preload("Listing.Host").
		Where("listing_id = ?", listingID).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by listing: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error; err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// Delete removes a booking and any review attached to it in one transaction.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking review: %w", err)
		}
		res := tx.Delete(&models.Booking{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete booking: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return validation.NotFoundErr(validation.CodeBookingNotFound, "booking not found")
		}
		return nil
	})
}
