// Package service implements the transfer layer: each operation takes the
// acting principal explicitly, resolves references supplied by identifier,
// runs the validation rules, and returns response DTOs with derived fields
// computed on read.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/dto"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/geo"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/validation"
)

const defaultNearbyRadiusKM = 25

type ListingService struct {
	listings *repository.ListingRepository
	logger   *logrus.Logger
}

func NewListingService(listings *repository.ListingRepository, logger *logrus.Logger) *ListingService {
	return &ListingService{listings: listings, logger: logger}
}

// Create stores a new listing owned by the principal.
func (s *ListingService) Create(ctx context.Context, principal models.User, in dto.CreateListingRequest) (*dto.ListingResponse, error) {
	listing := models.Listing{
		HostID:        principal.ID,
		Host:          principal,
		Title:         in.Title,
		Description:   in.Description,
		PropertyType:  models.PropertyApartment,
		PricePerNight: in.PricePerNight,
		Location:      in.Location,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     2,
		Amenities:     in.Amenities,
		IsAvailable:   true,
	}
	if in.PropertyType != "" {
		listing.PropertyType = models.PropertyType(in.PropertyType)
	}
	if in.Bedrooms != nil {
		listing.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		listing.Bathrooms = *in.Bathrooms
	}
	if in.MaxGuests != nil {
		listing.MaxGuests = *in.MaxGuests
	}
	if in.IsAvailable != nil {
		listing.IsAvailable = *in.IsAvailable
	}

	if err := validation.ValidateListing(&listing).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.listings.Create(ctx, &listing); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"listing_id": listing.ID,
		"host_id":    principal.ID,
	}).Info("Listing created")

	// a fresh listing has no reviews yet
	resp := dto.NewListingResponse(&listing, repository.RatingSummary{})
	return &resp, nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*dto.ListingResponse, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rating, err := s.listings.Rating(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewListingResponse(listing, rating)
	return &resp, nil
}

func (s *ListingService) List(ctx context.Context, q dto.ListListingsQuery) ([]dto.ListingResponse, error) {
	filter := repository.ListingFilter{
		City:          q.City,
		Country:       q.Country,
		PropertyType:  models.PropertyType(q.PropertyType),
		MinPrice:      q.MinPrice,
		MaxPrice:      q.MaxPrice,
		AvailableOnly: q.Available,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	listings, err := s.listings.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.serializeAll(ctx, listings)
}

// ListNearby returns available listings within the given radius of a point,
// ordered the same way they came back from storage.
func (s *ListingService) ListNearby(ctx context.Context, q dto.NearbyListingsQuery) ([]dto.ListingResponse, error) {
	radius := q.RadiusKM
	if radius <= 0 {
		radius = defaultNearbyRadiusKM
	}
	candidates, err := s.listings.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}
	nearby := candidates[:0]
	for _, l := range candidates {
		if geo.WithinRadius(&l, q.Latitude, q.Longitude, radius) {
			nearby = append(nearby, l)
		}
	}
	return s.serializeAll(ctx, nearby)
}

// Update applies a partial update. Only the host may modify a listing.
func (s *ListingService) Update(ctx context.Context, principal models.User, id uuid.UUID, in dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.HostID != principal.ID {
		return nil, validation.ForbiddenErr("only the host can modify this listing")
	}

	if in.Title != nil {
		listing.Title = *in.Title
	}
	if in.Description != nil {
		listing.Description = *in.Description
	}
	if in.PropertyType != nil {
		listing.PropertyType = models.PropertyType(*in.PropertyType)
	}
	if in.PricePerNight != nil {
		listing.PricePerNight = *in.PricePerNight
	}
	if in.Location != nil {
		listing.Location = *in.Location
	}
	if in.City != nil {
		listing.City = *in.City
	}
	if in.State != nil {
		listing.State = *in.State
	}
	if in.Country != nil {
		listing.Country = *in.Country
	}
	if in.Latitude != nil {
		listing.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		listing.Longitude = in.Longitude
	}
	if in.Bedrooms != nil {
		listing.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		listing.Bathrooms = *in.Bathrooms
	}
	if in.MaxGuests != nil {
		listing.MaxGuests = *in.MaxGuests
	}
	if in.Amenities != nil {
		listing.Amenities = *in.Amenities
	}
	if in.IsAvailable != nil {
		listing.IsAvailable = *in.IsAvailable
	}

	if err := validation.ValidateListing(listing).ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}

	rating, err := s.listings.Rating(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewListingResponse(listing, rating)
	return &resp, nil
}

// Delete removes a listing and its dependent bookings and reviews. Only the
// host may delete.
func (s *ListingService) Delete(ctx context.Context, principal models.User, id uuid.UUID) error {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.HostID != principal.ID {
		return validation.ForbiddenErr("only the host can delete this listing")
	}
	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("listing_id", id).Info("Listing deleted")
	return nil
}

func (s *ListingService) serializeAll(ctx context.Context, listings []models.Listing) ([]dto.ListingResponse, error) {
	ids := make([]uuid.UUID, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	ratings, err := s.listings.Ratings(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListingResponse, len(listings))
	for i := range listings {
		out[i] = dto.NewListingResponse(&listings[i], ratings[listings[i].ID])
	}
	return out, nil
}
