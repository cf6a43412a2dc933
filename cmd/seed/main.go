// Command seed populates the database with demo hosts, guests, listings,
// bookings, and reviews so the API has data to serve during development.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/database"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
)

var seedListings = []struct {
	title        string
	propertyType models.PropertyType
	price        float64
	city         string
	state        string
	country      string
	lat, lng     float64
	bedrooms     int
	maxGuests    int
	amenities    string
}{
	{"Cozy Downtown Apartment", models.PropertyApartment, 120, "Accra", "Greater Accra", "Ghana", 5.6037, -0.1870, 2, 4, "WiFi, Air Conditioning, Kitchen"},
	{"Beachfront Villa", models.PropertyVilla, 450, "Cape Coast", "Central", "Ghana", 5.1053, -1.2466, 5, 10, "Pool, WiFi, Beach Access, Parking"},
	{"Modern Studio Loft", models.PropertyStudio, 80, "Kumasi", "Ashanti", "Ghana", 6.6885, -1.6244, 1, 2, "WiFi, Workspace"},
	{"Lakeside Cabin", models.PropertyCabin, 150, "Akosombo", "Eastern", "Ghana", 6.2716, 0.0456, 3, 6, "Lake View, Fireplace, Parking"},
	{"City Center Condo", models.PropertyCondo, 200, "Accra", "Greater Accra", "Ghana", 5.5600, -0.2050, 3, 5, "WiFi, Gym, Pool, Parking"},
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	if err := database.MigrateSchema(db); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	bookings := repository.NewBookingRepository(db)
	reviews := repository.NewReviewRepository(db)

	rng := rand.New(rand.NewSource(42))

	hosts := make([]models.User, 0, 2)
	for i := 1; i <= 2; i++ {
		host := models.User{
			Username:  fmt.Sprintf("host%d", i),
			Email:     fmt.Sprintf("host%d@example.com", i),
			FirstName: "Host",
			LastName:  fmt.Sprintf("Number%d", i),
		}
		if err := users.Create(ctx, &host); err != nil {
			logger.WithError(err).Fatal("Failed to create host")
		}
		hosts = append(hosts, host)
	}

	guests := make([]models.User, 0, 3)
	for i := 1; i <= 3; i++ {
		guest := models.User{
			Username:  fmt.Sprintf("guest%d", i),
			Email:     fmt.Sprintf("guest%d@example.com", i),
			FirstName: "Guest",
			LastName:  fmt.Sprintf("Number%d", i),
		}
		if err := users.Create(ctx, &guest); err != nil {
			logger.WithError(err).Fatal("Failed to create guest")
		}
		guests = append(guests, guest)
	}

	created := make([]models.Listing, 0, len(seedListings))
	for i, s := range seedListings {
		lat, lng := s.lat, s.lng
		listing := models.Listing{
			HostID:        hosts[i%len(hosts)].ID,
			Title:         s.title,
			Description:   fmt.Sprintf("A lovely %s in %s with %s.", s.propertyType, s.city, s.amenities),
			PropertyType:  s.propertyType,
			PricePerNight: s.price,
			Location:      fmt.Sprintf("%d Example Street", 10+i),
			City:          s.city,
			State:         s.state,
			Country:       s.country,
			Latitude:      &lat,
			Longitude:     &lng,
			Bedrooms:      s.bedrooms,
			Bathrooms:     1 + s.bedrooms/2,
			MaxGuests:     s.maxGuests,
			Amenities:     s.amenities,
			IsAvailable:   true,
		}
		if err := listings.Create(ctx, &listing); err != nil {
			logger.WithError(err).Fatal("Failed to create listing")
		}
		created = append(created, listing)
	}

	today := models.Today()
	for i, listing := range created {
		guest := guests[i%len(guests)]
		nights := 2 + rng.Intn(5)
		checkIn := today.AddDate(0, 0, -30)
		booking := models.Booking{
			ListingID:    listing.ID,
			GuestID:      guest.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.AddDate(0, 0, nights),
			NumGuests:    1 + rng.Intn(listing.MaxGuests),
			TotalPrice:   float64(nights) * listing.PricePerNight,
			Status:       models.BookingCompleted,
		}
		if err := bookings.Create(ctx, &booking); err != nil {
			logger.WithError(err).Fatal("Failed to create booking")
		}

		sub := 3 + rng.Intn(3)
		review := models.Review{
			ListingID:         listing.ID,
			ReviewerID:        guest.ID,
			BookingID:         &booking.ID,
			Rating:            3 + rng.Intn(3),
			Comment:           "Great stay, would book again.",
			CleanlinessRating: &sub,
		}
		if err := reviews.Create(ctx, &review); err != nil {
			logger.WithError(err).Fatal("Failed to create review")
		}
	}

	logger.WithFields(logrus.Fields{
		"users":    len(hosts) + len(guests),
		"listings": len(created),
	}).Info("Seed data created")
}
