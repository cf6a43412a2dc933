package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyCondo     PropertyType = "condo"
	PropertyVilla     PropertyType = "villa"
	PropertyStudio    PropertyType = "studio"
	PropertyLoft      PropertyType = "loft"
	PropertyCabin     PropertyType = "cabin"
	PropertyOther     PropertyType = "other"
)

// Valid reports whether t is one of the known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyVilla,
		PropertyStudio, PropertyLoft, PropertyCabin, PropertyOther:
		return true
	}
	return false
}

// Listing is a rentable property owned by a host user. Average rating and
// review count are derived at read time and never stored.
type Listing struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	HostID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"host_id"`
	Host          User         `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host"`
	Title         string       `gorm:"size:200;not null" json:"title"`
	Description   string       `gorm:"type:text;not null" json:"description"`
	PropertyType  PropertyType `gorm:"size:20;not null;default:'apartment';index" json:"property_type"`
	PricePerNight float64      `gorm:"type:decimal(10,2);not null;check:price_per_night > 0;index" json:"price_per_night"`
	Location      string       `gorm:"size:200;not null" json:"location"`
	City          string       `gorm:"size:100;not null;index:idx_listings_city_country" json:"city"`
	State         string       `gorm:"size:100;not null" json:"state"`
	Country       string       `gorm:"size:100;not null;index:idx_listings_city_country" json:"country"`
	Latitude      *float64     `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude     *float64     `gorm:"type:decimal(9,6)" json:"longitude"`
	Bedrooms      int          `gorm:"not null;default:1" json:"bedrooms"`
	Bathrooms     int          `gorm:"not null;default:1" json:"bathrooms"`
	MaxGuests     int          `gorm:"not null;default:2" json:"max_guests"`
	Amenities     string       `gorm:"type:text" json:"amenities"`
	IsAvailable   bool         `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:ListingID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ListingID" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// HasCoordinates reports whether both geo coordinates are set.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
