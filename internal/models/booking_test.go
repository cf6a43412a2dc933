package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingDurationNights(t *testing.T) {
	b := Booking{
		CheckInDate:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, b.DurationNights())

	b.CheckOutDate = time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, b.DurationNights())
}

func TestBookingIsPastCheckout(t *testing.T) {
	past := Booking{CheckOutDate: Today().AddDate(0, 0, -1)}
	assert.True(t, past.IsPastCheckout())

	today := Booking{CheckOutDate: Today()}
	assert.False(t, today.IsPastCheckout())

	future := Booking{CheckOutDate: Today().AddDate(0, 0, 7)}
	assert.False(t, future.IsPastCheckout())
}

func TestPropertyTypeValid(t *testing.T) {
	for _, pt := range []PropertyType{
		PropertyApartment, PropertyHouse, PropertyCondo, PropertyVilla,
		PropertyStudio, PropertyLoft, PropertyCabin, PropertyOther,
	} {
		assert.True(t, pt.Valid(), "%s should be valid", pt)
	}
	assert.False(t, PropertyType("castle").Valid())
	assert.False(t, PropertyType("").Valid())
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingRefunded,
	} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, BookingStatus("shipped").Valid())
}
