package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hostelModel "hostelshub_backend/internals/features/hostels/model"
	"hostelshub_backend/internals/features/bookings/model"
	helper "hostelshub_backend/internals/helpers"
)

func sharedRoom(urgentPrice *float64) *hostelModel.RoomTypeConfig {
	return &hostelModel.RoomTypeConfig{
		Type:               hostelModel.RoomShared,
		TotalRooms:         10,
		AvailableRooms:     5,
		PersonsInRoom:      4,
		Price:              8000,
		UrgentBookingPrice: urgentPrice,
	}
}

func kindOf(t *testing.T, err error) helper.ErrKind {
	t.Helper()
	appErr, ok := err.(*helper.AppError)
	require.True(t, ok, "expected AppError, got %T", err)
	return appErr.Kind
}

func TestRegularBookingWithinWindow(t *testing.T) {
	day5 := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	amount, urgentLeave, err := priceForBooking(day5, model.BookingTypeRegular, sharedRoom(nil))
	require.NoError(t, err)
	assert.Equal(t, 8000.0, amount)
	assert.Nil(t, urgentLeave)
}

func TestRegularBookingRejectedAfterDay12(t *testing.T) {
	day15 := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	_, _, err := priceForBooking(day15, model.BookingTypeRegular, sharedRoom(nil))
	require.Error(t, err)
	assert.Equal(t, helper.KindDomainRule, kindOf(t, err))
}

func TestUrgentBookingAfterDay12(t *testing.T) {
	day15 := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	urgent := 12000.0

	amount, urgentLeave, err := priceForBooking(day15, model.BookingTypeUrgent, sharedRoom(&urgent))
	require.NoError(t, err)
	assert.Equal(t, 12000.0, amount)

	require.NotNil(t, urgentLeave)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), *urgentLeave)
}

func TestUrgentBookingRejectedEarlyInMonth(t *testing.T) {
	day5 := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	urgent := 12000.0

	_, _, err := priceForBooking(day5, model.BookingTypeUrgent, sharedRoom(&urgent))
	require.Error(t, err)
	assert.Equal(t, helper.KindDomainRule, kindOf(t, err))
}

func TestUrgentBookingNeedsConfiguredPrice(t *testing.T) {
	day15 := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	_, _, err := priceForBooking(day15, model.BookingTypeUrgent, sharedRoom(nil))
	require.Error(t, err)
	assert.Equal(t, helper.KindDomainRule, kindOf(t, err))
}

func TestFullRoomDiscountedPrice(t *testing.T) {
	day5 := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	discount := 28000.0
	rt := &hostelModel.RoomTypeConfig{
		Type:                    hostelModel.RoomSharedFullRoom,
		TotalRooms:              2,
		AvailableRooms:          1,
		PersonsInRoom:           4,
		Price:                   32000,
		FullRoomPriceDiscounted: &discount,
	}

	amount, _, err := priceForBooking(day5, model.BookingTypeRegular, rt)
	require.NoError(t, err)
	assert.Equal(t, 28000.0, amount)
}

func TestFirstOfNextMonthYearRollover(t *testing.T) {
	dec := time.Date(2026, time.December, 20, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), firstOfNextMonth(dec))
}
