package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTypes() RoomTypeList {
	return RoomTypeList{
		{Type: RoomShared, TotalRooms: 10, AvailableRooms: 10, PersonsInRoom: 4, Price: 8000},
		{Type: RoomPrivate, TotalRooms: 3, AvailableRooms: 1, PersonsInRoom: 1, Price: 20000},
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	rooms := twoTypes()

	require.True(t, rooms.Adjust(RoomPrivate, -1))
	assert.Equal(t, 0, rooms.Find(RoomPrivate).AvailableRooms)

	// Further decrements cannot push below zero.
	require.True(t, rooms.Adjust(RoomPrivate, -1))
	assert.Equal(t, 0, rooms.Find(RoomPrivate).AvailableRooms)
}

func TestAdjustClampsAtTotal(t *testing.T) {
	rooms := twoTypes()

	require.True(t, rooms.Adjust(RoomShared, +5))
	assert.Equal(t, 10, rooms.Find(RoomShared).AvailableRooms)
}

func TestAdjustUnknownType(t *testing.T) {
	rooms := twoTypes()
	assert.False(t, rooms.Adjust(RoomSharedFullRoom, -1))
}

func TestInitAvailability(t *testing.T) {
	rooms := RoomTypeList{
		{Type: RoomShared, TotalRooms: 6, PersonsInRoom: 4, Price: 8000},
	}
	rooms.InitAvailability()
	assert.Equal(t, 6, rooms.Find(RoomShared).AvailableRooms)
}

func TestApplyUpdateShiftsByCapacityDiff(t *testing.T) {
	current := RoomTypeList{
		{Type: RoomShared, TotalRooms: 10, AvailableRooms: 4, PersonsInRoom: 4, Price: 8000},
	}

	// Adding two rooms frees two more.
	grown := current.ApplyUpdate(RoomTypeList{
		{Type: RoomShared, TotalRooms: 12, PersonsInRoom: 4, Price: 8000},
	})
	assert.Equal(t, 6, grown.Find(RoomShared).AvailableRooms)

	// Shrinking below the occupied count clamps at zero.
	shrunk := current.ApplyUpdate(RoomTypeList{
		{Type: RoomShared, TotalRooms: 3, PersonsInRoom: 4, Price: 8000},
	})
	assert.Equal(t, 0, shrunk.Find(RoomShared).AvailableRooms)
}

func TestApplyUpdateNewTypeStartsFull(t *testing.T) {
	current := twoTypes()
	next := current.ApplyUpdate(RoomTypeList{
		{Type: RoomSharedFullRoom, TotalRooms: 2, PersonsInRoom: 4, Price: 30000},
	})
	assert.Equal(t, 2, next.Find(RoomSharedFullRoom).AvailableRooms)
	assert.Nil(t, next.Find(RoomShared))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, twoTypes().Validate())

	assert.Error(t, RoomTypeList{}.Validate())

	dup := RoomTypeList{
		{Type: RoomShared, TotalRooms: 2, AvailableRooms: 2, PersonsInRoom: 4, Price: 8000},
		{Type: RoomShared, TotalRooms: 3, AvailableRooms: 3, PersonsInRoom: 4, Price: 9000},
	}
	assert.Error(t, dup.Validate())

	over := RoomTypeList{
		{Type: RoomShared, TotalRooms: 2, AvailableRooms: 3, PersonsInRoom: 4, Price: 8000},
	}
	assert.Error(t, over.Validate())

	discount := 5000.0
	wrongDiscount := RoomTypeList{
		{Type: RoomPrivate, TotalRooms: 2, AvailableRooms: 2, PersonsInRoom: 1, Price: 8000, FullRoomPriceDiscounted: &discount},
	}
	assert.Error(t, wrongDiscount.Validate())
}
