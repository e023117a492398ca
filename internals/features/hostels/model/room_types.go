package model

import (
	"fmt"
)

/* ==============================
   ENUM: room types
============================== */

const (
	RoomShared         = "SHARED"
	RoomPrivate        = "PRIVATE"
	RoomSharedFullRoom = "SHARED_FULLROOM"
)

func ValidRoomType(t string) bool {
	switch t {
	case RoomShared, RoomPrivate, RoomSharedFullRoom:
		return true
	}
	return false
}

/* ==============================================
   Room-type document stored as JSONB on hostels

   Invariant: 0 <= AvailableRooms <= TotalRooms for every element,
   and each type appears at most once per hostel.
============================================== */

type RoomTypeConfig struct {
	Type                    string   `json:"type"`
	TotalRooms              int      `json:"total_rooms"`
	AvailableRooms          int      `json:"available_rooms"`
	PersonsInRoom           int      `json:"persons_in_room"`
	Price                   float64  `json:"price"`
	FullRoomPriceDiscounted *float64 `json:"full_room_price_discounted,omitempty"`
	UrgentBookingPrice      *float64 `json:"urgent_booking_price,omitempty"`
}

type RoomTypeList []RoomTypeConfig

// Find returns a pointer into the list for in-place mutation.
func (l RoomTypeList) Find(roomType string) *RoomTypeConfig {
	for i := range l {
		if l[i].Type == roomType {
			return &l[i]
		}
	}
	return nil
}

// Validate checks type names, uniqueness and capacity bounds.
func (l RoomTypeList) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("at least one room type is required")
	}
	seen := make(map[string]struct{}, len(l))
	for _, rt := range l {
		if !ValidRoomType(rt.Type) {
			return fmt.Errorf("unknown room type %q", rt.Type)
		}
		if _, dup := seen[rt.Type]; dup {
			return fmt.Errorf("room type %s listed more than once", rt.Type)
		}
		seen[rt.Type] = struct{}{}

		if rt.TotalRooms <= 0 {
			return fmt.Errorf("room type %s: total_rooms must be positive", rt.Type)
		}
		if rt.AvailableRooms < 0 || rt.AvailableRooms > rt.TotalRooms {
			return fmt.Errorf("room type %s: available_rooms out of range", rt.Type)
		}
		if rt.PersonsInRoom <= 0 {
			return fmt.Errorf("room type %s: persons_in_room must be positive", rt.Type)
		}
		if rt.Price <= 0 {
			return fmt.Errorf("room type %s: price must be positive", rt.Type)
		}
		if rt.FullRoomPriceDiscounted != nil && rt.Type != RoomSharedFullRoom {
			return fmt.Errorf("discounted full room price only applies to %s", RoomSharedFullRoom)
		}
	}
	return nil
}

// Adjust shifts the available count of one room type by delta, clamped
// into [0, TotalRooms]. Returns false when the type does not exist.
func (l RoomTypeList) Adjust(roomType string, delta int) bool {
	rt := l.Find(roomType)
	if rt == nil {
		return false
	}
	n := rt.AvailableRooms + delta
	if n < 0 {
		n = 0
	}
	if n > rt.TotalRooms {
		n = rt.TotalRooms
	}
	rt.AvailableRooms = n
	return true
}

// InitAvailability sets every available count to the full capacity,
// used when a hostel is first listed.
func (l RoomTypeList) InitAvailability() {
	for i := range l {
		l[i].AvailableRooms = l[i].TotalRooms
	}
}

// ApplyUpdate merges an incoming room-type configuration into the
// current one. For a type that already exists the available count moves
// by the capacity difference (adding rooms frees them, removing rooms
// eats into availability), clamped into [0, new total]. Unknown types
// start fully available.
func (l RoomTypeList) ApplyUpdate(incoming RoomTypeList) RoomTypeList {
	out := make(RoomTypeList, 0, len(incoming))
	for _, in := range incoming {
		existing := l.Find(in.Type)
		if existing == nil {
			in.AvailableRooms = in.TotalRooms
			out = append(out, in)
			continue
		}
		diff := in.TotalRooms - existing.TotalRooms
		avail := existing.AvailableRooms + diff
		if avail < 0 {
			avail = 0
		}
		if avail > in.TotalRooms {
			avail = in.TotalRooms
		}
		in.AvailableRooms = avail
		out = append(out, in)
	}
	return out
}
