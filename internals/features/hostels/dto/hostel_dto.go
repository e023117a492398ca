package dto

import (
	"gorm.io/datatypes"

	"hostelshub_backend/internals/features/hostels/model"
)

type RoomTypeInput struct {
	Type                    string   `json:"type" validate:"required,oneof=SHARED PRIVATE SHARED_FULLROOM"`
	TotalRooms              int      `json:"total_rooms" validate:"required,gt=0"`
	PersonsInRoom           int      `json:"persons_in_room" validate:"required,gt=0"`
	Price                   float64  `json:"price" validate:"required,gt=0"`
	FullRoomPriceDiscounted *float64 `json:"full_room_price_discounted" validate:"omitempty,gt=0"`
	UrgentBookingPrice      *float64 `json:"urgent_booking_price" validate:"omitempty,gt=0"`
}

type CreateHostelRequest struct {
	HostelName      string          `json:"hostel_name" validate:"required,min=1,max=120"`
	City            string          `json:"city" validate:"required,min=1,max=80"`
	Address         string          `json:"address" validate:"required,min=1,max=255"`
	NearbyLocations []string        `json:"nearby_locations"`
	HostelFor       string          `json:"hostel_for" validate:"required,oneof=BOYS GIRLS"`
	RoomTypes       []RoomTypeInput `json:"room_types" validate:"required,min=1,dive"`
	Facilities      datatypes.JSON  `json:"facilities"`
	RoomImages      []string        `json:"room_images" validate:"omitempty,dive,url"`
	Rules           string          `json:"rules"`
	SEOKeywords     []string        `json:"seo_keywords"`
}

// UpdateHostelRequest: nil slices/pointers mean "leave unchanged".
type UpdateHostelRequest struct {
	HostelName      *string         `json:"hostel_name" validate:"omitempty,min=1,max=120"`
	City            *string         `json:"city" validate:"omitempty,min=1,max=80"`
	Address         *string         `json:"address" validate:"omitempty,min=1,max=255"`
	NearbyLocations []string        `json:"nearby_locations"`
	HostelFor       *string         `json:"hostel_for" validate:"omitempty,oneof=BOYS GIRLS"`
	RoomTypes       []RoomTypeInput `json:"room_types" validate:"omitempty,min=1,dive"`
	Facilities      datatypes.JSON  `json:"facilities"`
	RoomImages      []string        `json:"room_images" validate:"omitempty,dive,url"`
	Rules           *string         `json:"rules"`
	SEOKeywords     []string        `json:"seo_keywords"`
	IsActive        *bool           `json:"is_active"`
}

type SearchHostelsQuery struct {
	City           string   `query:"city"`
	NearbyLocation string   `query:"nearby_location"`
	RoomType       string   `query:"room_type" validate:"omitempty,oneof=SHARED PRIVATE SHARED_FULLROOM"`
	HostelFor      string   `query:"hostel_for" validate:"omitempty,oneof=BOYS GIRLS"`
	MinPrice       *float64 `query:"min_price" validate:"omitempty,gt=0"`
	MaxPrice       *float64 `query:"max_price" validate:"omitempty,gt=0"`
}

// ToRoomTypeList converts inputs to the stored document shape.
// Availability is filled in by the service (create vs update rules).
func ToRoomTypeList(in []RoomTypeInput) model.RoomTypeList {
	out := make(model.RoomTypeList, 0, len(in))
	for _, rt := range in {
		out = append(out, model.RoomTypeConfig{
			Type:                    rt.Type,
			TotalRooms:              rt.TotalRooms,
			PersonsInRoom:           rt.PersonsInRoom,
			Price:                   rt.Price,
			FullRoomPriceDiscounted: rt.FullRoomPriceDiscounted,
			UrgentBookingPrice:      rt.UrgentBookingPrice,
		})
	}
	return out
}
