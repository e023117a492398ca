package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/hostels/dto"
	"hostelshub_backend/internals/features/hostels/model"
	userService "hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

func CreateHostel(db *gorm.DB, userID uuid.UUID, req dto.CreateHostelRequest) (*model.HostelModel, error) {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if !manager.Verified {
		return nil, helper.NewForbidden("Manager not verified")
	}

	rooms := dto.ToRoomTypeList(req.RoomTypes)
	rooms.InitAvailability()
	if err := rooms.Validate(); err != nil {
		return nil, helper.NewValidation(err.Error())
	}

	hostel := model.HostelModel{
		ManagerID:       manager.ID,
		HostelName:      req.HostelName,
		City:            req.City,
		Address:         req.Address,
		NearbyLocations: pq.StringArray(req.NearbyLocations),
		HostelFor:       req.HostelFor,
		Facilities:      req.Facilities,
		RoomImages:      pq.StringArray(req.RoomImages),
		Rules:           req.Rules,
		SEOKeywords:     pq.StringArray(req.SEOKeywords),
		IsActive:        true,
	}
	hostel.SetRooms(rooms)

	if err := db.Create(&hostel).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &hostel, nil
}

// ownedHostel loads a hostel and checks the manager owns it.
func ownedHostel(db *gorm.DB, managerID, hostelID uuid.UUID) (*model.HostelModel, error) {
	var hostel model.HostelModel
	if err := db.First(&hostel, "id = ?", hostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}
	if hostel.ManagerID != managerID {
		return nil, helper.NewForbidden("Not authorized for this hostel")
	}
	return &hostel, nil
}

func UpdateHostel(db *gorm.DB, userID, hostelID uuid.UUID, req dto.UpdateHostelRequest) (*model.HostelModel, error) {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	hostel, err := ownedHostel(db, manager.ID, hostelID)
	if err != nil {
		return nil, err
	}

	if req.HostelName != nil {
		hostel.HostelName = *req.HostelName
	}
	if req.City != nil {
		hostel.City = *req.City
	}
	if req.Address != nil {
		hostel.Address = *req.Address
	}
	if req.NearbyLocations != nil {
		hostel.NearbyLocations = pq.StringArray(req.NearbyLocations)
	}
	if req.HostelFor != nil {
		hostel.HostelFor = *req.HostelFor
	}
	if req.Facilities != nil {
		hostel.Facilities = req.Facilities
	}
	if req.RoomImages != nil {
		hostel.RoomImages = pq.StringArray(req.RoomImages)
	}
	if req.Rules != nil {
		hostel.Rules = *req.Rules
	}
	if req.SEOKeywords != nil {
		hostel.SEOKeywords = pq.StringArray(req.SEOKeywords)
	}
	if req.IsActive != nil {
		hostel.IsActive = *req.IsActive
	}

	if req.RoomTypes != nil {
		// Capacity changes shift availability by the diff, clamped.
		merged := hostel.Rooms().ApplyUpdate(dto.ToRoomTypeList(req.RoomTypes))
		if err := merged.Validate(); err != nil {
			return nil, helper.NewValidation(err.Error())
		}
		hostel.SetRooms(merged)
	}

	if err := db.Save(hostel).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return hostel, nil
}

func DeleteHostel(db *gorm.DB, userID, hostelID uuid.UUID) error {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return err
	}
	hostel, err := ownedHostel(db, manager.ID, hostelID)
	if err != nil {
		return err
	}
	if err := db.Delete(hostel).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

func MyHostels(db *gorm.DB, userID uuid.UUID) ([]model.HostelModel, error) {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	var hostels []model.HostelModel
	if err := db.
		Where("manager_id = ?", manager.ID).
		Order("created_at DESC").
		Find(&hostels).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return hostels, nil
}

// SearchHostels filters active hostels. City/nearby/hostel_for run in
// SQL; room-type availability and price range are applied against the
// JSONB document in memory, matching how the inventory is stored.
func SearchHostels(db *gorm.DB, q dto.SearchHostelsQuery) ([]model.HostelModel, error) {
	tx := db.Model(&model.HostelModel{}).Where("is_active = ?", true)

	if q.City != "" {
		tx = tx.Where("city ILIKE ?", "%"+strings.TrimSpace(q.City)+"%")
	}
	if q.NearbyLocation != "" {
		tx = tx.Where("? = ANY(nearby_locations)", q.NearbyLocation)
	}
	if q.HostelFor != "" {
		tx = tx.Where("hostel_for = ?", q.HostelFor)
	}

	var hostels []model.HostelModel
	if err := tx.Order("average_rating DESC").Find(&hostels).Error; err != nil {
		return nil, helper.NewInternal(err)
	}

	filtered := hostels[:0]
	for _, h := range hostels {
		rooms := h.Rooms()
		if q.RoomType != "" {
			rt := rooms.Find(q.RoomType)
			if rt == nil || rt.AvailableRooms <= 0 {
				continue
			}
		}
		if q.MinPrice != nil || q.MaxPrice != nil {
			if !anyPriceInRange(rooms, q.MinPrice, q.MaxPrice) {
				continue
			}
		}
		filtered = append(filtered, h)
	}
	return filtered, nil
}

func anyPriceInRange(rooms model.RoomTypeList, min, max *float64) bool {
	for _, rt := range rooms {
		if min != nil && rt.Price < *min {
			continue
		}
		if max != nil && rt.Price > *max {
			continue
		}
		return true
	}
	return false
}

func HostelByID(db *gorm.DB, id uuid.UUID) (*model.HostelModel, error) {
	var hostel model.HostelModel
	if err := db.First(&hostel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}
	return &hostel, nil
}

func AllHostels(db *gorm.DB) ([]model.HostelModel, error) {
	var hostels []model.HostelModel
	if err := db.Order("created_at DESC").Find(&hostels).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return hostels, nil
}

/* =======================================================================
   Room-inventory bookkeeping

   AdjustRoomAvailability is the single write path for available-room
   counters. Callers run it inside the transaction that carries the
   booking state change so the read-modify-write of the JSONB document
   is serialized per approval.
======================================================================= */

func AdjustRoomAvailability(tx *gorm.DB, hostelID uuid.UUID, roomType string, delta int) error {
	var hostel model.HostelModel
	if err := tx.First(&hostel, "id = ?", hostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewNotFound("Hostel not found")
		}
		return helper.NewInternal(err)
	}

	rooms := hostel.Rooms()
	if !rooms.Adjust(roomType, delta) {
		return helper.NewNotFound("Room type not available in this hostel")
	}
	hostel.SetRooms(rooms)

	if err := tx.Model(&model.HostelModel{}).
		Where("id = ?", hostelID).
		Update("room_types", hostel.RoomTypes).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}
