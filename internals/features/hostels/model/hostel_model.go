package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	HostelForBoys  = "BOYS"
	HostelForGirls = "GIRLS"
)

// HostelModel represents one listed building. Room inventory lives in
// the RoomTypes JSONB document; AverageRating/ReviewCount are derived
// from reviews and recomputed on every review write.
type HostelModel struct {
	ID              uuid.UUID                           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ManagerID       uuid.UUID                           `gorm:"type:uuid;not null;index" json:"manager_id"`
	HostelName      string                              `gorm:"size:120;not null" json:"hostel_name"`
	City            string                              `gorm:"size:80;not null;index" json:"city"`
	Address         string                              `gorm:"size:255;not null" json:"address"`
	NearbyLocations pq.StringArray                      `gorm:"type:text[]" json:"nearby_locations"`
	HostelFor       string                              `gorm:"type:varchar(10);not null" json:"hostel_for"`
	RoomTypes       datatypes.JSONType[RoomTypeList]    `gorm:"not null" json:"room_types"`
	Facilities      datatypes.JSON                      `json:"facilities"`
	RoomImages      pq.StringArray                      `gorm:"type:text[]" json:"room_images"`
	Rules           string                              `gorm:"type:text" json:"rules"`
	SEOKeywords     pq.StringArray                      `gorm:"type:text[]" json:"seo_keywords"`
	IsActive        bool                                `gorm:"not null;default:true;index" json:"is_active"`
	AverageRating   float64                             `gorm:"not null;default:0" json:"average_rating"`
	ReviewCount     int                                 `gorm:"not null;default:0" json:"review_count"`
	CreatedAt       time.Time                           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HostelModel) TableName() string {
	return "hostels"
}

// Rooms unwraps the JSONB document.
func (h *HostelModel) Rooms() RoomTypeList {
	return h.RoomTypes.Data()
}

// SetRooms wraps the document back for persistence.
func (h *HostelModel) SetRooms(l RoomTypeList) {
	h.RoomTypes = datatypes.NewJSONType(l)
}
