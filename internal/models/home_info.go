package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomSize string

const (
	RoomSizeSmall  RoomSize = "small"
	RoomSizeMedium RoomSize = "medium"
	RoomSizeLarge  RoomSize = "large"
)

// ParseRoomSize maps a wire string onto the closed RoomSize set.
func ParseRoomSize(s string) (RoomSize, error) {
	switch s {
	case string(RoomSizeSmall):
		return RoomSizeSmall, nil
	case string(RoomSizeMedium):
		return RoomSizeMedium, nil
	case string(RoomSizeLarge):
		return RoomSizeLarge, nil
	default:
		return "", fmt.Errorf("invalid room size %q: %w", s, ErrConversion)
	}
}

// HomeInfo is the one-per-user home profile. The unique index on rwuser_id
// is what actually enforces at-most-one under concurrent writes; the
// handler path only does read-then-write.
type HomeInfo struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BathroomCount   uint      `gorm:"column:bathroom_count;not null" json:"bathroom_count"`
	BedroomCount    uint      `gorm:"column:bedroom_count;not null" json:"bedroom_count"`
	KitchenSize     RoomSize  `gorm:"column:kitchen_size;type:varchar(10);not null" json:"kitchen_size"`
	OtherRoomsCount uint      `gorm:"column:other_rooms_count;not null" json:"other_rooms_count"`
	SquareFootage   uint      `gorm:"column:square_footage;not null" json:"square_footage"`
	UserID          uuid.UUID `gorm:"column:rwuser_id;type:uuid;uniqueIndex;not null" json:"rwuser_id"`
}

func (HomeInfo) TableName() string { return "home_infos" }

// UpsertHomeInfo creates the user's home info on first call and overwrites
// it in place on later calls. The raw kitchen size string is validated
// before anything is written.
func UpsertHomeInfo(db *gorm.DB, user *User, bathroomCount, bedroomCount uint, rawKitchenSize string, otherRoomsCount, squareFootage uint) (*HomeInfo, error) {
	if user.ID == uuid.Nil {
		return nil, ErrUnsaved
	}
	size, err := ParseRoomSize(rawKitchenSize)
	if err != nil {
		return nil, err
	}

	existing, err := user.HomeInfo(db)
	if err == gorm.ErrRecordNotFound {
		info := &HomeInfo{
			BathroomCount:   bathroomCount,
			BedroomCount:    bedroomCount,
			KitchenSize:     size,
			OtherRoomsCount: otherRoomsCount,
			SquareFootage:   squareFootage,
			UserID:          user.ID,
		}
		if err := db.Create(info).Error; err != nil {
			return nil, err
		}
		return info, nil
	}
	if err != nil {
		return nil, err
	}

	existing.BathroomCount = bathroomCount
	existing.BedroomCount = bedroomCount
	existing.KitchenSize = size
	existing.OtherRoomsCount = otherRoomsCount
	existing.SquareFootage = squareFootage
	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
