package models

import "tbs/src/types"

type Booking struct {
	ID     uint `gorm:"primarykey" json:"id"`
	RoomID uint `json:"room_id,omitempty"`
	UserID uint `json:"user_id,omitempty"`

	Room *Room `gorm:"foreignKey:room_id" json:"Room,omitempty"`
	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
