package models

import "tbs/src/types"

type Hotel struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`

	Rooms []Room `json:"Rooms,omitempty"`

	types.Timestamps
}

type Room struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name,omitempty"`
	Capacity int    `json:"capacity"`
	HotelID  uint   `json:"hotelId,omitempty"`

	Hotel    *Hotel    `json:"hotel,omitempty"`
	Bookings []Booking `json:"Bookings,omitempty"`

	types.Timestamps
}
