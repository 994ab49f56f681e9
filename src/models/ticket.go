package models

import (
	"database/sql/driver"
	"tbs/src/types"
)

type TicketStatus types.TicketStatus

func (self *TicketStatus) Scan(value interface{}) error {
	*self = TicketStatus(value.([]byte))
	return nil
}

func (self TicketStatus) Value() (driver.Value, error) {
	return string(self), nil
}

type Ticket struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	Status       types.TicketStatus `gorm:"default:'RESERVED'" json:"status,omitempty"`
	TicketTypeID uint               `json:"ticketTypeId,omitempty"`
	EnrollmentID uint               `gorm:"uniqueIndex" json:"enrollmentId,omitempty"`

	TicketType TicketType  `json:"TicketType,omitempty"`
	Enrollment *Enrollment `json:"Enrollment,omitempty"`

	types.Timestamps
}

// TicketType is a purchasable category: remote or in-person, with or
// without an included hotel, at a fixed price.
type TicketType struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	Name          string `json:"name,omitempty"`
	Price         int    `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`

	types.Timestamps
}
