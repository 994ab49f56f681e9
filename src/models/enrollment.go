package models

import "tbs/src/types"

// Enrollment is a user's one-time registration record. Exactly one per
// user; ticket purchase is gated on its existence.
type Enrollment struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id,omitempty"`

	User   *User   `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Ticket *Ticket `json:"ticket,omitempty"`

	types.Timestamps
}
