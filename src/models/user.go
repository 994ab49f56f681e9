package models

import "tbs/src/types"

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Email string `gorm:"uniqueIndex" json:"email,omitempty"`

	Enrollment *Enrollment `json:"enrollment,omitempty"`

	types.Timestamps
}
