package models

import "tbs/src/types"

// Payment keeps card issuer and last 4 digits only. The full card number
// never reaches the store.
type Payment struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	TicketID       uint   `gorm:"uniqueIndex" json:"ticketId,omitempty"`
	Value          int    `json:"value"`
	CardIssuer     string `json:"cardIssuer,omitempty"`
	CardLastDigits string `json:"cardLastDigits,omitempty"`

	Ticket *Ticket `json:"ticket,omitempty"`

	types.Timestamps
}
