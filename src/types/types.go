package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type TicketStatus string

const (
	TICKET_RESERVED TicketStatus = "RESERVED"
	TICKET_PAID     TicketStatus = "PAID"
)

type BookingURIParams struct {
	BookingID uint `uri:"bookingId" binding:"required"`
}

type HotelURIParams struct {
	HotelID uint `uri:"hotelId" binding:"required"`
}

// CreateBookingRequestBody leaves roomId unvalidated at the binding layer
// on purpose. The booking service raises its own validation error for a
// missing room id, and the booking routes surface that as 403.
type CreateBookingRequestBody struct {
	RoomID uint `json:"roomId"`
}

type CreateTicketRequestBody struct {
	TicketTypeID uint `json:"ticketTypeId" binding:"required"`
}

type CardData struct {
	Issuer         string `json:"issuer" binding:"required"`
	Number         string `json:"number" binding:"required"`
	Name           string `json:"name" binding:"required"`
	ExpirationDate string `json:"expirationDate" binding:"required,expdate"`
	CVV            string `json:"cvv" binding:"required"`
}

type CreatePaymentRequestBody struct {
	TicketID uint     `json:"ticketId" binding:"required"`
	CardData CardData `json:"cardData" binding:"required"`
}

type PaymentsQuery struct {
	TicketID uint `form:"ticketId"`
}

// Broker event payloads. RequestID correlates the event with the HTTP
// request that produced it.

type BookingCreatedEvent struct {
	RequestID string    `json:"request_id"`
	BookingID uint      `json:"booking_id"`
	RoomID    uint      `json:"room_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentProcessedEvent struct {
	RequestID string    `json:"request_id"`
	PaymentID uint      `json:"payment_id"`
	TicketID  uint      `json:"ticket_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
