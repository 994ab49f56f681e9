// Package services holds the guard-chain validation rules for bookings,
// hotels, payments and tickets. Each service depends only on repository
// interfaces and raises apperrors kinds; HTTP translation happens in the
// handlers.
package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/repositories"
	"tbs/src/types"
)

type BookingService struct {
	bookings repositories.BookingRepository
	tickets  repositories.TicketRepository
}

func NewBookingService(bookings repositories.BookingRepository, tickets repositories.TicketRepository) *BookingService {
	return &BookingService{bookings: bookings, tickets: tickets}
}

func (s *BookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindBookingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound()
	}
	return booking, nil
}

// CreateBooking books a room slot for the user. Eligibility requires a
// paid, in-person, hotel-inclusive ticket; any one failing condition
// blocks the booking with the same opaque forbidden error. The room
// lookup, capacity check and insert share one serializable transaction.
func (s *BookingService) CreateBooking(ctx context.Context, roomID, userID uint) (uint, error) {
	if roomID == 0 {
		return 0, apperrors.Validation("body param roomId is missing")
	}

	ticket, err := s.tickets.FindTicketByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if ticket == nil {
		return 0, apperrors.NotFound()
	}
	isRemoteTicket := ticket.TicketType.IsRemote
	notPaidTicket := ticket.Status == types.TICKET_RESERVED
	notIncludesHotel := !ticket.TicketType.IncludesHotel
	if isRemoteTicket || notPaidTicket || notIncludesHotel {
		return 0, apperrors.Forbidden()
	}

	var bookingID uint
	err = s.bookings.InTx(ctx, func(tx repositories.BookingRepository) error {
		room, err := tx.FindRoomWithBookings(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperrors.NotFound()
		}
		if room.Capacity == len(room.Bookings) {
			return apperrors.NoVacancies()
		}
		id, err := tx.CreateBooking(ctx, roomID, userID)
		if err != nil {
			return err
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// UpdateBooking moves the caller's booking to another room. The caller
// may only touch their own booking; the target room is checked for
// capacity the same way CreateBooking does.
func (s *BookingService) UpdateBooking(ctx context.Context, roomID, bookingID, userID uint) (uint, error) {
	if roomID == 0 {
		return 0, apperrors.Validation("body param roomId is missing")
	}

	existing, err := s.bookings.FindBookingByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, apperrors.NoExistingBooking()
	}
	if existing.ID != bookingID {
		return 0, apperrors.Unauthorized()
	}

	err = s.bookings.InTx(ctx, func(tx repositories.BookingRepository) error {
		room, err := tx.FindRoomWithBookings(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperrors.NotFound()
		}
		if room.Capacity == len(room.Bookings) {
			return apperrors.NoVacancies()
		}
		return tx.UpdateBookingRoom(ctx, bookingID, roomID)
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}
