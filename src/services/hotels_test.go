package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hotelAccessTicket(status types.TicketStatus, isRemote, includesHotel bool) models.Ticket {
	return models.Ticket{
		ID:     1,
		Status: status,
		TicketType: models.TicketType{
			ID:            1,
			IsRemote:      isRemote,
			IncludesHotel: includesHotel,
		},
	}
}

func TestGetHotels(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Driven Resort"},
		{ID: 2, Name: "Driven Palace"},
	}

	t.Run("lists hotels for a paid hotel-inclusive ticket", func(t *testing.T) {
		repo := &fakeHotelRepo{
			hotels:      hotels,
			userTickets: map[uint]models.Ticket{1: hotelAccessTicket(types.TICKET_PAID, false, true)},
		}
		svc := NewHotelsService(repo)

		got, err := svc.GetHotels(context.Background(), 1)
		assert.Nil(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no ticket at all is not found", func(t *testing.T) {
		svc := NewHotelsService(&fakeHotelRepo{hotels: hotels, userTickets: map[uint]models.Ticket{}})

		_, err := svc.GetHotels(context.Background(), 1)
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("unpaid, remote or hotel-excluded tickets require payment", func(t *testing.T) {
		cases := map[string]models.Ticket{
			"unpaid":         hotelAccessTicket(types.TICKET_RESERVED, false, true),
			"remote":         hotelAccessTicket(types.TICKET_PAID, true, true),
			"hotel excluded": hotelAccessTicket(types.TICKET_PAID, false, false),
		}
		for name, ticket := range cases {
			repo := &fakeHotelRepo{hotels: hotels, userTickets: map[uint]models.Ticket{1: ticket}}
			svc := NewHotelsService(repo)

			_, err := svc.GetHotels(context.Background(), 1)
			kind, ok := apperrors.KindOf(err)
			assert.True(t, ok, "%s: expected kinded error", name)
			assert.Equalf(t, apperrors.KindPaymentRequired, kind, "%s ticket should require payment", name)
		}
	})

	t.Run("empty hotel list is not found", func(t *testing.T) {
		repo := &fakeHotelRepo{
			userTickets: map[uint]models.Ticket{1: hotelAccessTicket(types.TICKET_PAID, false, true)},
		}
		svc := NewHotelsService(repo)

		_, err := svc.GetHotels(context.Background(), 1)
		assertKind(t, err, apperrors.KindNotFound)
	})
}

func TestGetHotel(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Driven Resort", Rooms: []models.Room{{ID: 10, Name: "101", Capacity: 3, HotelID: 1}}},
	}

	t.Run("returns the hotel with its rooms", func(t *testing.T) {
		repo := &fakeHotelRepo{
			hotels:      hotels,
			userTickets: map[uint]models.Ticket{1: hotelAccessTicket(types.TICKET_PAID, false, true)},
		}
		svc := NewHotelsService(repo)

		hotel, err := svc.GetHotel(context.Background(), 1, 1)
		assert.Nil(t, err)
		assert.Len(t, hotel.Rooms, 1)
	})

	t.Run("guard runs before the hotel lookup", func(t *testing.T) {
		repo := &fakeHotelRepo{
			hotels:      hotels,
			userTickets: map[uint]models.Ticket{1: hotelAccessTicket(types.TICKET_RESERVED, false, true)},
		}
		svc := NewHotelsService(repo)

		_, err := svc.GetHotel(context.Background(), 1, 1)
		assertKind(t, err, apperrors.KindPaymentRequired)
	})

	t.Run("missing hotel is not found", func(t *testing.T) {
		repo := &fakeHotelRepo{
			hotels:      hotels,
			userTickets: map[uint]models.Ticket{1: hotelAccessTicket(types.TICKET_PAID, false, true)},
		}
		svc := NewHotelsService(repo)

		_, err := svc.GetHotel(context.Background(), 42, 1)
		assertKind(t, err, apperrors.KindNotFound)
	})
}
