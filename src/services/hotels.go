package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/repositories"
	"tbs/src/types"
)

type HotelsService struct {
	hotels repositories.HotelRepository
}

func NewHotelsService(hotels repositories.HotelRepository) *HotelsService {
	return &HotelsService{hotels: hotels}
}

// verifyHotel gates every hotel read: the caller needs a paid, in-person,
// hotel-inclusive ticket before seeing any hotel data.
func (s *HotelsService) verifyHotel(ctx context.Context, userID uint) error {
	ticket, err := s.hotels.FindUserTicketWithType(ctx, userID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperrors.NotFound()
	}
	notPaid := ticket.Status != types.TICKET_PAID
	isRemote := ticket.TicketType.IsRemote
	notIncludesHotel := !ticket.TicketType.IncludesHotel
	if notPaid || isRemote || notIncludesHotel {
		return apperrors.PaymentRequired()
	}
	return nil
}

func (s *HotelsService) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := s.verifyHotel(ctx, userID); err != nil {
		return nil, err
	}
	hotels, err := s.hotels.FindHotels(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, apperrors.NotFound()
	}
	return hotels, nil
}

func (s *HotelsService) GetHotel(ctx context.Context, hotelID, userID uint) (*models.Hotel, error) {
	if err := s.verifyHotel(ctx, userID); err != nil {
		return nil, err
	}
	hotel, err := s.hotels.FindHotelWithRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperrors.NotFound()
	}
	return hotel, nil
}
