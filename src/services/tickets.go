package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/repositories"
)

type TicketsService struct {
	tickets repositories.TicketRepository
}

func NewTicketsService(tickets repositories.TicketRepository) *TicketsService {
	return &TicketsService{tickets: tickets}
}

func (s *TicketsService) GetTicket(ctx context.Context, userID uint) (*models.Ticket, error) {
	ticket, err := s.tickets.FindTicketByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperrors.NotFound()
	}
	return ticket, nil
}

// ListTicketTypes never fails on emptiness; an empty slice is a valid
// listing.
func (s *TicketsService) ListTicketTypes(ctx context.Context) ([]models.TicketType, error) {
	ticketTypes, err := s.tickets.FindTicketTypes(ctx)
	if err != nil {
		return nil, err
	}
	if ticketTypes == nil {
		return []models.TicketType{}, nil
	}
	return ticketTypes, nil
}

func (s *TicketsService) CreateTicket(ctx context.Context, ticketTypeID, userID uint) (*models.Ticket, error) {
	enrollment, err := s.tickets.FindEnrollmentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.NotFound()
	}
	return s.tickets.CreateTicket(ctx, ticketTypeID, enrollment.ID)
}
