package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/repositories"
	"tbs/src/types"
)

type PaymentsService struct {
	payments repositories.PaymentRepository
	tickets  repositories.TicketRepository
}

func NewPaymentsService(payments repositories.PaymentRepository, tickets repositories.TicketRepository) *PaymentsService {
	return &PaymentsService{payments: payments, tickets: tickets}
}

// GetPayment checks existence before ownership: a valid ticket id paid by
// someone else yields 404, not 401, matching the documented surface.
func (s *PaymentsService) GetPayment(ctx context.Context, ticketID, userID uint) (*models.Payment, error) {
	if ticketID == 0 {
		return nil, apperrors.Validation("query param ticketId is missing")
	}
	payment, err := s.payments.FindPaymentByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound()
	}
	owned, err := s.payments.CountPaymentsForUserTicket(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, apperrors.Unauthorized()
	}
	return payment, nil
}

type CreatePaymentProcessInput struct {
	TicketID   uint
	UserID     uint
	CardIssuer string
	CardNumber string
}

// CreatePaymentProcess marks the user's ticket PAID and records a payment
// priced at the ticket type's price. Only the card issuer and the number's
// last 4 digits are persisted. A second attempt on an already paid ticket
// is rejected rather than re-processed.
func (s *PaymentsService) CreatePaymentProcess(ctx context.Context, in CreatePaymentProcessInput) (*models.Payment, error) {
	ticket, err := s.tickets.FindTicketByIDAndUserID(ctx, in.TicketID, in.UserID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperrors.Unauthorized()
	}
	if ticket.Status == types.TICKET_PAID {
		return nil, apperrors.Validation("ticket is already paid")
	}

	updated, err := s.tickets.UpdateTicketStatus(ctx, in.TicketID, types.TICKET_PAID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound()
	}

	payment := models.Payment{
		TicketID:       in.TicketID,
		Value:          updated.TicketType.Price,
		CardIssuer:     in.CardIssuer,
		CardLastDigits: lastDigits(in.CardNumber, 4),
	}
	if err := s.payments.CreatePayment(ctx, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func lastDigits(number string, n int) string {
	if len(number) <= n {
		return number
	}
	return number[len(number)-n:]
}
