package services

import (
	"context"
	"tbs/src/apperrors"
	"tbs/src/models"
	"tbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPayment(t *testing.T) {
	payment := models.Payment{ID: 1, TicketID: 5, Value: 600, CardIssuer: "VISA", CardLastDigits: "4242"}

	t.Run("missing ticketId fails validation", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentRepo{}, &fakeTicketRepo{})

		_, err := svc.GetPayment(context.Background(), 0, 1)
		assertKind(t, err, apperrors.KindValidation)
	})

	t.Run("no payment for the ticket is not found", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentRepo{}, &fakeTicketRepo{})

		_, err := svc.GetPayment(context.Background(), 5, 1)
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("someone else's payment is unauthorized", func(t *testing.T) {
		repo := &fakePaymentRepo{
			payments:      []models.Payment{payment},
			ownerByTicket: map[uint]uint{5: 2},
		}
		svc := NewPaymentsService(repo, &fakeTicketRepo{})

		_, err := svc.GetPayment(context.Background(), 5, 1)
		assertKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("owner reads their payment", func(t *testing.T) {
		repo := &fakePaymentRepo{
			payments:      []models.Payment{payment},
			ownerByTicket: map[uint]uint{5: 1},
		}
		svc := NewPaymentsService(repo, &fakeTicketRepo{})

		got, err := svc.GetPayment(context.Background(), 5, 1)
		assert.Nil(t, err)
		assert.Equal(t, "4242", got.CardLastDigits)
	})
}

func TestCreatePaymentProcess(t *testing.T) {
	newTicketRepo := func(status types.TicketStatus) *fakeTicketRepo {
		return &fakeTicketRepo{
			enrollments: []models.Enrollment{{ID: 1, UserID: 1}},
			tickets:     []models.Ticket{{ID: 5, Status: status, TicketTypeID: 1, EnrollmentID: 1}},
			ticketTypes: []models.TicketType{{ID: 1, Price: 600, IncludesHotel: true}},
		}
	}
	input := CreatePaymentProcessInput{
		TicketID:   5,
		UserID:     1,
		CardIssuer: "VISA",
		CardNumber: "4242424242424242",
	}

	t.Run("ticket owned by someone else is unauthorized", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentRepo{}, newTicketRepo(types.TICKET_RESERVED))
		in := input
		in.UserID = 2

		_, err := svc.CreatePaymentProcess(context.Background(), in)
		assertKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("unknown ticket is unauthorized", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentRepo{}, newTicketRepo(types.TICKET_RESERVED))
		in := input
		in.TicketID = 99

		_, err := svc.CreatePaymentProcess(context.Background(), in)
		assertKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("marks the ticket paid and stores issuer plus last digits only", func(t *testing.T) {
		tickets := newTicketRepo(types.TICKET_RESERVED)
		payments := &fakePaymentRepo{}
		svc := NewPaymentsService(payments, tickets)

		payment, err := svc.CreatePaymentProcess(context.Background(), input)
		assert.Nil(t, err)
		assert.Equal(t, 600, payment.Value)
		assert.Equal(t, "VISA", payment.CardIssuer)
		assert.Equal(t, "4242", payment.CardLastDigits)
		assert.NotContains(t, payment.CardLastDigits, input.CardNumber)

		updated, _ := tickets.FindTicketByUserID(context.Background(), 1)
		assert.Equal(t, types.TICKET_PAID, updated.Status)
	})

	t.Run("second attempt on a paid ticket is rejected", func(t *testing.T) {
		tickets := newTicketRepo(types.TICKET_RESERVED)
		payments := &fakePaymentRepo{}
		svc := NewPaymentsService(payments, tickets)

		_, err := svc.CreatePaymentProcess(context.Background(), input)
		assert.Nil(t, err)

		_, err = svc.CreatePaymentProcess(context.Background(), input)
		assertKind(t, err, apperrors.KindValidation)
		assert.Len(t, payments.payments, 1)
	})
}
