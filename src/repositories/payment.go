package repositories

import (
	"context"
	"tbs/src/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	// FindPaymentByTicketID returns nil when no payment exists for the
	// ticket.
	FindPaymentByTicketID(ctx context.Context, ticketID uint) (*models.Payment, error)
	// CountPaymentsForUserTicket counts payments on the ticket that belong
	// to the user through their enrollment. Zero means the caller does not
	// own the ticket being queried.
	CountPaymentsForUserTicket(ctx context.Context, ticketID, userID uint) (int64, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) FindPaymentByTicketID(ctx context.Context, ticketID uint) (*models.Payment, error) {
	var payment models.Payment
	res := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where(&models.Payment{TicketID: ticketID}).
		Limit(1).
		Find(&payment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &payment, nil
}

func (r *paymentRepository) CountPaymentsForUserTicket(ctx context.Context, ticketID, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Joins("JOIN tickets ON tickets.id = payments.ticket_id").
		Joins("JOIN enrollments ON enrollments.id = tickets.enrollment_id").
		Where("payments.ticket_id = ? AND enrollments.user_id = ?", ticketID, userID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}
