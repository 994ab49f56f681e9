package repositories

import (
	"context"
	"tbs/src/models"
	"tbs/src/types"

	"gorm.io/gorm"
)

type TicketRepository interface {
	// FindTicketByUserID resolves the user's ticket through their
	// enrollment, type included. Nil when none exists.
	FindTicketByUserID(ctx context.Context, userID uint) (*models.Ticket, error)
	// FindTicketByIDAndUserID returns the ticket only when it both exists
	// and belongs to the user. Nil otherwise.
	FindTicketByIDAndUserID(ctx context.Context, ticketID, userID uint) (*models.Ticket, error)
	FindEnrollmentByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
	FindTicketTypes(ctx context.Context) ([]models.TicketType, error)
	CreateTicket(ctx context.Context, ticketTypeID, enrollmentID uint) (*models.Ticket, error)
	// UpdateTicketStatus returns the updated ticket with its type.
	UpdateTicketStatus(ctx context.Context, ticketID uint, status types.TicketStatus) (*models.Ticket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) FindTicketByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	return findTicketForUser(ctx, r.db, userID)
}

func (r *ticketRepository) FindTicketByIDAndUserID(ctx context.Context, ticketID, userID uint) (*models.Ticket, error) {
	ticket, err := findTicketForUser(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	if ticket == nil || ticket.ID != ticketID {
		return nil, nil
	}
	return ticket, nil
}

func (r *ticketRepository) FindEnrollmentByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	res := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where(&models.Enrollment{UserID: userID}).
		Limit(1).
		Find(&enrollment)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &enrollment, nil
}

func (r *ticketRepository) FindTicketTypes(ctx context.Context) ([]models.TicketType, error) {
	var ticketTypes []models.TicketType
	if err := r.db.WithContext(ctx).Find(&ticketTypes).Error; err != nil {
		return nil, err
	}
	return ticketTypes, nil
}

func (r *ticketRepository) CreateTicket(ctx context.Context, ticketTypeID, enrollmentID uint) (*models.Ticket, error) {
	ticket := models.Ticket{
		Status:       types.TICKET_RESERVED,
		TicketTypeID: ticketTypeID,
		EnrollmentID: enrollmentID,
	}
	if err := r.db.WithContext(ctx).Create(&ticket).Error; err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where(&models.Ticket{ID: ticket.ID}).
		Preload("TicketType").
		Limit(1).
		Find(&ticket)
	if res.Error != nil {
		return nil, res.Error
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateTicketStatus(ctx context.Context, ticketID uint, status types.TicketStatus) (*models.Ticket, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where(&models.Ticket{ID: ticketID}).
		Update("status", status).
		Error
	if err != nil {
		return nil, err
	}
	var ticket models.Ticket
	res := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where(&models.Ticket{ID: ticketID}).
		Preload("TicketType").
		Limit(1).
		Find(&ticket)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &ticket, nil
}
