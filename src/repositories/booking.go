// Package repositories wraps the store queries each service runs. The
// interfaces are what services depend on; the gorm implementations are
// constructed once in main and injected.
package repositories

import (
	"context"
	"database/sql"
	"tbs/src/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	// FindBookingByUserID returns the user's booking with its room, or
	// nil when the user has none.
	FindBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	// FindRoomWithBookings returns the room with its current bookings
	// loaded, or nil when the room does not exist.
	FindRoomWithBookings(ctx context.Context, roomID uint) (*models.Room, error)
	CreateBooking(ctx context.Context, roomID, userID uint) (uint, error)
	UpdateBookingRoom(ctx context.Context, bookingID, roomID uint) error
	// InTx runs fn against a transaction-bound repository at serializable
	// isolation. The room capacity check and the subsequent insert must
	// share one transaction or two callers can both take the last slot.
	InTx(ctx context.Context, fn func(BookingRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userID}).
		Preload("Room").
		Limit(1).
		Find(&booking)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingRepository) FindRoomWithBookings(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	res := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where(&models.Room{ID: roomID}).
		Preload("Bookings").
		Limit(1).
		Find(&room)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &room, nil
}

func (r *bookingRepository) CreateBooking(ctx context.Context, roomID, userID uint) (uint, error) {
	booking := models.Booking{
		RoomID: roomID,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return 0, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) UpdateBookingRoom(ctx context.Context, bookingID, roomID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingID}).
		Update("room_id", roomID).
		Error
}

func (r *bookingRepository) InTx(ctx context.Context, fn func(BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
