package repositories

import (
	"context"
	"encoding/json"
	"log"
	"tbs/src/config"
	"tbs/src/models"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HotelRepository interface {
	FindHotels(ctx context.Context) ([]models.Hotel, error)
	// FindHotelWithRooms returns nil when the hotel does not exist.
	FindHotelWithRooms(ctx context.Context, hotelID uint) (*models.Hotel, error)
	// FindUserTicketWithType resolves the caller's ticket through their
	// enrollment, type included. Nil when the user holds no ticket.
	FindUserTicketWithType(ctx context.Context, userID uint) (*models.Ticket, error)
}

type hotelRepository struct {
	db *gorm.DB
	rd *redis.Client
}

// NewHotelRepository takes an optional redis client; a nil client
// disables the hotel-list cache.
func NewHotelRepository(db *gorm.DB, rd *redis.Client) HotelRepository {
	return &hotelRepository{db: db, rd: rd}
}

const hotelsCacheKey = "hotels"

// FindHotels serves the hotel list from the cache when possible. The list
// changes rarely; a short TTL bounds staleness.
func (r *hotelRepository) FindHotels(ctx context.Context) ([]models.Hotel, error) {
	if r.rd != nil {
		cached, err := r.rd.Get(ctx, hotelsCacheKey).Result()
		if err == nil {
			var hotels []models.Hotel
			if err := json.Unmarshal([]byte(cached), &hotels); err == nil {
				return hotels, nil
			}
		} else if err != redis.Nil {
			log.Printf("[redis] Error reading hotels cache: %s\n", err.Error())
		}
	}
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	if r.rd != nil && len(hotels) > 0 {
		if body, err := json.Marshal(hotels); err == nil {
			if err := r.rd.Set(ctx, hotelsCacheKey, body, config.HotelsCacheTTLSeconds*time.Second).Err(); err != nil {
				log.Printf("[redis] Error updating hotels cache: %s\n", err.Error())
			}
		}
	}
	return hotels, nil
}

func (r *hotelRepository) FindHotelWithRooms(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	res := r.db.WithContext(ctx).
		Model(&models.Hotel{}).
		Where(&models.Hotel{ID: hotelID}).
		Preload("Rooms").
		Limit(1).
		Find(&hotel)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &hotel, nil
}

func (r *hotelRepository) FindUserTicketWithType(ctx context.Context, userID uint) (*models.Ticket, error) {
	return findTicketForUser(ctx, r.db, userID)
}

// findTicketForUser is shared with the ticket repository: enrollment
// lookup first, then the ticket with its type.
func findTicketForUser(ctx context.Context, db *gorm.DB, userID uint) (*models.Ticket, error) {
	var enrollment models.Enrollment
	res := db.WithContext(ctx).
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
	var ticket models.Ticket
	res = db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where(&models.Ticket{EnrollmentID: enrollment.ID}).
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
