package boot

import (
	"log"
	"tbs/src/db"
	"tbs/src/lib"
	"tbs/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Enrollment{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Payment{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitBroker() {
	if ch := lib.GetBrokerChannel(); ch == nil {
		log.Println("broker not configured, events disabled")
	}
}
