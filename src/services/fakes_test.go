package services

import (
	"context"
	"tbs/src/models"
	"tbs/src/repositories"
	"tbs/src/types"
)

// In-memory repository fakes. They honor the same nil-when-absent
// contract as the gorm implementations.

type fakeBookingRepo struct {
	bookings []models.Booking
	rooms    []models.Room
	nextID   uint
	txCalls  int
}

func newFakeBookingRepo(rooms []models.Room, bookings []models.Booking) *fakeBookingRepo {
	next := uint(1)
	for _, b := range bookings {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return &fakeBookingRepo{rooms: rooms, bookings: bookings, nextID: next}
}

func (f *fakeBookingRepo) FindBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].UserID == userID {
			booking := f.bookings[i]
			for j := range f.rooms {
				if f.rooms[j].ID == booking.RoomID {
					room := f.rooms[j]
					booking.Room = &room
					break
				}
			}
			return &booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindRoomWithBookings(ctx context.Context, roomID uint) (*models.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].ID == roomID {
			room := f.rooms[i]
			room.Bookings = nil
			for _, b := range f.bookings {
				if b.RoomID == roomID {
					room.Bookings = append(room.Bookings, b)
				}
			}
			return &room, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, roomID, userID uint) (uint, error) {
	booking := models.Booking{ID: f.nextID, RoomID: roomID, UserID: userID}
	f.nextID++
	f.bookings = append(f.bookings, booking)
	return booking.ID, nil
}

func (f *fakeBookingRepo) UpdateBookingRoom(ctx context.Context, bookingID, roomID uint) error {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].RoomID = roomID
		}
	}
	return nil
}

func (f *fakeBookingRepo) InTx(ctx context.Context, fn func(repositories.BookingRepository) error) error {
	f.txCalls++
	return fn(f)
}

type fakeTicketRepo struct {
	enrollments []models.Enrollment
	tickets     []models.Ticket
	ticketTypes []models.TicketType
	nextID      uint
}

func (f *fakeTicketRepo) typeByID(id uint) models.TicketType {
	for _, tt := range f.ticketTypes {
		if tt.ID == id {
			return tt
		}
	}
	return models.TicketType{}
}

func (f *fakeTicketRepo) FindTicketByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	enrollment, _ := f.FindEnrollmentByUserID(ctx, userID)
	if enrollment == nil {
		return nil, nil
	}
	for i := range f.tickets {
		if f.tickets[i].EnrollmentID == enrollment.ID {
			ticket := f.tickets[i]
			ticket.TicketType = f.typeByID(ticket.TicketTypeID)
			return &ticket, nil
		}
	}
	return nil, nil
}

func (f *fakeTicketRepo) FindTicketByIDAndUserID(ctx context.Context, ticketID, userID uint) (*models.Ticket, error) {
	ticket, err := f.FindTicketByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ticket == nil || ticket.ID != ticketID {
		return nil, nil
	}
	return ticket, nil
}

func (f *fakeTicketRepo) FindEnrollmentByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	for i := range f.enrollments {
		if f.enrollments[i].UserID == userID {
			enrollment := f.enrollments[i]
			return &enrollment, nil
		}
	}
	return nil, nil
}

func (f *fakeTicketRepo) FindTicketTypes(ctx context.Context) ([]models.TicketType, error) {
	return f.ticketTypes, nil
}

func (f *fakeTicketRepo) CreateTicket(ctx context.Context, ticketTypeID, enrollmentID uint) (*models.Ticket, error) {
	if f.nextID == 0 {
		f.nextID = uint(len(f.tickets)) + 1
	}
	ticket := models.Ticket{
		ID:           f.nextID,
		Status:       types.TICKET_RESERVED,
		TicketTypeID: ticketTypeID,
		EnrollmentID: enrollmentID,
		TicketType:   f.typeByID(ticketTypeID),
	}
	f.nextID++
	f.tickets = append(f.tickets, ticket)
	return &ticket, nil
}

func (f *fakeTicketRepo) UpdateTicketStatus(ctx context.Context, ticketID uint, status types.TicketStatus) (*models.Ticket, error) {
	for i := range f.tickets {
		if f.tickets[i].ID == ticketID {
			f.tickets[i].Status = status
			ticket := f.tickets[i]
			ticket.TicketType = f.typeByID(ticket.TicketTypeID)
			return &ticket, nil
		}
	}
	return nil, nil
}

type fakeHotelRepo struct {
	hotels      []models.Hotel
	userTickets map[uint]models.Ticket
}

func (f *fakeHotelRepo) FindHotels(ctx context.Context) ([]models.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeHotelRepo) FindHotelWithRooms(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	for i := range f.hotels {
		if f.hotels[i].ID == hotelID {
			hotel := f.hotels[i]
			return &hotel, nil
		}
	}
	return nil, nil
}

func (f *fakeHotelRepo) FindUserTicketWithType(ctx context.Context, userID uint) (*models.Ticket, error) {
	ticket, ok := f.userTickets[userID]
	if !ok {
		return nil, nil
	}
	return &ticket, nil
}

type fakePaymentRepo struct {
	payments      []models.Payment
	ownerByTicket map[uint]uint
	nextID        uint
}

func (f *fakePaymentRepo) FindPaymentByTicketID(ctx context.Context, ticketID uint) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].TicketID == ticketID {
			payment := f.payments[i]
			return &payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) CountPaymentsForUserTicket(ctx context.Context, ticketID, userID uint) (int64, error) {
	payment, _ := f.FindPaymentByTicketID(ctx, ticketID)
	if payment == nil {
		return 0, nil
	}
	if f.ownerByTicket[ticketID] != userID {
		return 0, nil
	}
	return 1, nil
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if f.nextID == 0 {
		f.nextID = uint(len(f.payments)) + 1
	}
	payment.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *payment)
	return nil
}
