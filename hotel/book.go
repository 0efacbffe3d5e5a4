package hotel

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReservationBook owns the room inventory, the reservation ledger, and the
// reservation id counter for one run. Console code talks only to the book.
type ReservationBook struct {
	mu     sync.Mutex
	store  Store
	log    *zap.Logger
	lastID int64
}

// NewReservationBook wraps store. A nil logger disables logging.
func NewReservationBook(store Store, log *zap.Logger) *ReservationBook {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationBook{store: store, log: log}
}

// Close closes the underlying store.
func (b *ReservationBook) Close() error { return b.store.Close() }

// ------------------ Inventory ------------------

// AddRoom adds an available room. Room numbers must be unique.
func (b *ReservationBook) AddRoom(number int, category string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: room %d priced %s", ErrInvalidPrice, number, price)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store.InsertRoom(Room{Number: number, Category: category, Price: price, Available: true}); err != nil {
		return err
	}
	b.log.Debug("room added",
		zap.Int("room", number),
		zap.String("category", category),
		zap.Stringer("price", price))
	return nil
}

// FindRoomByNumber returns the room regardless of availability.
func (b *ReservationBook) FindRoomByNumber(number int) (*Room, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.GetRoom(number)
}

// Rooms returns the whole inventory in the order rooms were added.
func (b *ReservationBook) Rooms() ([]*Room, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.GetAllRooms()
}

// SearchRooms lists available rooms whose category matches, ignoring case.
func (b *ReservationBook) SearchRooms(category string) ([]RoomOffer, error) {
	rooms, err := b.Rooms()
	if err != nil {
		return nil, err
	}
	offers := []RoomOffer{}
	for _, r := range rooms {
		if r.Available && strings.EqualFold(r.Category, category) {
			offers = append(offers, RoomOffer{Number: r.Number, Price: r.Price})
		}
	}
	return offers, nil
}

// ------------------ Reservations ------------------

// MakeReservation claims roomNumber for guestName and returns the new
// reservation id. Ids start at 1 and only advance on success.
func (b *ReservationBook) MakeReservation(guestName string, roomNumber, nights int) (int64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidNights, nights)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	room, err := b.store.GetRoom(roomNumber)
	if err != nil {
		b.log.Info("reservation rejected", zap.Int("room", roomNumber), zap.Error(err))
		return 0, err
	}
	if !room.Available {
		b.log.Info("reservation rejected", zap.Int("room", roomNumber), zap.String("reason", "unavailable"))
		return 0, fmt.Errorf("%w: %d", ErrRoomUnavailable, roomNumber)
	}

	res := &Reservation{
		ID:         b.lastID + 1,
		GuestName:  guestName,
		RoomNumber: room.Number,
		Nights:     nights,
		TotalCost:  room.Price.Mul(decimal.NewFromInt(int64(nights))),
	}
	if err := b.store.ClaimRoom(res); err != nil {
		return 0, err
	}
	b.lastID = res.ID

	b.log.Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int("room", res.RoomNumber),
		zap.Int("nights", res.Nights),
		zap.Stringer("total_cost", res.TotalCost))
	return res.ID, nil
}

// ViewReservation returns a copy of the reservation.
func (b *ReservationBook) ViewReservation(id int64) (*Reservation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.GetReservation(id)
}

// ProcessPayment compares amount with the reservation's total cost. It records
// nothing: every call is judged against the same total.
func (b *ReservationBook) ProcessPayment(id int64, amount decimal.Decimal) (*PaymentResult, error) {
	res, err := b.ViewReservation(id)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{
		ReservationID: res.ID,
		TotalCost:     res.TotalCost,
		Amount:        amount,
		Shortfall:     decimal.Zero,
	}
	if amount.GreaterThanOrEqual(res.TotalCost) {
		result.Paid = true
	} else {
		result.Shortfall = res.TotalCost.Sub(amount)
	}

	b.log.Debug("payment checked",
		zap.Int64("reservation_id", id),
		zap.Stringer("amount", amount),
		zap.Bool("paid", result.Paid))
	return result, nil
}
