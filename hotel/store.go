package hotel

import (
	"fmt"
	"strings"
)

// Store persists rooms and reservations for a ReservationBook. Implementations
// return copies so callers cannot mutate stored state behind the book's back.
type Store interface {
	// InsertRoom adds a room. Returns ErrDuplicateRoom if the number exists.
	InsertRoom(r Room) error
	// GetRoom returns the room with that number or ErrRoomNotFound.
	GetRoom(number int) (*Room, error)
	// GetAllRooms returns every room in insertion order.
	GetAllRooms() ([]*Room, error)
	// ClaimRoom marks res.RoomNumber unavailable and records res in one step.
	// Nothing changes unless both happen.
	ClaimRoom(res *Reservation) error
	// GetReservation returns the reservation with that id or ErrReservationNotFound.
	GetReservation(id int64) (*Reservation, error)
	Close() error
}

// Store kinds accepted by OpenStore.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// NormalizeStoreKind trims and lowercases a store kind; empty means memory.
func NormalizeStoreKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return StoreMemory
	}
	return kind
}

// OpenStore builds the Store named by kind. Both kinds live only as long as
// the process.
func OpenStore(kind string) (Store, error) {
	switch NormalizeStoreKind(kind) {
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreSQLite:
		db, err := NewDatabase()
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, kind)
	}
}

// MemoryStore keeps rooms in a slice and reservations in a map.
type MemoryStore struct {
	rooms        []*Room
	reservations map[int64]*Reservation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reservations: make(map[int64]*Reservation)}
}

func (m *MemoryStore) InsertRoom(r Room) error {
	if m.find(r.Number) != nil {
		return fmt.Errorf("%w: %d", ErrDuplicateRoom, r.Number)
	}
	m.rooms = append(m.rooms, &r)
	return nil
}

func (m *MemoryStore) GetRoom(number int) (*Room, error) {
	r := m.find(number)
	if r == nil {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	cp := *r
	return &cp, nil
}

func (m *MemoryStore) GetAllRooms() ([]*Room, error) {
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		cp := *r
		rooms = append(rooms, &cp)
	}
	return rooms, nil
}

func (m *MemoryStore) ClaimRoom(res *Reservation) error {
	r := m.find(res.RoomNumber)
	if r == nil {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, res.RoomNumber)
	}
	if !r.Available {
		return fmt.Errorf("%w: %d", ErrRoomUnavailable, res.RoomNumber)
	}
	cp := *res
	m.reservations[cp.ID] = &cp
	r.Available = false
	return nil
}

func (m *MemoryStore) GetReservation(id int64) (*Reservation, error) {
	res, ok := m.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrReservationNotFound, id)
	}
	cp := *res
	return &cp, nil
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) find(number int) *Room {
	for _, r := range m.rooms {
		if r.Number == number {
			return r
		}
	}
	return nil
}
