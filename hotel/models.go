package hotel

import "github.com/shopspring/decimal"

// Room is a priced, categorized unit of inventory. Available flips to false
// when a reservation claims the room and never flips back.
type Room struct {
	Number    int             `json:"number"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// Reservation binds a guest and a night count to a room. The room is referenced
// by number only and resolved through the ReservationBook.
type Reservation struct {
	ID         int64           `json:"id"`
	GuestName  string          `json:"guest_name"`
	RoomNumber int             `json:"room_number"`
	Nights     int             `json:"nights"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// RoomOffer is one search hit.
type RoomOffer struct {
	Number int             `json:"number"`
	Price  decimal.Decimal `json:"price"`
}

// PaymentResult reports how a payment compares to a reservation's total cost.
// Shortfall is zero when Paid is true.
type PaymentResult struct {
	ReservationID int64           `json:"reservation_id"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Amount        decimal.Decimal `json:"amount"`
	Shortfall     decimal.Decimal `json:"shortfall"`
	Paid          bool            `json:"paid"`
}
