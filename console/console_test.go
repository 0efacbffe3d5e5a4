package console

import (
	"bytes"
	"strings"
	"testing"

	"hotel-reservation/hotel"
)

func newBook(t *testing.T) *hotel.ReservationBook {
	t.Helper()
	return newBookWithStore(t, hotel.StoreMemory)
}

func newBookWithStore(t *testing.T, kind string) *hotel.ReservationBook {
	t.Helper()
	store, err := hotel.OpenStore(kind)
	if err != nil {
		t.Fatalf("open %s store: %v", kind, err)
	}
	book := hotel.NewReservationBook(store, nil)
	t.Cleanup(func() { book.Close() })
	if err := book.Seed(hotel.DefaultRooms()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return book
}

// run feeds lines to a fresh console and returns everything it printed.
func run(t *testing.T, book *hotel.ReservationBook, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := New(book, in, &out).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func expectContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}
}

func TestConsoleScenario(t *testing.T) {
	for _, kind := range []string{hotel.StoreMemory, hotel.StoreSQLite} {
		t.Run(kind, func(t *testing.T) {
			book := newBookWithStore(t, kind)
			out := run(t, book,
				"2", "Alice", "101", "3",
				"3", "1",
				"2", "Bob", "101", "2",
				"4", "1", "250",
				"4", "1", "300",
				"5",
			)
			expectContains(t, out,
				"Reservation successful! Reservation ID: 1",
				"Reservation ID: 1\nGuest Name: Alice\nRoom Number: 101\nCategory: Standard\nNights: 3\nTotal Cost: $300.00",
				"Room not available for reservation.",
				"Insufficient payment. Amount due: $50.00",
				"Payment successful! Total cost: $300.00",
				"Exiting system. Goodbye!",
			)
		})
	}
}

func TestConsoleVeryLongGuestName(t *testing.T) {
	book := newBook(t)
	name := strings.Repeat("A", 70000)
	out := run(t, book, "2", name, "101", "1", "3", "1", "5")
	expectContains(t, out,
		"Reservation successful! Reservation ID: 1",
		"Room Number: 101",
		"Exiting system. Goodbye!",
	)
	res, err := book.ViewReservation(1)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if res.GuestName != name {
		t.Fatalf("guest name truncated to %d bytes", len(res.GuestName))
	}
}

func TestConsoleLastLineWithoutNewline(t *testing.T) {
	book := newBook(t)
	var out bytes.Buffer
	if err := New(book, strings.NewReader("2\nAlice\n102\n2"), &out).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	expectContains(t, out.String(), "Reservation successful! Reservation ID: 1")
}

func TestConsoleSearch(t *testing.T) {
	book := newBook(t)
	if _, err := book.MakeReservation("Alice", 201, 1); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	out := run(t, book, "1", "deluxe", "1", "Penthouse", "5")
	expectContains(t, out,
		"Available rooms in category: deluxe\nRoom Number: 202, Price: $200.00\n",
		"No available rooms in category: Penthouse",
	)
	if strings.Contains(out, "Room Number: 201") {
		t.Fatalf("reserved room listed:\n%s", out)
	}
}

func TestConsoleInvalidInput(t *testing.T) {
	book := newBook(t)
	out := run(t, book,
		"abc",
		"9",
		"2", "Alice", "one-oh-one",
		"2", "Alice", "101", "three",
		"2", "Alice", "101", "0",
		"3", "x",
		"4", "1.5",
		"4", "1", "lots",
		"5",
	)
	expectContains(t, out,
		"Invalid input. Please enter a valid number.",
		"Invalid choice. Please try again.",
		"Invalid room number. Please enter a valid number.",
		"Invalid number of nights. Please enter a valid number.",
		"Number of nights must be positive.",
		"Invalid reservation ID. Please enter a valid number.",
		"Invalid payment amount. Please enter a valid number.",
	)
	// Nothing above created a reservation.
	if _, err := book.ViewReservation(1); err == nil {
		t.Fatalf("invalid input created a reservation")
	}
	room, _ := book.FindRoomByNumber(101)
	if !room.Available {
		t.Fatalf("invalid input claimed room 101")
	}
}

func TestConsoleNotFound(t *testing.T) {
	book := newBook(t)
	out := run(t, book,
		"3", "7",
		"4", "7", "100",
		"2", "Zed", "999", "1",
		"5",
	)
	expectContains(t, out,
		"Reservation ID not found.",
		"Invalid reservation ID.",
		"Room not available for reservation.",
	)
}

func TestConsoleGuestNameWithSpaces(t *testing.T) {
	book := newBook(t)
	run(t, book, "2", "Mary Ann Smith", "301", "2", "5")
	res, err := book.ViewReservation(1)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if res.GuestName != "Mary Ann Smith" || res.RoomNumber != 301 {
		t.Fatalf("unexpected reservation: %+v", res)
	}
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	book := newBook(t)
	var out bytes.Buffer
	// Input ends halfway through a reservation prompt.
	if err := New(book, strings.NewReader("2\nAlice\n"), &out).Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "Goodbye") {
		t.Fatalf("end of input should not print the exit message")
	}
	if _, err := book.ViewReservation(1); err == nil {
		t.Fatalf("partial input created a reservation")
	}
}
