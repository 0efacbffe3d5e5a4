// Package console is the interactive text front end for a ReservationBook.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel-reservation/hotel"

	"github.com/shopspring/decimal"
)

// errEOF marks the end of input in the middle of a prompt.
var errEOF = errors.New("end of input")

// Console reads menu choices line by line and dispatches them to the book.
type Console struct {
	book *hotel.ReservationBook
	in   *bufio.Reader
	out  io.Writer
}

func New(book *hotel.ReservationBook, in io.Reader, out io.Writer) *Console {
	return &Console{book: book, in: bufio.NewReader(in), out: out}
}

// Run shows the menu until the user picks Exit or input runs out.
func (c *Console) Run() error {
	for {
		c.printMenu()
		line, err := c.readLine("Enter choice: ")
		if err != nil {
			return c.finish(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			c.println("Invalid input. Please enter a valid number.")
			continue
		}

		switch choice {
		case 1:
			err = c.handleSearch()
		case 2:
			err = c.handleReserve()
		case 3:
			err = c.handleView()
		case 4:
			err = c.handlePayment()
		case 5:
			c.println("Exiting system. Goodbye!")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) printMenu() {
	c.println()
	c.println("Hotel Reservation System")
	c.println("1. Search Available Rooms")
	c.println("2. Make Reservation")
	c.println("3. View Reservation Details")
	c.println("4. Process Payment")
	c.println("5. Exit")
}

func (c *Console) handleSearch() error {
	category, err := c.readLine("Enter room category (Standard/Deluxe/Suite): ")
	if err != nil {
		return err
	}

	offers, err := c.book.SearchRooms(category)
	if err != nil {
		c.printf("Error searching rooms: %v\n", err)
		return nil
	}
	if len(offers) == 0 {
		c.printf("No available rooms in category: %s\n", category)
		return nil
	}
	c.printf("Available rooms in category: %s\n", category)
	for _, o := range offers {
		c.printf("Room Number: %d, Price: %s\n", o.Number, hotel.FormatMoney(o.Price))
	}
	return nil
}

func (c *Console) handleReserve() error {
	guest, err := c.readLine("Enter guest name: ")
	if err != nil {
		return err
	}
	roomNumber, ok, err := c.readInt("Enter room number: ", "room number")
	if err != nil || !ok {
		return err
	}
	nights, ok, err := c.readInt("Enter number of nights: ", "number of nights")
	if err != nil || !ok {
		return err
	}

	id, err := c.book.MakeReservation(guest, roomNumber, nights)
	switch {
	case err == nil:
		c.printf("Reservation successful! Reservation ID: %d\n", id)
	case errors.Is(err, hotel.ErrRoomNotFound), errors.Is(err, hotel.ErrRoomUnavailable):
		c.println("Room not available for reservation.")
	case errors.Is(err, hotel.ErrInvalidNights):
		c.println("Number of nights must be positive.")
	default:
		c.printf("Error making reservation: %v\n", err)
	}
	return nil
}

func (c *Console) handleView() error {
	id, ok, err := c.readID()
	if err != nil || !ok {
		return err
	}

	res, err := c.book.ViewReservation(id)
	if errors.Is(err, hotel.ErrReservationNotFound) {
		c.println("Reservation ID not found.")
		return nil
	}
	if err != nil {
		c.printf("Error viewing reservation: %v\n", err)
		return nil
	}

	category := "Unknown"
	if room, err := c.book.FindRoomByNumber(res.RoomNumber); err == nil {
		category = room.Category
	}
	c.printf("Reservation ID: %d\n", res.ID)
	c.printf("Guest Name: %s\n", res.GuestName)
	c.printf("Room Number: %d\n", res.RoomNumber)
	c.printf("Category: %s\n", category)
	c.printf("Nights: %d\n", res.Nights)
	c.printf("Total Cost: %s\n", hotel.FormatMoney(res.TotalCost))
	return nil
}

func (c *Console) handlePayment() error {
	id, ok, err := c.readID()
	if err != nil || !ok {
		return err
	}
	raw, err := c.readLine("Enter payment amount: ")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.println("Invalid payment amount. Please enter a valid number.")
		return nil
	}

	result, err := c.book.ProcessPayment(id, amount)
	if errors.Is(err, hotel.ErrReservationNotFound) {
		c.println("Invalid reservation ID.")
		return nil
	}
	if err != nil {
		c.printf("Error processing payment: %v\n", err)
		return nil
	}
	if result.Paid {
		c.printf("Payment successful! Total cost: %s\n", hotel.FormatMoney(result.TotalCost))
	} else {
		c.printf("Insufficient payment. Amount due: %s\n", hotel.FormatMoney(result.Shortfall))
	}
	return nil
}

// ------------------ Input helpers ------------------

// readLine returns the next line without a length limit. A final line
// without a newline is still returned.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errEOF
		}
	}
	return strings.TrimSpace(line), nil
}

// readInt returns ok=false after printing a message when the line is not an
// integer. The offending line is discarded.
func (c *Console) readInt(prompt, field string) (int, bool, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		c.printf("Invalid %s. Please enter a valid number.\n", field)
		return 0, false, nil
	}
	return n, true, nil
}

func (c *Console) readID() (int64, bool, error) {
	line, err := c.readLine("Enter reservation ID: ")
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		c.println("Invalid reservation ID. Please enter a valid number.")
		return 0, false, nil
	}
	return id, true, nil
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errEOF) {
		c.println()
		return nil
	}
	return err
}

func (c *Console) println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *Console) printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }
