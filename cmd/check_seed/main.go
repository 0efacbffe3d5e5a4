// Command check_seed loads a YAML room inventory into a throwaway book and
// reports every room that would be rejected at startup.
package main

import (
	"fmt"
	"os"
	"strings"

	"hotel-reservation/hotel"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <seed.yaml>\n", os.Args[0])
		os.Exit(2)
	}
	os.Exit(run(os.Args[1]))
}

// run checks the seed file at path and returns the process exit code.
func run(path string) int {
	rooms, err := hotel.LoadSeedFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seed file: %v\n", err)
		return 1
	}

	book := hotel.NewReservationBook(hotel.NewMemoryStore(), nil)
	defer book.Close()

	fmt.Printf("Checking %d rooms from %s...\n", len(rooms), path)

	successCount := 0
	errorCount := 0
	for _, sr := range rooms {
		fmt.Printf("Room %d (%s, %s)... ", sr.Number, sr.Category, sr.Price)
		if strings.TrimSpace(sr.Category) == "" {
			fmt.Println("WARNING - empty category, room can never match a search")
		}
		if err := book.Seed([]hotel.SeedRoom{sr}); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Println("OK")
		successCount++
	}

	fmt.Printf("\nCheck complete!\n")
	fmt.Printf("Valid rooms: %d\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	if successCount > 0 {
		fmt.Println("\nInventory:")
		all, err := book.Rooms()
		if err != nil {
			fmt.Printf("Error listing rooms: %v\n", err)
		} else {
			fmt.Printf("%-8s %-12s %10s  %s\n", "Room", "Category", "Price", "Status")
			fmt.Println(strings.Repeat("-", 45))
			for _, r := range all {
				fmt.Println(hotel.PrettyRoom(r))
			}
		}
	}
	if errorCount > 0 {
		return 1
	}
	return 0
}
