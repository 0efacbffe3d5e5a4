package hotel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SeedRoom is one inventory entry loaded at startup.
type SeedRoom struct {
	Number   int    `yaml:"number"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
}

type seedFile struct {
	Rooms []SeedRoom `yaml:"rooms"`
}

// DefaultRooms is the inventory used when no seed file is given.
func DefaultRooms() []SeedRoom {
	return []SeedRoom{
		{Number: 101, Category: "Standard", Price: "100"},
		{Number: 102, Category: "Standard", Price: "100"},
		{Number: 201, Category: "Deluxe", Price: "200"},
		{Number: 202, Category: "Deluxe", Price: "200"},
		{Number: 301, Category: "Suite", Price: "300"},
	}
}

// LoadSeedFile reads a YAML document of the form
//
//	rooms:
//	  - {number: 101, category: Standard, price: "100.00"}
func LoadSeedFile(path string) ([]SeedRoom, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeed(f)
}

// ReadSeed decodes a seed document from r.
func ReadSeed(r io.Reader) ([]SeedRoom, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("seed: empty document")
		}
		return nil, fmt.Errorf("seed: %w", err)
	}
	if len(doc.Rooms) == 0 {
		return nil, fmt.Errorf("seed: no rooms")
	}
	return doc.Rooms, nil
}

// Seed adds rooms to b in order and stops at the first failure.
func (b *ReservationBook) Seed(rooms []SeedRoom) error {
	for _, sr := range rooms {
		price, err := decimal.NewFromString(sr.Price)
		if err != nil {
			return fmt.Errorf("seed room %d: bad price %q: %w", sr.Number, sr.Price, err)
		}
		if err := b.AddRoom(sr.Number, sr.Category, price); err != nil {
			return fmt.Errorf("seed room %d: %w", sr.Number, err)
		}
	}
	return nil
}
