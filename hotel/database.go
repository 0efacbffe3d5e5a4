package hotel

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Database is a Store backed by a private in-memory SQLite database. It is
// discarded with the process like MemoryStore, but availability and the
// reservation ledger are kept consistent by SQL constraints and transactions.
type Database struct {
	db *sql.DB

	insertRoomStmt *sql.Stmt
	getRoomStmt    *sql.Stmt
}

// NewDatabase opens a fresh in-memory database, applies the schema, and
// prepares common statements.
func NewDatabase() (*Database, error) {
	db, err := sql.Open("sqlite3", "file::memory:?_busy_timeout=5000&_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.prepareStatements(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Close releases prepared statements and closes the DB.
func (d *Database) Close() error {
	if d.insertRoomStmt != nil {
		d.insertRoomStmt.Close()
	}
	if d.getRoomStmt != nil {
		d.getRoomStmt.Close()
	}
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		// seq keeps insertion order for listing.
		`CREATE TABLE IF NOT EXISTS rooms (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            number INTEGER NOT NULL UNIQUE,
            category TEXT NOT NULL,
            price TEXT NOT NULL,
            available BOOLEAN NOT NULL DEFAULT 1
        );`,
		`CREATE TABLE IF NOT EXISTS reservations (
            id INTEGER PRIMARY KEY,
            guest_name TEXT NOT NULL,
            room_number INTEGER NOT NULL UNIQUE REFERENCES rooms(number),
            nights INTEGER NOT NULL,
            total_cost TEXT NOT NULL
        );`,
		`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`,
	}

	for i, stmt := range stmts {
		var args []any
		if i == len(stmts)-1 {
			args = append(args, schemaVersion)
		}
		if _, err := tx.Exec(stmt, args...); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (d *Database) prepareStatements() error {
	var err error
	if d.insertRoomStmt, err = d.db.Prepare(`INSERT INTO rooms(number,category,price,available) VALUES(?,?,?,?)`); err != nil {
		return err
	}
	if d.getRoomStmt, err = d.db.Prepare(`SELECT number,category,price,available FROM rooms WHERE number=?`); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Store implementation
// ---------------------------------------------------------------------------

func (d *Database) InsertRoom(r Room) error {
	if _, err := d.insertRoomStmt.Exec(r.Number, r.Category, r.Price, r.Available); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %d", ErrDuplicateRoom, r.Number)
		}
		return fmt.Errorf("insert room %d: %w", r.Number, err)
	}
	return nil
}

func (d *Database) GetRoom(number int) (*Room, error) {
	var r Room
	err := d.getRoomStmt.QueryRow(number).Scan(&r.Number, &r.Category, &r.Price, &r.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (d *Database) GetAllRooms() ([]*Room, error) {
	rows, err := d.db.Query(`SELECT number,category,price,available FROM rooms ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.Number, &r.Category, &r.Price, &r.Available); err != nil {
			return nil, err
		}
		rooms = append(rooms, &r)
	}
	return rooms, rows.Err()
}

// ClaimRoom checks availability, records the reservation, and flips the room
// in one transaction.
func (d *Database) ClaimRoom(res *Reservation) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var avail bool
	err = tx.QueryRow(`SELECT available FROM rooms WHERE number=?`, res.RoomNumber).Scan(&avail)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, res.RoomNumber)
	}
	if err != nil {
		return err
	}
	if !avail {
		return fmt.Errorf("%w: %d", ErrRoomUnavailable, res.RoomNumber)
	}

	if _, err := tx.Exec(`INSERT INTO reservations(id,guest_name,room_number,nights,total_cost) VALUES(?,?,?,?,?)`,
		res.ID, res.GuestName, res.RoomNumber, res.Nights, res.TotalCost); err != nil {
		return fmt.Errorf("insert reservation %d: %w", res.ID, err)
	}
	if _, err := tx.Exec(`UPDATE rooms SET available=0 WHERE number=?`, res.RoomNumber); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *Database) GetReservation(id int64) (*Reservation, error) {
	var res Reservation
	err := d.db.QueryRow(`SELECT id,guest_name,room_number,nights,total_cost FROM reservations WHERE id=?`, id).
		Scan(&res.ID, &res.GuestName, &res.RoomNumber, &res.Nights, &res.TotalCost)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrReservationNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
