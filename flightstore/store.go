// Package flightstore reads flights from a MySQL table with the
// columns id, origin, destination, cost and duration.
//
//	CREATE TABLE flights (
//	    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
//	    origin      VARCHAR(128)   NOT NULL,
//	    destination VARCHAR(128)   NOT NULL,
//	    cost        DECIMAL(12, 2) NOT NULL,
//	    duration    INT            NOT NULL
//	);
//
// Rows are returned in id order so a network built from the table has the
// same edge order as one built from the equivalent flight file.
package flightstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/flightdata"
)

// DefaultTable is used when Store.Table is empty.
const DefaultTable = "flights"

// ErrInvalidRow is returned for a row that would not load as a flight.
var ErrInvalidRow = errors.New("flightstore: invalid flight row")

// Open connects to MySQL with the pool limits used by the binaries and
// verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("flightstore: open: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("flightstore: ping: %w", err)
	}
	log.Infof("flightstore: connection pool initialized")

	return db, nil
}

// Store is a flight table handle.
type Store struct {
	DB    *sql.DB
	Table string
}

func (s Store) table() string {
	if s.Table == "" {
		return DefaultTable
	}

	return s.Table
}

// Flights returns every row in id order.
func (s Store) Flights(ctx context.Context) ([]flightdata.Flight, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT origin, destination, cost, duration FROM "+s.table()+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("flightstore: query: %w", err)
	}
	defer rows.Close()

	flights := make([]flightdata.Flight, 0, 64)
	for rows.Next() {
		var f flightdata.Flight
		if err := rows.Scan(&f.Origin, &f.Destination, &f.Cost, &f.Duration); err != nil {
			return nil, fmt.Errorf("flightstore: scan: %w", err)
		}
		if err := check(f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flightstore: rows: %w", err)
	}
	log.WithField("table", s.table()).Debugf("read %d flight(s)", len(flights))

	return flights, nil
}

func check(f flightdata.Flight) error {
	switch {
	case f.Origin == "" || f.Destination == "":
		return fmt.Errorf("%w: empty location name", ErrInvalidRow)
	case f.Cost < 0 || f.Duration < 0:
		return fmt.Errorf("%w: %s→%s has negative cost or duration", ErrInvalidRow, f.Origin, f.Destination)
	}

	return nil
}
