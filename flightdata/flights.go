package flightdata

import (
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/network"
)

const flightFields = 4

// Flight is one line of the flight file.
type Flight struct {
	Origin      string
	Destination string
	Cost        float64
	Duration    int
}

// ReadFlights parses a flight file from r.
func ReadFlights(r io.Reader) ([]Flight, error) {
	recs, err := readRecords(r, flightFields)
	if err != nil {
		return nil, err
	}

	flights := make([]Flight, 0, len(recs))
	for _, rec := range recs {
		origin, dest, err := names(rec)
		if err != nil {
			return nil, err
		}
		cost, err := strconv.ParseFloat(rec.fields[2], 64)
		if err != nil {
			return nil, &ParseError{Line: rec.line, Msg: "cost is not a number", Err: err}
		}
		dur, err := strconv.Atoi(rec.fields[3])
		if err != nil {
			return nil, &ParseError{Line: rec.line, Msg: "duration is not an integer", Err: err}
		}
		if cost < 0 || dur < 0 {
			return nil, &ParseError{Line: rec.line, Msg: "cost and duration must be non-negative"}
		}
		flights = append(flights, Flight{Origin: origin, Destination: dest, Cost: cost, Duration: dur})
	}

	return flights, nil
}

// LoadFlights opens path and parses it with ReadFlights.
func LoadFlights(path string) ([]Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flightdata: open flights: %w", err)
	}
	defer f.Close()

	flights, err := ReadFlights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("path", path).Debugf("read %d flight(s)", len(flights))

	return flights, nil
}

// Build loads flights into a new network, each flight as two directed edges
// in file order: origin→destination, then destination→origin.
func Build(flights []Flight, opts ...network.Option) *network.Network {
	n := network.New(opts...)
	for _, f := range flights {
		n.AddEdge(f.Origin, f.Destination, f.Cost, f.Duration)
		n.AddEdge(f.Destination, f.Origin, f.Cost, f.Duration)
	}

	return n
}
