package flightdata

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/rank"
)

const requestFields = 3

// ReadRequests parses a request file from r. The criterion token follows
// rank.ParseCriterion: "Cost" ranks by cost, anything else by duration.
func ReadRequests(r io.Reader) ([]itinerary.Request, error) {
	recs, err := readRecords(r, requestFields)
	if err != nil {
		return nil, err
	}

	reqs := make([]itinerary.Request, 0, len(recs))
	for _, rec := range recs {
		origin, dest, err := names(rec)
		if err != nil {
			return nil, err
		}
		if token := rec.fields[2]; token != rank.CostToken && token != rank.TimeToken {
			log.WithField("line", rec.line).Warnf("unknown criterion %q, ranking by %s", token, rank.TimeToken)
		}
		reqs = append(reqs, itinerary.Request{
			Origin:      origin,
			Destination: dest,
			Criterion:   rank.ParseCriterion(rec.fields[2]),
		})
	}

	return reqs, nil
}

// LoadRequests opens path and parses it with ReadRequests.
func LoadRequests(path string) ([]itinerary.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flightdata: open requests: %w", err)
	}
	defer f.Close()

	reqs, err := ReadRequests(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("path", path).Debugf("read %d request(s)", len(reqs))

	return reqs, nil
}
