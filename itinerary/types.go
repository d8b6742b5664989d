package itinerary

import (
	"errors"

	"github.com/katalvlaran/skyplan/pathfind"
	"github.com/katalvlaran/skyplan/rank"
)

// NoPathMessage is the report sentinel for requests without a viable path.
const NoPathMessage = "No viable path found"

var (
	// ErrNilNetwork is returned by NewPlanner for a nil network.
	ErrNilNetwork = errors.New("itinerary: network is nil")

	// ErrBadOption is returned by NewPlanner for negative limits or workers.
	ErrBadOption = errors.New("itinerary: invalid planner option")
)

// Request is one itinerary query.
type Request struct {
	Origin      string
	Destination string
	Criterion   rank.Criterion
}

// Result is the packaged outcome of one Request: up to the planner limit of
// ranked paths, or none when no viable path exists.
type Result struct {
	Request Request
	Paths   []pathfind.Path
}

// Found reports whether at least one path was found.
func (r Result) Found() bool {
	return len(r.Paths) > 0
}

// Message returns NoPathMessage for an empty result and "" otherwise.
func (r Result) Message() string {
	if r.Found() {
		return ""
	}

	return NoPathMessage
}
