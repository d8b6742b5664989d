// Package flightdata reads the pipe-delimited flight and request files and
// loads flights into a network.Network.
//
// Both files share one layout: the first line holds the record count N,
// followed by N records, one per line, fields separated by '|'. Lines and
// fields are trimmed of surrounding whitespace; lines after the N-th record
// are ignored.
//
//	flights:  origin|destination|cost|duration     e.g. Calgary|Winnipeg|450|140
//	requests: origin|destination|criterion         e.g. Calgary|Toronto|Cost
//
// Any malformed input (bad count, missing records, wrong field count,
// non-numeric or negative cost/duration, empty location name) is reported as
// a *ParseError that matches ErrMalformed under errors.Is.
//
// Build inserts every flight twice, origin→destination then
// destination→origin, because a flight is usable in both directions.
package flightdata
