package flightdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const fieldSeparator = "|"

// record is one split data line with its position for diagnostics.
type record struct {
	line   int
	fields []string
}

// readRecords parses the count header and the following count records, each
// of which must have exactly width fields.
func readRecords(r io.Reader, width int) ([]record, error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++

		return strings.TrimSpace(sc.Text()), true
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &ParseError{Line: 1, Msg: "missing record count"}
	}
	count, err := strconv.Atoi(header)
	if err != nil {
		return nil, &ParseError{Line: line, Msg: "record count is not an integer", Err: err}
	}
	if count < 0 {
		return nil, &ParseError{Line: line, Msg: "record count is negative"}
	}

	out := make([]record, 0, count)
	for i := 0; i < count; i++ {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, &ParseError{Line: line + 1, Msg: "expected " + strconv.Itoa(count) + " records, got " + strconv.Itoa(i)}
		}
		fields := strings.Split(text, fieldSeparator)
		if len(fields) != width {
			return nil, &ParseError{Line: line, Msg: "expected " + strconv.Itoa(width) + " fields, got " + strconv.Itoa(len(fields))}
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}
		out = append(out, record{line: line, fields: fields})
	}

	return out, nil
}

// names validates the origin/destination pair of a record.
func names(rec record) (string, string, error) {
	origin, dest := rec.fields[0], rec.fields[1]
	if origin == "" || dest == "" {
		return "", "", &ParseError{Line: rec.line, Msg: "empty location name"}
	}

	return origin, dest, nil
}
