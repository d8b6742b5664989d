package rank

import "fmt"

// Criterion selects the ranking metric.
type Criterion int

const (
	// ByDuration ranks by accumulated duration. It is the zero value, matching
	// the fallback of ParseCriterion.
	ByDuration Criterion = iota

	// ByCost ranks by accumulated cost.
	ByCost
)

// Request-file tokens and report labels.
const (
	CostToken = "Cost"
	TimeToken = "Time"
)

// ParseCriterion maps a request token to a Criterion. Only the exact token
// "Cost" yields ByCost; anything else, including typos, yields ByDuration.
func ParseCriterion(token string) Criterion {
	if token == CostToken {
		return ByCost
	}

	return ByDuration
}

// String returns the report label: "Cost" or "Time".
func (c Criterion) String() string {
	if c == ByCost {
		return CostToken
	}

	return TimeToken
}

// MarshalText encodes the criterion as its label.
func (c Criterion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a label with ParseCriterion semantics.
func (c *Criterion) UnmarshalText(text []byte) error {
	if c == nil {
		return fmt.Errorf("rank: UnmarshalText on nil *Criterion")
	}
	*c = ParseCriterion(string(text))

	return nil
}
