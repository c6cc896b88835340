package ranges

import "fmt"

// Relation describes where a value lies relative to a range.
type Relation int8

const (
	// Below indicates that the value is smaller than every value of the range.
	Below Relation = iota

	// Inside indicates that the value is contained in the range.
	Inside

	// Above indicates that the value is bigger than every value of the range.
	Above
)

// RelationNames contains a dictionary of the names of Relations.
var RelationNames = [...]string{
	"Below",
	"Inside",
	"Above",
}

// Sign returns -1 for Below, 0 for Inside and 1 for Above, so a Relation can be used where comparator results are
// expected.
func (r Relation) Sign() int {
	return int(r) - 1
}

// String returns a human-readable version of the Relation.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(RelationNames) {
		return fmt.Sprintf("Relation(%d)", int8(r))
	}

	return RelationNames[r]
}
