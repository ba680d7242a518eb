package standard

import (
	"encoding/json"
	"strconv"
)

// Limit is an optional upper bound. The zero value is NoLimit.
//
// An unset limit means the rule does not apply. A limit set to 0 is a real
// limit: any non-zero measurement exceeds it.
type Limit struct {
	n   uint64
	set bool
}

// NoLimit is the unset limit.
var NoLimit = Limit{}

// LimitOf returns a limit of n.
func LimitOf(n uint64) Limit {
	return Limit{n: n, set: true}
}

// IsSet reports whether the limit applies.
func (l Limit) IsSet() bool { return l.set }

// Value returns the bound and whether it is set.
func (l Limit) Value() (uint64, bool) { return l.n, l.set }

// Exceeded reports whether v is over the limit. Unset limits are never exceeded.
func (l Limit) Exceeded(v uint64) bool {
	return l.set && v > l.n
}

func (l Limit) String() string {
	if !l.set {
		return "n/a"
	}
	return strconv.FormatUint(l.n, 10)
}

// MarshalJSON encodes an unset limit as null.
func (l Limit) MarshalJSON() ([]byte, error) {
	if !l.set {
		return []byte("null"), nil
	}
	return json.Marshal(l.n)
}

func limitFromPtr(p *uint64) Limit {
	if p == nil {
		return NoLimit
	}
	return LimitOf(*p)
}
