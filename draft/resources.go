package draft

import (
	"strconv"
	"strings"
)

// Resource identifies a tradeable production good.
type Resource uint8

const (
	Steel Resource = iota
	Timber
	Concrete
	Silicon
	Software
	Design
	Media
	numResources
)

// NumResources is the number of distinct resources.
const NumResources = int(numResources)

// Raw reports whether r is a raw material rather than a refined good.
func (r Resource) Raw() bool {
	return r <= Silicon
}

func (r Resource) String() string {
	if r >= numResources {
		return "Unknown"
	}
	return [...]string{"Steel", "Timber", "Concrete", "Silicon", "Software", "Design", "Media"}[r]
}

// RawResources and RefinedResources list the two resource classes.
var (
	RawResources     = []Resource{Steel, Timber, Concrete, Silicon}
	RefinedResources = []Resource{Software, Design, Media}
)

// Resources is a multiset of resources indexed by Resource.
type Resources [NumResources]int

// NewResources builds a multiset counting each listed resource once per
// occurrence, so NewResources(Steel, Steel, Media) holds two Steel and one
// Media.
func NewResources(rs ...Resource) Resources {
	var out Resources
	for _, r := range rs {
		out[r]++
	}
	return out
}

// Of returns a multiset holding n of a single resource.
func Of(r Resource, n int) Resources {
	var out Resources
	out[r] = n
	return out
}

// Count returns how many of r the multiset holds.
func (rs Resources) Count(r Resource) int {
	return rs[r]
}

// Plus returns the element-wise sum of two multisets.
func (rs Resources) Plus(other Resources) Resources {
	for i, n := range other {
		rs[i] += n
	}
	return rs
}

// Minus returns rs with other removed, clamped at zero per element.
func (rs Resources) Minus(other Resources) Resources {
	for i, n := range other {
		rs[i] -= n
		if rs[i] < 0 {
			rs[i] = 0
		}
	}
	return rs
}

// Covers reports whether rs holds at least every element of need.
func (rs Resources) Covers(need Resources) bool {
	for i, n := range need {
		if rs[i] < n {
			return false
		}
	}
	return true
}

// Total returns the number of resources in the multiset.
func (rs Resources) Total() int {
	total := 0
	for _, n := range rs {
		total += n
	}
	return total
}

// IsZero reports whether the multiset is empty.
func (rs Resources) IsZero() bool {
	return rs == Resources{}
}

func (rs Resources) String() string {
	if rs.IsZero() {
		return "none"
	}
	var b strings.Builder
	for i, n := range rs {
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(' ')
		b.WriteString(Resource(i).String())
	}
	return b.String()
}
