// Package ratetable - Tiered rate tables
// One band structure shared by every product family, selected by quantity or by area.
package ratetable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Measure names what a schedule's band bounds are compared against
type Measure string

const (
	// ByQuantity bands are bounded by number of pieces
	ByQuantity Measure = "quantity"
	// ByArea bands are bounded by total square meters
	ByArea Measure = "area"
)

// Band is one tier of a schedule
type Band[R any] struct {
	UpTo decimal.Decimal // Inclusive upper bound (0 = unlimited)
	Rate R
}

// Unbounded reports whether the band has no upper limit
func (b Band[R]) Unbounded() bool {
	return b.UpTo.IsZero()
}

// Schedule is an ordered, exhaustive list of bands
type Schedule[R any] struct {
	measure Measure
	bands   []Band[R]
}

// NewSchedule validates and builds a schedule.
// Bounds must be positive and strictly ascending, and only the last band may
// (and must) be unbounded, so a lookup for any positive measure succeeds.
func NewSchedule[R any](measure Measure, bands ...Band[R]) (Schedule[R], error) {
	if len(bands) == 0 {
		return Schedule[R]{}, fmt.Errorf("schedule has no bands")
	}

	previous := decimal.Zero
	for i, band := range bands {
		last := i == len(bands)-1
		if band.Unbounded() {
			if !last {
				return Schedule[R]{}, fmt.Errorf("band %d is unbounded but is not the last band", i)
			}
			continue
		}
		if band.UpTo.IsNegative() {
			return Schedule[R]{}, fmt.Errorf("band %d has negative bound %s", i, band.UpTo)
		}
		if band.UpTo.LessThanOrEqual(previous) {
			return Schedule[R]{}, fmt.Errorf("band %d bound %s is not above previous bound %s", i, band.UpTo, previous)
		}
		if last {
			return Schedule[R]{}, fmt.Errorf("last band is bounded at %s; schedules must end unbounded", band.UpTo)
		}
		previous = band.UpTo
	}

	return Schedule[R]{measure: measure, bands: slices.Clone(bands)}, nil
}

// MustSchedule is NewSchedule for static tables; it panics on invalid bands
func MustSchedule[R any](measure Measure, bands ...Band[R]) Schedule[R] {
	s, err := NewSchedule(measure, bands...)
	if err != nil {
		panic(fmt.Sprintf("ratetable: %v", err))
	}
	return s
}

// Flat is a single unbounded band
func Flat[R any](measure Measure, rate R) Schedule[R] {
	return Schedule[R]{measure: measure, bands: []Band[R]{{Rate: rate}}}
}

// Measure returns what the bounds are compared against
func (s Schedule[R]) Measure() Measure {
	return s.measure
}

// Bands returns a copy of the bands in ascending order
func (s Schedule[R]) Bands() []Band[R] {
	return slices.Clone(s.bands)
}

// Lookup selects the first band whose bound is >= q.
// Ties go to the lower band because bounds are inclusive.
func (s Schedule[R]) Lookup(q decimal.Decimal) (R, bool) {
	for _, band := range s.bands {
		if band.Unbounded() || q.LessThanOrEqual(band.UpTo) {
			return band.Rate, true
		}
	}
	var zero R
	return zero, false
}

// First returns the rate of the lowest band
func (s Schedule[R]) First() (R, bool) {
	if len(s.bands) == 0 {
		var zero R
		return zero, false
	}
	return s.bands[0].Rate, true
}

// Table maps a discrete configuration key to a schedule
type Table[K comparable, R any] struct {
	measure   Measure
	schedules map[K]Schedule[R]
}

// NewTable builds a table; every schedule must use the table's measure
func NewTable[K comparable, R any](measure Measure, schedules map[K]Schedule[R]) (Table[K, R], error) {
	copied := make(map[K]Schedule[R], len(schedules))
	for key, s := range schedules {
		if len(s.bands) == 0 {
			return Table[K, R]{}, fmt.Errorf("key %v has an empty schedule", key)
		}
		if s.measure != measure {
			return Table[K, R]{}, fmt.Errorf("key %v is banded by %s, table is banded by %s", key, s.measure, measure)
		}
		copied[key] = s
	}
	return Table[K, R]{measure: measure, schedules: copied}, nil
}

// MustTable is NewTable for static tables
func MustTable[K comparable, R any](measure Measure, schedules map[K]Schedule[R]) Table[K, R] {
	t, err := NewTable(measure, schedules)
	if err != nil {
		panic(fmt.Sprintf("ratetable: %v", err))
	}
	return t
}

// Measure returns what the bounds are compared against
func (t Table[K, R]) Measure() Measure {
	return t.measure
}

// Lookup resolves the rate for key at measure q.
// ok is false when the key has no entry.
func (t Table[K, R]) Lookup(key K, q decimal.Decimal) (R, bool) {
	s, exists := t.schedules[key]
	if !exists {
		var zero R
		return zero, false
	}
	return s.Lookup(q)
}

// Schedule returns the schedule for key
func (t Table[K, R]) Schedule(key K) (Schedule[R], bool) {
	s, ok := t.schedules[key]
	return s, ok
}

// Keys returns all keys in stable order
func (t Table[K, R]) Keys() []K {
	keys := make([]K, 0, len(t.schedules))
	for k := range t.schedules {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}

// Len returns the number of keyed schedules
func (t Table[K, R]) Len() int {
	return len(t.schedules)
}
