package ratetable

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bannerBands() Schedule[int] {
	return MustSchedule(ByArea,
		Band[int]{UpTo: d("1"), Rate: 100},
		Band[int]{UpTo: d("5"), Rate: 75},
		Band[int]{UpTo: d("20"), Rate: 60},
		Band[int]{UpTo: d("50"), Rate: 45},
		Band[int]{Rate: 35},
	)
}

// TestScheduleLookupBoundaries verifies inclusive upper bounds and ascending first-match
func TestScheduleLookupBoundaries(t *testing.T) {
	s := bannerBands()

	tests := []struct {
		q    string
		want int
	}{
		{"0.01", 100},
		{"1", 100},
		{"1.01", 75},
		{"5", 75},
		{"5.001", 60},
		{"20", 60},
		{"20.01", 45},
		{"50", 45},
		{"50.01", 35},
		{"100000", 35},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			got, ok := s.Lookup(d(tt.q))
			if !ok {
				t.Fatalf("lookup of %s failed on an exhaustive schedule", tt.q)
			}
			if got != tt.want {
				t.Errorf("Lookup(%s) = %d, want %d", tt.q, got, tt.want)
			}
		})
	}
}

func TestNewScheduleRejectsInvalidBands(t *testing.T) {
	tests := []struct {
		name  string
		bands []Band[int]
	}{
		{name: "empty", bands: nil},
		{name: "not exhaustive", bands: []Band[int]{{UpTo: d("1"), Rate: 1}, {UpTo: d("5"), Rate: 2}}},
		{name: "descending", bands: []Band[int]{{UpTo: d("5"), Rate: 1}, {UpTo: d("1"), Rate: 2}, {Rate: 3}}},
		{name: "duplicate bound", bands: []Band[int]{{UpTo: d("5"), Rate: 1}, {UpTo: d("5"), Rate: 2}, {Rate: 3}}},
		{name: "unbounded in the middle", bands: []Band[int]{{Rate: 1}, {UpTo: d("5"), Rate: 2}, {Rate: 3}}},
		{name: "negative bound", bands: []Band[int]{{UpTo: d("-1"), Rate: 1}, {Rate: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchedule(ByQuantity, tt.bands...); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFlatScheduleAppliesToAnyMeasure(t *testing.T) {
	s := Flat(ByQuantity, d("3.5"))
	for _, q := range []string{"1", "100", "1000000"} {
		got, ok := s.Lookup(d(q))
		if !ok || !got.Equal(d("3.5")) {
			t.Errorf("Lookup(%s) = %s, %v", q, got, ok)
		}
	}
	first, ok := s.First()
	if !ok || !first.Equal(d("3.5")) {
		t.Errorf("First() = %s, %v", first, ok)
	}
}

func TestZeroScheduleFailsLookup(t *testing.T) {
	var s Schedule[int]
	if _, ok := s.Lookup(d("1")); ok {
		t.Error("zero schedule must not resolve")
	}
	if _, ok := s.First(); ok {
		t.Error("zero schedule has no first band")
	}
}

func TestTableLookup(t *testing.T) {
	table := MustTable(ByQuantity, map[string]Schedule[int]{
		"A6": MustSchedule(ByQuantity, Band[int]{UpTo: d("5000"), Rate: 22}, Band[int]{Rate: 18}),
		"A5": Flat(ByQuantity, 28),
	})

	if got, ok := table.Lookup("A6", d("5000")); !ok || got != 22 {
		t.Errorf("A6@5000 = %d, %v", got, ok)
	}
	if got, ok := table.Lookup("A6", d("5001")); !ok || got != 18 {
		t.Errorf("A6@5001 = %d, %v", got, ok)
	}
	if _, ok := table.Lookup("A4", d("1")); ok {
		t.Error("absent key must not resolve")
	}

	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "A5" || keys[1] != "A6" {
		t.Errorf("Keys() = %v, want [A5 A6]", keys)
	}
}

func TestNewTableRejectsMixedMeasures(t *testing.T) {
	_, err := NewTable(ByQuantity, map[string]Schedule[int]{
		"a": Flat(ByArea, 1),
	})
	if err == nil {
		t.Error("expected measure mismatch error")
	}
}

func TestBandsReturnsCopy(t *testing.T) {
	s := bannerBands()
	bands := s.Bands()
	bands[0].Rate = 1

	if got, _ := s.Lookup(d("0.5")); got != 100 {
		t.Errorf("schedule mutated through Bands(): %d", got)
	}
}
