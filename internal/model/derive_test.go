package model

import "testing"

func destinationWithTags(name string, tags ...string) Destination {
	return Destination{Name: name, Categories: tags}
}

func TestFilterByCategories(t *testing.T) {
	goa := destinationWithTags("Goa", "friends", "fun")
	spiti := destinationWithTags("Spiti Valley", "adventure", "nature")
	varanasi := destinationWithTags("Varanasi", "pilgrimage", "historical")
	all := []Destination{goa, spiti, varanasi}

	testCases := []struct {
		name     string
		selected []string
		expected []string
	}{
		{"No Filter Returns Everything", nil, []string{"Goa", "Spiti Valley", "Varanasi"}},
		{"Empty Filter Returns Everything", []string{}, []string{"Goa", "Spiti Valley", "Varanasi"}},
		{"Single Tag", []string{"adventure"}, []string{"Spiti Valley"}},
		{"Any Overlap Matches", []string{"fun", "pilgrimage"}, []string{"Goa", "Varanasi"}},
		{"Unknown Tag", []string{"beach"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FilterByCategories(all, tc.selected)
			if len(result) != len(tc.expected) {
				t.Fatalf("got %d destinations, want %d", len(result), len(tc.expected))
			}
			for i, d := range result {
				if d.Name != tc.expected[i] {
					t.Errorf("result[%d] = %q; want %q", i, d.Name, tc.expected[i])
				}
			}
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	g := Group{MaxMembers: 5, MemberCount: 3}
	if got := AvailableSlots(g); got != 2 {
		t.Errorf("AvailableSlots = %d; want 2", got)
	}
	if IsFull(g) {
		t.Error("group with open slots reported full")
	}

	g.MemberCount = 5
	if got := AvailableSlots(g); got != 0 {
		t.Errorf("AvailableSlots = %d; want 0", got)
	}
	if !IsFull(g) {
		t.Error("full group not reported full")
	}
}

func TestBookingTotal(t *testing.T) {
	testCases := []struct {
		name      string
		price     int
		travelers int
		feeRate   float64
		expected  BookingQuote
	}{
		{"Default Rate", 500, 2, DefaultFeeRate, BookingQuote{Subtotal: 1000, Fee: 180, Total: 1180}},
		{"Rounds Down", 9999, 2, 0.1, BookingQuote{Subtotal: 19998, Fee: 2000, Total: 21998}},
		{"Half Rounds Up", 3, 1, 0.5, BookingQuote{Subtotal: 3, Fee: 2, Total: 5}},
		{"Zero Rate", 750, 3, 0, BookingQuote{Subtotal: 2250, Fee: 0, Total: 2250}},
		{"Free Destination", 0, 4, DefaultFeeRate, BookingQuote{Subtotal: 0, Fee: 0, Total: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := BookingTotal(tc.price, tc.travelers, tc.feeRate)
			if result != tc.expected {
				t.Errorf("BookingTotal(%d, %d, %v) = %+v; want %+v",
					tc.price, tc.travelers, tc.feeRate, result, tc.expected)
			}
		})
	}
}

func TestCanTransitionTripStatus(t *testing.T) {
	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{TripStatusPlanned, TripStatusCompleted, true},
		{TripStatusPlanned, TripStatusCancelled, true},
		{TripStatusPlanned, TripStatusPlanned, false},
		{TripStatusCompleted, TripStatusCancelled, false},
		{TripStatusCompleted, TripStatusPlanned, false},
		{TripStatusCancelled, TripStatusCompleted, false},
		{TripStatusCancelled, TripStatusPlanned, false},
	}

	for _, tc := range testCases {
		if got := CanTransitionTripStatus(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTripStatus(%q, %q) = %v; want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}
