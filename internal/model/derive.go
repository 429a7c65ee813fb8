package model

import "math"

// Pure derivations over already-fetched entities. Nothing here touches the
// network or the database; a nil-safe input is the caller's problem.

// FilterByCategories keeps destinations sharing at least one tag with the
// selection. An empty selection means no filter is active and the input is
// returned unchanged.
func FilterByCategories(destinations []Destination, selected []string) []Destination {
	if len(selected) == 0 {
		return destinations
	}

	want := make(map[string]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}

	out := make([]Destination, 0, len(destinations))
	for _, d := range destinations {
		for _, tag := range d.Categories {
			if want[tag] {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// AvailableSlots is how many more members a group can take.
func AvailableSlots(g Group) int {
	return g.MaxMembers - g.MemberCount
}

func IsFull(g Group) bool {
	return AvailableSlots(g) <= 0
}

// DefaultFeeRate is the taxes & fees rate shown on the booking card.
const DefaultFeeRate = 0.18

type BookingQuote struct {
	Subtotal int `json:"subtotal"`
	Fee      int `json:"fee"`
	Total    int `json:"total"`
}

// BookingTotal prices a booking: subtotal is per-person price times traveler
// count, the fee is subtotal times feeRate rounded half-up to the nearest
// rupee, and total is their sum.
func BookingTotal(price, travelers int, feeRate float64) BookingQuote {
	subtotal := price * travelers
	fee := int(math.Floor(float64(subtotal)*feeRate + 0.5))
	return BookingQuote{
		Subtotal: subtotal,
		Fee:      fee,
		Total:    subtotal + fee,
	}
}
