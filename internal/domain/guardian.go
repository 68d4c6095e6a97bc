package domain

import "time"

// Guardian is a trusted contact registered to receive emergency messages.
// Guardians are only ever inserted or removed, never edited in place.
type Guardian struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Method       ContactMethod `json:"method"`
	Value        string        `json:"value"`
	Relationship string        `json:"relationship"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ValidGuardians reports whether every guardian in gs carries an ID.
// Used as the load predicate for the persisted collection.
func ValidGuardians(gs []Guardian) bool {
	for _, g := range gs {
		if g.ID == "" {
			return false
		}
	}
	return true
}
