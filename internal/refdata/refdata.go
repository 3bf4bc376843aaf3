// Package refdata carries the static reference tables of Indian states
// and their districts. The tables are the seed source for the persistent
// store; they are never mutated at runtime.
package refdata

// State is one entry of the static state table
type State struct {
	Code   string
	Name   string
	NameHi string
}

// District is one entry of a static per-state district table
type District struct {
	Code      string
	Name      string
	NameHi    string
	Latitude  float64
	Longitude float64
}

// States returns all Indian states and union territories
func States() []State {
	out := make([]State, len(indianStates))
	copy(out, indianStates)
	return out
}

// StateByCode looks up a state by its code
func StateByCode(code string) (State, bool) {
	for _, s := range indianStates {
		if s.Code == code {
			return s, true
		}
	}
	return State{}, false
}

// DistrictsForState returns the district table for a state, or an empty
// slice when no table exists for that code.
func DistrictsForState(stateCode string) []District {
	table := stateDistricts[stateCode]
	out := make([]District, len(table))
	copy(out, table)
	return out
}
