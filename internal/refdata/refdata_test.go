package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatesTable(t *testing.T) {
	states := States()
	assert.Len(t, states, 36)

	seen := make(map[string]bool)
	for _, s := range states {
		assert.Equal(t, strings.ToUpper(s.Code), s.Code, "state code %q must be uppercase", s.Code)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.NameHi)
		assert.False(t, seen[s.Code], "duplicate state code %q", s.Code)
		seen[s.Code] = true
	}
}

func TestStateByCode(t *testing.T) {
	up, ok := StateByCode("UP")
	require.True(t, ok)
	assert.Equal(t, "Uttar Pradesh", up.Name)

	_, ok = StateByCode("XX")
	assert.False(t, ok)
}

func TestDistrictsForState(t *testing.T) {
	up := DistrictsForState("UP")
	assert.Len(t, up, 50)

	seen := make(map[string]bool)
	for _, d := range up {
		assert.Equal(t, strings.ToUpper(d.Code), d.Code)
		assert.True(t, strings.HasPrefix(d.Code, "UP"))
		assert.False(t, seen[d.Code], "duplicate district code %q", d.Code)
		seen[d.Code] = true
	}

	for _, state := range []string{"MH", "KA", "TN", "RJ", "GJ", "WB", "BR", "MP"} {
		assert.NotEmpty(t, DistrictsForState(state), "state %s has no district table", state)
	}

	assert.Empty(t, DistrictsForState("XX"))
}

func TestDistrictsForStateReturnsCopy(t *testing.T) {
	first := DistrictsForState("UP")
	first[0].Name = "mutated"

	second := DistrictsForState("UP")
	assert.NotEqual(t, "mutated", second[0].Name)
}
