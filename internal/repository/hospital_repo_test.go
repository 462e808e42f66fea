package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchClauses_Empty(t *testing.T) {
	conds, args := searchClauses(SearchFilters{})
	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestSearchClauses_SubstringFiltersAreCaseInsensitive(t *testing.T) {
	conds, args := searchClauses(SearchFilters{State: "Karnataka", Specialty: "Cardio"})

	require.Len(t, conds, 2)
	assert.Equal(t, "LOWER(state) LIKE ?", conds[0])
	assert.Equal(t, "LOWER(specialties) LIKE ?", conds[1])
	assert.Equal(t, []interface{}{"%karnataka%", "%cardio%"}, args)
}

func TestSearchClauses_MinAvailableBeds(t *testing.T) {
	min := 10
	conds, args := searchClauses(SearchFilters{MinAvailableBeds: &min})

	require.Len(t, conds, 1)
	assert.Equal(t, "available_beds >= ?", conds[0])
	assert.Equal(t, []interface{}{10}, args)
}

func TestSearchClauses_SearchTextIsORedAcrossFields(t *testing.T) {
	conds, args := searchClauses(SearchFilters{District: "Bengaluru", SearchText: "trauma"})

	require.Len(t, conds, 2)
	or := conds[1]
	assert.True(t, strings.HasPrefix(or, "("))
	assert.Equal(t, 4, strings.Count(or, " OR "))
	for _, column := range []string{"name", "address", "district", "state", "specialties"} {
		assert.Contains(t, or, "LOWER("+column+") LIKE ?")
	}
	// district filter arg plus five OR args
	assert.Len(t, args, 6)
	assert.Equal(t, "%trauma%", args[len(args)-1])
}
