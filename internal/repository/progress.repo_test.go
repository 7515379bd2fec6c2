package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mishumang/prame/internal/domain"
)

func TestMergeUpdate_DottedKeysPerDate(t *testing.T) {
	update := mergeUpdate(map[string]domain.DayActivity{
		"2024-01-01": {Hours: 1},
		"2024-01-02": {Hours: 2, Activity: "meditation"},
	})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	require.Len(t, set, 2)

	assert.Equal(t, domain.DayActivity{Hours: 1}, set["progress_data.2024-01-01"])
	assert.Equal(t, domain.DayActivity{Hours: 2, Activity: "meditation"}, set["progress_data.2024-01-02"])
}

func TestMergeUpdate_TouchesOnlyProvidedDates(t *testing.T) {
	update := mergeUpdate(map[string]domain.DayActivity{
		"2024-01-01": {Hours: 5},
	})

	set := update["$set"].(bson.M)
	require.Len(t, set, 1)
	_, present := set["progress_data.2024-01-01"]
	assert.True(t, present)

	// No operator may replace the whole mapping.
	_, wholesale := set["progress_data"]
	assert.False(t, wholesale)
	assert.NotContains(t, update, "$unset")
}
