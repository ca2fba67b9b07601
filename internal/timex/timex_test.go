package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"15s"`), &d))
	assert.Equal(t, 15*time.Second, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`2000000000`), &d))
	assert.Equal(t, 2*time.Second, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestTime_AcceptsDateAndRFC3339(t *testing.T) {
	var v struct {
		Joined  Time `json:"joinedDate"`
		Created Time `json:"createdAt"`
	}
	err := json.Unmarshal([]byte(`{"joinedDate":"2023-01-15","createdAt":"2024-01-15T10:00:00Z"}`), &v)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), v.Joined.Time)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), v.Created.Time)
}

func TestTime_RoundTripAndEmpty(t *testing.T) {
	ts := MustParse("2024-02-05T08:00:00Z")
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-05T08:00:00Z"`, string(b))

	var zero Time
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))

	var back Time
	require.NoError(t, json.Unmarshal([]byte(`""`), &back))
	assert.True(t, back.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &back))
}
