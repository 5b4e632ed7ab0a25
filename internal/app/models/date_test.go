package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	date := NewDate(1959, time.January, 1)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"1959-01-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(date.Time))
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var date Date
	err := json.Unmarshal([]byte(`"01/01/1959"`), &date)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDateUnmarshalNullIsZero(t *testing.T) {
	var date Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &date))
	assert.True(t, date.IsZero())
}

func TestDateAfter(t *testing.T) {
	earlier := NewDate(2020, time.March, 1)
	later := NewDate(2020, time.March, 2)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier))
}
