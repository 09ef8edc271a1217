package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		expected time.Time
		name     string
		input    string
		wantErr  bool
	}{
		{
			name:     "plain date",
			input:    `"1990-05-01"`,
			expected: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 with offset",
			input:    `"2020-01-10T12:30:00+03:00"`,
			expected: time.Date(2020, time.January, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "datetime without zone",
			input:    `"2020-01-10T12:30:00"`,
			expected: time.Date(2020, time.January, 10, 12, 30, 0, 0, time.UTC),
		},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `20200110`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexibleTime
			err := json.Unmarshal([]byte(tt.input), &ft)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ft.Time()), "got %s", ft.Time())
		})
	}
}

func TestAccountInput_NullDates(t *testing.T) {
	var in AccountInput
	require.NoError(t, json.Unmarshal([]byte(`{"open_date":"2020-01-10","close_date":null}`), &in))

	require.NotNil(t, in.OpenDate)
	assert.Nil(t, in.CloseDate)
	assert.Nil(t, in.AccountNumber)
}
