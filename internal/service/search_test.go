package service

import (
	"testing"
	"time"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildAccountSearch(t *testing.T) {
	day := date(2021, time.March, 5)

	tests := []struct {
		name     string
		params   AccountSearchParams
		expected models.AccountSearch
	}{
		{
			name:     "no parameters",
			expected: models.AccountSearch{},
		},
		{
			name: "text filters pass through",
			params: AccountSearchParams{
				Number:    ptr("100"),
				Address:   ptr("Lenina"),
				Firstname: ptr("Iv"),
				Lastname:  ptr("Pet"),
				Surname:   ptr("Ser"),
			},
			expected: models.AccountSearch{
				Number:    ptr("100"),
				Address:   ptr("Lenina"),
				Firstname: ptr("Iv"),
				Lastname:  ptr("Pet"),
				Surname:   ptr("Ser"),
			},
		},
		{
			name:     "empty strings are absent",
			params:   AccountSearchParams{Number: ptr(""), OpenDate: ptr("")},
			expected: models.AccountSearch{},
		},
		{
			name:     "with residents",
			params:   AccountSearchParams{WithResidents: ptr("true")},
			expected: models.AccountSearch{WithResidents: true},
		},
		{
			name:     "with residents false applies no filter",
			params:   AccountSearchParams{WithResidents: ptr("false")},
			expected: models.AccountSearch{},
		},
		{
			name:     "plain date",
			params:   AccountSearchParams{OpenDate: ptr("2021-03-05")},
			expected: models.AccountSearch{OpenDate: &day},
		},
		{
			name:     "time of day is dropped",
			params:   AccountSearchParams{OpenDate: ptr("2021-03-05T17:45:00+03:00")},
			expected: models.AccountSearch{OpenDate: &day},
		},
		{
			name:     "offset timestamp uses the utc day",
			params:   AccountSearchParams{OpenDate: ptr("2021-03-06T01:00:00+03:00")},
			expected: models.AccountSearch{OpenDate: &day},
		},
		{
			name:     "negative offset rolls forward",
			params:   AccountSearchParams{OpenDate: ptr("2021-03-04T22:30:00-05:00")},
			expected: models.AccountSearch{OpenDate: &day},
		},
		{
			name:     "bare with_residents flag",
			params:   AccountSearchParams{WithResidents: ptr("")},
			expected: models.AccountSearch{WithResidents: true},
		},
		{
			name:     "numeric with_residents flag",
			params:   AccountSearchParams{WithResidents: ptr("1")},
			expected: models.AccountSearch{WithResidents: true},
		},
		{
			name:     "unparseable with_residents is ignored",
			params:   AccountSearchParams{WithResidents: ptr("maybe"), Number: ptr("7")},
			expected: models.AccountSearch{Number: ptr("7")},
		},
		{
			name:     "local datetime",
			params:   AccountSearchParams{OpenDate: ptr("2021-03-05T08:00:00")},
			expected: models.AccountSearch{OpenDate: &day},
		},
		{
			name:     "unparseable date is ignored",
			params:   AccountSearchParams{OpenDate: ptr("yesterday"), Number: ptr("7")},
			expected: models.AccountSearch{Number: ptr("7")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildAccountSearch(tt.params))
		})
	}
}
