package service

import (
	"strconv"
	"time"

	"github.com/Naklen/erc-test/internal/models"
)

// AccountSearchParams carries the raw query values of an account search.
type AccountSearchParams struct {
	WithResidents *string
	OpenDate      *string
	Number        *string
	Address       *string
	Firstname     *string
	Lastname      *string
	Surname       *string
}

var searchDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// BuildAccountSearch turns raw parameters into a search filter. Empty
// strings count as absent and an open date that does not parse is dropped.
func BuildAccountSearch(p AccountSearchParams) models.AccountSearch {
	search := models.AccountSearch{
		Number:    nonEmpty(p.Number),
		Address:   nonEmpty(p.Address),
		Firstname: nonEmpty(p.Firstname),
		Lastname:  nonEmpty(p.Lastname),
		Surname:   nonEmpty(p.Surname),
	}

	if p.WithResidents != nil {
		search.WithResidents, _ = parseSearchFlag(*p.WithResidents)
	}

	if raw := nonEmpty(p.OpenDate); raw != nil {
		if day, ok := parseSearchDate(*raw); ok {
			search.OpenDate = &day
		}
	}

	return search
}

// parseSearchFlag reads a boolean query flag. A bare flag is true; ok is
// false for values that are not booleans.
func parseSearchFlag(s string) (value, ok bool) {
	if s == "" {
		return true, true
	}
	value, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return value, true
}

// parseSearchDate returns midnight UTC of the UTC calendar day containing s.
// Timestamps with an offset are converted to UTC first, matching how dates
// are stored.
func parseSearchDate(s string) (time.Time, bool) {
	for _, layout := range searchDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
