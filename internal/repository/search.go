package repository

import (
	"fmt"
	"strings"

	"github.com/Naklen/erc-test/internal/models"
	"gorm.io/gorm"
)

// hasResidentWhere matches accounts linked to at least one resident whose
// column matches the LIKE pattern. Each name filter gets its own EXISTS, so
// different filters may be satisfied by different residents.
const hasResidentWhere = `EXISTS (
	SELECT 1 FROM account_residents ar
	JOIN residents r ON r.id = ar.resident_id
	WHERE ar.account_id = accounts.id AND r.%s LIKE ?
)`

const hasAnyResident = `EXISTS (
	SELECT 1 FROM account_residents ar WHERE ar.account_id = accounts.id
)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains builds a case-sensitive substring pattern for LIKE.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// applyAccountSearch narrows query by every filter present in f. Filters
// combine with AND.
func applyAccountSearch(query *gorm.DB, f models.AccountSearch) *gorm.DB {
	if f.Number != nil {
		query = query.Where("accounts.account_number LIKE ?", likeContains(*f.Number))
	}
	if f.Address != nil {
		query = query.Where("accounts.address LIKE ?", likeContains(*f.Address))
	}
	if f.OpenDate != nil {
		day := *f.OpenDate
		query = query.Where("accounts.open_date >= ? AND accounts.open_date < ?", day, day.AddDate(0, 0, 1))
	}
	if f.WithResidents {
		query = query.Where(hasAnyResident)
	}

	residentFilters := []struct {
		value  *string
		column string
	}{
		{value: f.Firstname, column: "firstname"},
		{value: f.Lastname, column: "lastname"},
		{value: f.Surname, column: "surname"},
	}
	for _, rf := range residentFilters {
		if rf.value != nil {
			query = query.Where(fmt.Sprintf(hasResidentWhere, rf.column), likeContains(*rf.value))
		}
	}

	return query
}
