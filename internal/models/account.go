package models

import "time"

// Account represents a housing unit. AccountNumber is fixed at creation.
type Account struct {
	OpenDate      time.Time  `gorm:"column:open_date;not null"`
	CloseDate     *time.Time `gorm:"column:close_date"`
	AccountNumber string     `gorm:"column:account_number;uniqueIndex:accounts_account_number_key;not null"`
	Address       string     `gorm:"column:address;not null"`
	Residents     []Resident `gorm:"many2many:account_residents"`
	SpaceArea     float64    `gorm:"column:space_area;not null"`
	ID            int64      `gorm:"column:id;primaryKey"`
}

// TableName pins the table name used by the schema file.
func (Account) TableName() string {
	return "accounts"
}

// HasCloseDate reports whether the close date carries a real value.
func (a *Account) HasCloseDate() bool {
	return IsDateSet(a.CloseDate)
}

// AccountInput is the inbound payload for account create and update.
// Textual fields are pointers so that an omitted field can be told apart
// from an empty string.
type AccountInput struct {
	AccountNumber *string
	OpenDate      *time.Time
	CloseDate     *time.Time
	Address       *string
	SpaceArea     *float64
}

// AccountSearch is a fully parsed set of account search filters.
// Nil fields are not applied.
type AccountSearch struct {
	OpenDate      *time.Time
	Number        *string
	Address       *string
	Firstname     *string
	Lastname      *string
	Surname       *string
	WithResidents bool
}

// IsDateSet reports whether t holds a value other than the unset sentinel.
func IsDateSet(t *time.Time) bool {
	return t != nil && !t.IsZero()
}
