package models

import "time"

// Resident represents a person that can be linked to any number of accounts.
type Resident struct {
	BirthDate  time.Time `gorm:"column:birth_date;not null"`
	Surname    *string   `gorm:"column:surname"`
	DocumentID string    `gorm:"column:document_id;uniqueIndex:residents_document_id_key;not null"`
	Firstname  string    `gorm:"column:firstname;not null"`
	Lastname   string    `gorm:"column:lastname;not null"`
	Accounts   []Account `gorm:"many2many:account_residents"`
	ID         int64     `gorm:"column:id;primaryKey"`
}

// TableName pins the table name used by the schema file.
func (Resident) TableName() string {
	return "residents"
}

// ResidentInput is the inbound payload for resident create and update.
type ResidentInput struct {
	DocumentID *string
	Firstname  *string
	Lastname   *string
	Surname    *string
	BirthDate  *time.Time
}
