// Package repository provides data access layer implementations for the account API.
package repository

import (
	"errors"
	"fmt"

	"github.com/Naklen/erc-test/internal/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostgreSQL error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Constraint names declared in the schema.
const (
	constraintAccountNumber = "accounts_account_number_key"
	constraintDocumentID    = "residents_document_id_key"
	constraintLinkAccount   = "account_residents_account_id_fkey"
	constraintLinkResident  = "account_residents_resident_id_fkey"
)

// errResidentGone reports a link insert that lost a race with a resident
// delete. It never leaves the package.
var errResidentGone = errors.New("linked resident was deleted")

// translateError maps driver and ORM errors onto the sentinel errors in
// package models. Unknown errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pgUniqueViolation:
		switch pqErr.Constraint {
		case constraintAccountNumber:
			return fmt.Errorf("%w: %s", models.ErrDuplicateAccountNumber, pqErr.Detail)
		case constraintDocumentID:
			return fmt.Errorf("%w: %s", models.ErrDuplicateDocumentID, pqErr.Detail)
		}
	case pgForeignKeyViolation:
		if pqErr.Constraint == constraintLinkResident {
			return fmt.Errorf("%w: %s", errResidentGone, pqErr.Detail)
		}
		return fmt.Errorf("%w: %s", models.ErrNotFound, pqErr.Detail)
	}

	return err
}
