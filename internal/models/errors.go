package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateAccountNumber indicates the accounts_account_number_key constraint rejected a write
	ErrDuplicateAccountNumber = errors.New("duplicate account number")

	// ErrDuplicateDocumentID indicates the residents_document_id_key constraint rejected a write
	ErrDuplicateDocumentID = errors.New("duplicate document id")
)
