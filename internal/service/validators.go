package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Naklen/erc-test/internal/models"
)

// Validation messages returned to API callers.
const (
	MsgFieldMissing           = "Field %s is missing or has a default value"
	MsgFieldEmpty             = "Field %s cannot be an empty string"
	MsgCloseDateBeforeOpen    = "The close date must be greater than the open date"
	MsgDuplicateAccountNumber = "Account with same number already exists"
	MsgDuplicateDocumentID    = "Resident with same document ID already exists"
)

// AccountNumberChecker looks up account numbers for the uniqueness rule.
type AccountNumberChecker interface {
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
}

// DocumentIDChecker looks up resident document IDs for the uniqueness rule.
type DocumentIDChecker interface {
	ExistsByDocumentID(ctx context.Context, documentID string, excludeID int64) (bool, error)
}

// fieldCheck holds the presence rules for one input field. missing covers
// both an omitted value and a zero value; empty applies to text only.
type fieldCheck[T any] struct {
	exempt  func(update bool) bool
	missing func(in T) bool
	empty   func(in T) bool
	name    string
}

func textField[T any](name string, get func(T) *string) fieldCheck[T] {
	return fieldCheck[T]{
		name:    name,
		missing: func(in T) bool { return get(in) == nil },
		empty: func(in T) bool {
			v := get(in)
			return v != nil && *v == ""
		},
	}
}

func dateField[T any](name string, get func(T) *time.Time) fieldCheck[T] {
	return fieldCheck[T]{
		name:    name,
		missing: func(in T) bool { return !models.IsDateSet(get(in)) },
	}
}

func numberField[T any](name string, get func(T) *float64) fieldCheck[T] {
	return fieldCheck[T]{
		name: name,
		missing: func(in T) bool {
			v := get(in)
			return v == nil || *v == 0
		},
	}
}

func (c fieldCheck[T]) exemptWhen(exempt func(update bool) bool) fieldCheck[T] {
	c.exempt = exempt
	return c
}

func always(bool) bool { return true }

func onUpdate(update bool) bool { return update }

var accountFieldChecks = []fieldCheck[models.AccountInput]{
	textField("AccountNumber", func(in models.AccountInput) *string { return in.AccountNumber }).exemptWhen(onUpdate),
	dateField("OpenDate", func(in models.AccountInput) *time.Time { return in.OpenDate }),
	dateField("CloseDate", func(in models.AccountInput) *time.Time { return in.CloseDate }).exemptWhen(always),
	textField("Address", func(in models.AccountInput) *string { return in.Address }),
	numberField("SpaceArea", func(in models.AccountInput) *float64 { return in.SpaceArea }),
}

var residentFieldChecks = []fieldCheck[models.ResidentInput]{
	textField("DocumentID", func(in models.ResidentInput) *string { return in.DocumentID }),
	textField("Firstname", func(in models.ResidentInput) *string { return in.Firstname }),
	textField("Lastname", func(in models.ResidentInput) *string { return in.Lastname }),
	textField("Surname", func(in models.ResidentInput) *string { return in.Surname }).exemptWhen(always),
	dateField("BirthDate", func(in models.ResidentInput) *time.Time { return in.BirthDate }),
}

// checkFields evaluates every non-exempt check and collects all failures.
func checkFields[T any](checks []fieldCheck[T], in T, update bool) []string {
	var messages []string
	for _, c := range checks {
		if c.exempt != nil && c.exempt(update) {
			continue
		}
		if c.missing(in) {
			messages = append(messages, fmt.Sprintf(MsgFieldMissing, c.name))
		}
		if c.empty != nil && c.empty(in) {
			messages = append(messages, fmt.Sprintf(MsgFieldEmpty, c.name))
		}
	}
	return messages
}

// ValidateAccount runs every account rule and returns the violations in
// evaluation order. An empty result means the input is valid. The
// account-number uniqueness rule only applies on create, since the number
// cannot change afterwards. The error is non-nil only when the lookup fails.
func ValidateAccount(ctx context.Context, lookup AccountNumberChecker, in models.AccountInput, isUpdate bool) ([]string, error) {
	messages := checkFields(accountFieldChecks, in, isUpdate)

	if models.IsDateSet(in.CloseDate) {
		var openDate time.Time
		if in.OpenDate != nil {
			openDate = *in.OpenDate
		}
		if !in.CloseDate.After(openDate) {
			messages = append(messages, MsgCloseDateBeforeOpen)
		}
	}

	if !isUpdate && in.AccountNumber != nil && *in.AccountNumber != "" {
		exists, err := lookup.ExistsByAccountNumber(ctx, *in.AccountNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			messages = append(messages, MsgDuplicateAccountNumber)
		}
	}

	return messages, nil
}

// ValidateResident runs every resident rule. updateID is the resident being
// updated, or 0 on create; that resident may keep its own document ID.
func ValidateResident(ctx context.Context, lookup DocumentIDChecker, in models.ResidentInput, updateID int64) ([]string, error) {
	messages := checkFields(residentFieldChecks, in, updateID != 0)

	if in.DocumentID != nil && *in.DocumentID != "" {
		exists, err := lookup.ExistsByDocumentID(ctx, *in.DocumentID, updateID)
		if err != nil {
			return nil, err
		}
		if exists {
			messages = append(messages, MsgDuplicateDocumentID)
		}
	}

	return messages, nil
}
