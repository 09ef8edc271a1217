package models

import "time"

// IdempotencyKey tracks processed create requests so retries replay the
// original response instead of failing the uniqueness checks.
type IdempotencyKey struct {
	CreatedAt   time.Time `gorm:"column:created_at"`
	Key         string    `gorm:"column:key;primaryKey"`
	RequestPath string    `gorm:"column:request_path;primaryKey"`

	// RequestHash fingerprints the request body so a reused key carrying a
	// different payload can be rejected.
	RequestHash      string `gorm:"column:request_hash"`
	ResponseBody     string `gorm:"column:response_body"`
	ResponseLocation string `gorm:"column:response_location"`
	ResponseStatus   int    `gorm:"column:response_status"`
}

// TableName pins the table name used by the schema file.
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
