package model

import "time"

// Audit mirrors the bookkeeping fields the remote API attaches to every
// record. The dashboard never writes these, it only renders them.
type Audit struct {
	CreatedBy  string    `json:"created_by,omitempty"`
	ModifiedBy string    `json:"modified_by,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
}
