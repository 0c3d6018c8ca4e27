package model

import (
	"errors"
	"strings"
	"time"
)

// ReputationRecord is an immutable rating issued to a freelancer when a job
// completes. Records are created exactly once, at approval time, and never
// mutated or deleted.
type ReputationRecord struct {
	ID               string `json:"id,omitempty"`
	FreelancerWallet string `json:"freelancer_wallet"`
	ClientWallet     string `json:"client_wallet"`
	JobTitle         string `json:"job_title"`
	JobPrice         string `json:"job_price"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
	IssuedAt         int64  `json:"issued_at"`
}

// IssuedTime returns the record's issuance timestamp as time.Time.
func (r ReputationRecord) IssuedTime() time.Time {
	return time.UnixMilli(r.IssuedAt)
}

// Validate checks the record's required fields and rating bounds.
func (r *ReputationRecord) Validate() error {
	if strings.TrimSpace(r.FreelancerWallet) == "" {
		return errors.New("freelancer wallet is required")
	}
	if strings.TrimSpace(r.ClientWallet) == "" {
		return errors.New("client wallet is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
