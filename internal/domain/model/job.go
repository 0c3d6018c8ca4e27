// Package model defines the core data types shared across the suilance marketplace service.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the lifecycle state of a marketplace job.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type JobStatus string

const (
	// JobStatusPosted indicates a job exists on-chain but has not been funded.
	JobStatusPosted JobStatus = "Posted"
	// JobStatusFunded indicates escrow holds the job's funds and freelancers may accept it.
	JobStatusFunded JobStatus = "Funded"
	// JobStatusAccepted indicates a freelancer has claimed the job.
	JobStatusAccepted JobStatus = "Accepted"
	// JobStatusSubmitted indicates the freelancer has delivered proof of work.
	JobStatusSubmitted JobStatus = "Submitted"
	// JobStatusCompleted indicates the client approved the work and escrow was released.
	JobStatusCompleted JobStatus = "Completed"
	// JobStatusRejected indicates the client requested a revision of a submission.
	JobStatusRejected JobStatus = "Rejected"
	// JobStatusRefunded indicates escrow was returned to the client.
	JobStatusRefunded JobStatus = "Refunded"
)

// Valid returns true if the JobStatus is one of the defined lifecycle states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPosted, JobStatusFunded, JobStatusAccepted, JobStatusSubmitted,
		JobStatusCompleted, JobStatusRejected, JobStatusRefunded:
		return true
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler for JobStatus.
func (s *JobStatus) UnmarshalText(text []byte) error {
	v := JobStatus(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus: %q", string(text))
	}
	*s = v
	return nil
}

// Terminal reports whether no further transitions are allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusRefunded
}

// CanTransition reports whether moving from one status to another follows the
// lifecycle graph. The graph is exhaustive; any pair not listed is rejected,
// including self-transitions.
func CanTransition(from, to JobStatus) bool {
	switch from {
	case JobStatusPosted:
		return to == JobStatusFunded
	case JobStatusFunded:
		return to == JobStatusAccepted || to == JobStatusRefunded
	case JobStatusAccepted:
		return to == JobStatusSubmitted
	case JobStatusSubmitted:
		return to == JobStatusCompleted || to == JobStatusRejected || to == JobStatusRefunded
	case JobStatusRejected:
		return to == JobStatusSubmitted
	case JobStatusCompleted, JobStatusRefunded:
		return false
	}
	return false
}

// Job represents a marketplace job record as stored in the job store.
// Field names on the wire match the store's existing schema.
type Job struct {
	ID          string    `json:"id,omitempty"`
	SuiID       string    `json:"sui_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Status      JobStatus `json:"status"`
	Creator     string    `json:"creator"`
	Freelancer  string    `json:"freelancer,omitempty"`
	// FreelancerScore and FreelancerTier snapshot the freelancer's reputation
	// at accept time. They are not recomputed afterwards.
	FreelancerScore float64 `json:"freelancer_score,omitempty"`
	FreelancerTier  string  `json:"freelancer_tier,omitempty"`
	EscrowID        string  `json:"escrowId,omitempty"`
	Proof           string  `json:"proof,omitempty"`
	Key             string  `json:"key,omitempty"`
	CreatedAt       int64   `json:"createdAt"`
}

// CreatedTime returns the job's creation timestamp as time.Time.
func (j Job) CreatedTime() time.Time {
	return time.UnixMilli(j.CreatedAt)
}

// CreateJobRequest carries the client-supplied fields for posting a new job.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(r.Price) == "" {
		return errors.New("price is required")
	}
	if _, err := ParsePriceToMist(r.Price); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	return nil
}

// Normalize trims surrounding whitespace from the request fields.
func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Price = strings.TrimSpace(r.Price)
}

// SubmitWorkRequest carries the freelancer-supplied fields for a submission.
type SubmitWorkRequest struct {
	Proof string `json:"proof"`
	Key   string `json:"key"`
}

// Validate validates the SubmitWorkRequest fields.
func (r *SubmitWorkRequest) Validate() error {
	if strings.TrimSpace(r.Proof) == "" {
		return errors.New("proof is required")
	}
	if strings.TrimSpace(r.Key) == "" {
		return errors.New("key is required")
	}
	return nil
}

// JobUpdate is a partial update applied to a stored job record.
// Only non-nil fields are serialized, so the store merges them into
// the existing record.
type JobUpdate struct {
	Status          *JobStatus `json:"status,omitempty"`
	Freelancer      *string    `json:"freelancer,omitempty"`
	FreelancerScore *float64   `json:"freelancer_score,omitempty"`
	FreelancerTier  *string    `json:"freelancer_tier,omitempty"`
	EscrowID        *string    `json:"escrowId,omitempty"`
	Proof           *string    `json:"proof,omitempty"`
	Key             *string    `json:"key,omitempty"`
}

// StatusUpdate returns a JobUpdate that only changes the status field.
func StatusUpdate(status JobStatus) JobUpdate {
	return JobUpdate{Status: &status}
}
