package domain

import (
	"context"
	"errors"
	"fmt"
)

// SyncPhase identifies which part of a sync invocation failed.
type SyncPhase string

const (
	SyncPhaseScan  SyncPhase = "scan"
	SyncPhaseDiff  SyncPhase = "diff"
	SyncPhaseApply SyncPhase = "apply"
)

// SyncError wraps a failure with the phase it occurred in. Batches applied
// before the failure stay committed; the next run converges the rest.
type SyncError struct {
	Phase SyncPhase
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("commission sync %s: %v", e.Phase, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// NewSyncError tags err with the failing phase.
func NewSyncError(phase SyncPhase, err error) *SyncError {
	return &SyncError{Phase: phase, Err: err}
}

// SyncReport summarizes one sync invocation.
type SyncReport struct {
	Scanned   int `json:"scanned"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Unchanged int `json:"unchanged"`
}

// Writes is the number of store mutations the run performed.
func (r SyncReport) Writes() int {
	return r.Created + r.Updated + r.Deleted
}

// ListRequest filters commission record listings.
type ListRequest struct {
	CompanyID  int64
	DocumentID int64
}

type Service interface {
	// Sync runs one full scan/diff/apply pass and reports what changed.
	// A returned error is always a *SyncError.
	Sync(ctx context.Context) (SyncReport, error)

	// Run is the scheduler entry point: it swallows and logs failures,
	// returning false instead of propagating.
	Run(ctx context.Context) bool

	List(ctx context.Context, req ListRequest) ([]CommissionRecord, error)
}

var ErrInvalidConfig = errors.New("invalid_commission_service_config")
