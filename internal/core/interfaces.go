package core

import (
	"context"
	"strings"

	"github.com/suilance/suilance-ui-api/internal/domain/model"
)

// This file contains the port interfaces between the service layer and the
// external collaborators (the REST job store and the wallet signer bridge).
// Service implementations depend on these interfaces, not concrete adapters.

// JobStore defines the operations the service layer needs from the remote job
// store. The store merges partial updates and assigns record IDs; it performs
// no transition validation of its own.
type JobStore interface {
	List(ctx context.Context) ([]model.Job, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Update(ctx context.Context, id string, upd model.JobUpdate) (*model.Job, error)
}

// ReputationStore defines the operations for reputation records. Records are
// append-only; there is no update or delete.
type ReputationStore interface {
	List(ctx context.Context) ([]model.ReputationRecord, error)
	Create(ctx context.Context, rec model.ReputationRecord) (*model.ReputationRecord, error)
}

// ChainBridge submits a move call to the wallet signer bridge and waits for
// settlement. A returned error means the transaction did not settle and had
// no on-chain effect; a returned Settlement is final.
type ChainBridge interface {
	Call(ctx context.Context, call MoveCall) (*Settlement, error)
}

// MoveCall describes a contract entry point invocation. Arguments are kept as
// opaque strings; the bridge owns argument encoding and gas handling.
type MoveCall struct {
	Package  string   `json:"package"`
	Module   string   `json:"module"`
	Function string   `json:"function"`
	Args     []string `json:"args"`
	// GasBudgetMist, when non-zero, overrides the bridge's default gas budget.
	GasBudgetMist uint64 `json:"gas_budget_mist,omitempty"`
}

// Target returns the fully qualified entry point (package::module::function).
func (c MoveCall) Target() string {
	return c.Package + "::" + c.Module + "::" + c.Function
}

// CreatedObject is one object emitted by a settled transaction's effects.
type CreatedObject struct {
	ObjectID   string `json:"object_id"`
	ObjectType string `json:"object_type"`
}

// IsCoin reports whether the created object is a currency object rather than
// a domain object.
func (o CreatedObject) IsCoin() bool {
	return strings.Contains(o.ObjectType, "::coin::Coin")
}

// Settlement is the confirmed result of a chain transaction.
type Settlement struct {
	Digest  string
	Created []CreatedObject
}

// CreatedObjectID returns the identifier of the first non-coin object created
// by the transaction, which is how new job, escrow, and submission object IDs
// are recovered from effects. Returns empty if no such object exists.
func (s *Settlement) CreatedObjectID() string {
	for _, obj := range s.Created {
		if !obj.IsCoin() {
			return obj.ObjectID
		}
	}
	return ""
}
