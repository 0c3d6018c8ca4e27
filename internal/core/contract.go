package core

import "strconv"

// Contract surface of the marketplace package. The package address and module
// names are fixed per deployment and configured once at startup.
const (
	ModuleJob        = "job"
	ModuleEscrow     = "escrow"
	ModuleSubmission = "submission"
)

// Contract builds MoveCall descriptions for the marketplace entry points.
// It carries the deployed package address so callers never touch it.
type Contract struct {
	pkg string
}

// NewContract constructs a call builder for the given package address.
func NewContract(packageID string) Contract {
	return Contract{pkg: packageID}
}

// CreateJob emits a new on-chain job object priced in mist.
func (c Contract) CreateJob(priceMist uint64) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleJob,
		Function: "create_job",
		Args:     []string{strconv.FormatUint(priceMist, 10)},
	}
}

// CreateEscrow locks funds against a job. fundsMist is split from the
// client's gas coin by the bridge.
func (c Contract) CreateEscrow(jobObjectID string, fundsMist uint64) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleEscrow,
		Function: "create_escrow",
		Args:     []string{jobObjectID, strconv.FormatUint(fundsMist, 10)},
	}
}

// AcceptJob claims a funded job for the signing freelancer.
func (c Contract) AcceptJob(jobObjectID string) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleJob,
		Function: "accept_job",
		Args:     []string{jobObjectID},
	}
}

// SubmitWork records the delivery proof and key on-chain.
func (c Contract) SubmitWork(jobObjectID, proof, key string) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleSubmission,
		Function: "submit_work",
		Args:     []string{jobObjectID, proof, key},
	}
}

// ReleaseFunds pays the freelancer out of escrow.
func (c Contract) ReleaseFunds(escrowObjectID, jobObjectID string) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleEscrow,
		Function: "release_funds",
		Args:     []string{escrowObjectID, jobObjectID},
	}
}

// Refund returns escrowed funds to the client.
func (c Contract) Refund(escrowObjectID string) MoveCall {
	return MoveCall{
		Package:  c.pkg,
		Module:   ModuleEscrow,
		Function: "refund",
		Args:     []string{escrowObjectID},
	}
}
