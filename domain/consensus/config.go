package consensus

import (
	"github.com/nrgnet/nrgd/domain/chainconfig"
	"github.com/nrgnet/nrgd/domain/consensus/model"
)

// Config is a descriptor for consensus configuration
type Config struct {
	chainconfig.Params

	// SignerCacheSize bounds the number of recovered stake signers kept in
	// memory. Zero selects the default.
	SignerCacheSize int
}

// Collaborators are the external components the consensus core hashes with.
type Collaborators struct {
	// PowEngine is the memory-hard hash engine
	PowEngine model.PowEngine

	// Datasets hands out the active dataset. It may never hold one, in
	// which case every Proof-of-Work hash takes the light path.
	Datasets model.DatasetProvider

	// StakeKernel computes the work hash of Proof-of-Stake headers
	StakeKernel model.StakeKernelHasher
}
