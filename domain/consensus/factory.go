package consensus

import (
	"github.com/nrgnet/nrgd/domain/consensus/processes/blocksummary"
	"github.com/nrgnet/nrgd/domain/consensus/processes/stakesigner"
	"github.com/nrgnet/nrgd/domain/consensus/processes/stakevalidator"
	"github.com/nrgnet/nrgd/domain/consensus/processes/workhasher"
	"github.com/pkg/errors"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(config *Config, collaborators *Collaborators) (Consensus, error)
}

type factory struct{}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}

// NewConsensus instantiates a new Consensus
func (f *factory) NewConsensus(config *Config, collaborators *Collaborators) (Consensus, error) {
	if collaborators.PowEngine == nil || collaborators.Datasets == nil || collaborators.StakeKernel == nil {
		return nil, errors.New("a consensus requires a pow engine, a dataset provider and a stake kernel")
	}
	if config.EpochLength == 0 {
		return nil, errors.Errorf("network %s has a zero epoch length", config.Name)
	}

	// Processes
	workHasher := workhasher.New(
		collaborators.PowEngine,
		collaborators.Datasets,
		collaborators.StakeKernel,
		config.EpochLength)
	stakeSigner, err := stakesigner.New(config.SignerCacheSize)
	if err != nil {
		return nil, err
	}
	stakeValidator := stakevalidator.New(
		stakeSigner,
		config.MinStakeAmount)
	blockDescriber := blocksummary.New(workHasher)

	c := &consensus{
		powLimit: config.PowLimit(),

		workHasher:     workHasher,
		stakeSigner:    stakeSigner,
		stakeValidator: stakeValidator,
		blockDescriber: blockDescriber,
	}

	log.Infof("Consensus created for network %s", config.Name)
	return c, nil
}
