package stakevalidator

import (
	"bytes"

	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/txscript"
)

type stakeValidator struct {
	stakeSigner    model.StakeSigner
	minStakeAmount uint64
}

// New instantiates a new StakeValidator
func New(stakeSigner model.StakeSigner, minStakeAmount uint64) model.StakeValidator {
	return &stakeValidator{
		stakeSigner:    stakeSigner,
		minStakeAmount: minStakeAmount,
	}
}

// HasValidStake reports whether the stake claim of block is consistent with
// its transactions: the block is signed by the staker, the coinbase and every
// stake output pay the staker's pay-to-key-id script, the stake transaction
// spends the claimed outpoint and returns at least the minimum stake.
//
// Whether the claimed outpoint exists, is mature and is unspent is left to
// full block validation. The signer key may be recovered and memoized on the
// header as a side effect.
func (sv *stakeValidator) HasValidStake(block *externalapi.DomainBlock) bool {
	header := block.Header
	if header.Mode() != externalapi.BlockModeProofOfStake {
		log.Debugf("Block at height %d is not a Proof-of-Stake block", header.Height)
		return false
	}
	if len(block.Transactions) < 2 {
		log.Debugf("Block at height %d has %d transactions, a staking block needs at least 2",
			header.Height, len(block.Transactions))
		return false
	}
	if len(header.BlockSignature) == 0 {
		log.Debugf("Block at height %d is not signed", header.Height)
		return false
	}

	signerKey := sv.stakeSigner.RecoverSignerKey(header)
	if !signerKey.IsValid() {
		log.Debugf("Block at height %d has no valid signer key", header.Height)
		return false
	}
	rewardScript := txscript.PayToKeyIDScript(signerKey.KeyID())

	coinbase := block.CoinBase()
	if len(coinbase.Outputs) == 0 || !bytes.Equal(coinbase.Outputs[0].ScriptPublicKey, rewardScript) {
		log.Debugf("The coinbase of block at height %d does not pay the staker %s",
			header.Height, signerKey.KeyID())
		return false
	}

	stake := block.Stake()
	if len(stake.Inputs) == 0 || len(stake.Outputs) == 0 {
		log.Debugf("The stake transaction of block at height %d has %d inputs and %d outputs",
			header.Height, len(stake.Inputs), len(stake.Outputs))
		return false
	}
	if !stake.Inputs[0].PreviousOutpoint.Equal(header.StakeOutpoint()) {
		log.Debugf("The stake transaction of block at height %d spends %s, the header claims %s",
			header.Height, stake.Inputs[0].PreviousOutpoint, header.StakeOutpoint())
		return false
	}

	var totalStake uint64
	for i, output := range stake.Outputs {
		if !bytes.Equal(output.ScriptPublicKey, rewardScript) {
			log.Debugf("Output %d of the stake transaction of block at height %d does not pay the staker",
				i, header.Height)
			return false
		}
		if totalStake+output.Value < totalStake {
			log.Debugf("The stake outputs of block at height %d overflow", header.Height)
			return false
		}
		totalStake += output.Value
	}
	if totalStake < sv.minStakeAmount {
		log.Debugf("Block at height %d stakes %d, below the minimum of %d",
			header.Height, totalStake, sv.minStakeAmount)
		return false
	}

	return true
}
