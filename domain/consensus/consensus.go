package consensus

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
	"github.com/nrgnet/nrgd/domain/consensus/utils/pow"
	"github.com/nrgnet/nrgd/infrastructure/logger"
)

// Consensus is the block identity and stake acceptance core of a node
type Consensus interface {
	IdentityHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash
	WorkHash(header *externalapi.DomainBlockHeader) *model.WorkResult
	SealWorkHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash
	VerifyWorkHash(header *externalapi.DomainBlockHeader) (*externalapi.DomainHash, bool)
	CheckProofOfWork(header *externalapi.DomainBlockHeader) bool

	SignHeader(header *externalapi.DomainBlockHeader, keyStore model.KeyStore) error
	RecoverSignerKey(header *externalapi.DomainBlockHeader) externalapi.DomainPublicKey
	VerifySignature(header *externalapi.DomainBlockHeader, expectedKeyID externalapi.DomainKeyID) bool
	HasValidStake(block *externalapi.DomainBlock) bool

	DescribeBlock(block *externalapi.DomainBlock) string
}

type consensus struct {
	powLimit *big.Int

	workHasher     model.WorkHasher
	stakeSigner    model.StakeSigner
	stakeValidator model.StakeValidator
	blockDescriber model.BlockDescriber
}

// IdentityHash returns the hash that names header
func (s *consensus) IdentityHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	return consensushashing.HeaderHash(header)
}

// WorkHash returns the work hash of header without modifying it
func (s *consensus) WorkHash(header *externalapi.DomainBlockHeader) *model.WorkResult {
	return s.workHasher.WorkHash(header)
}

// SealWorkHash returns the work hash of a header being mined and stores the
// resulting mix hash in it
func (s *consensus) SealWorkHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	return s.workHasher.SealWorkHash(header)
}

// VerifyWorkHash returns the work hash of a received header and whether its
// mix hash is the one the engine produces
func (s *consensus) VerifyWorkHash(header *externalapi.DomainBlockHeader) (*externalapi.DomainHash, bool) {
	return s.workHasher.VerifyWorkHash(header)
}

// CheckProofOfWork reports whether a Proof-of-Work header carries a valid mix
// hash and a work hash meeting both its own bits and the network limit.
// Proof-of-Stake headers prove no work and are always rejected.
func (s *consensus) CheckProofOfWork(header *externalapi.DomainBlockHeader) bool {
	onEnd := logger.LogAndMeasureExecutionTime(log, "CheckProofOfWork")
	defer onEnd()

	if header.Mode() != externalapi.BlockModeProofOfWork {
		log.Debugf("Header at height %d is not a Proof-of-Work header", header.Height)
		return false
	}

	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 || target.Cmp(s.powLimit) > 0 {
		log.Debugf("Header at height %d has target %064x outside (0, %064x]",
			header.Height, target, s.powLimit)
		return false
	}

	workHash, mixHashMatches := s.workHasher.VerifyWorkHash(header)
	if !mixHashMatches {
		return false
	}
	if !pow.CheckProofOfWorkByBits(workHash, header.Bits) {
		log.Debugf("Work hash %s of header at height %d is above its target", workHash, header.Height)
		return false
	}
	return true
}

// SignHeader signs a Proof-of-Stake header with the key store's key
func (s *consensus) SignHeader(header *externalapi.DomainBlockHeader, keyStore model.KeyStore) error {
	return s.stakeSigner.SignHeader(header, keyStore)
}

// RecoverSignerKey returns the signer key of header, recovering and memoizing
// it if needed
func (s *consensus) RecoverSignerKey(header *externalapi.DomainBlockHeader) externalapi.DomainPublicKey {
	return s.stakeSigner.RecoverSignerKey(header)
}

// VerifySignature reports whether header is signed by expectedKeyID
func (s *consensus) VerifySignature(header *externalapi.DomainBlockHeader,
	expectedKeyID externalapi.DomainKeyID) bool {

	return s.stakeSigner.VerifySignature(header, expectedKeyID)
}

// HasValidStake reports whether the stake claim of block is structurally
// consistent
func (s *consensus) HasValidStake(block *externalapi.DomainBlock) bool {
	return s.stakeValidator.HasValidStake(block)
}

// DescribeBlock returns a human readable summary of block
func (s *consensus) DescribeBlock(block *externalapi.DomainBlock) string {
	return s.blockDescriber.Describe(block)
}
