package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// WorkResult is the work hash of a header together with the mix hash the
// memory-hard engine produced for it. MixHash is nil in Proof-of-Stake mode.
type WorkResult struct {
	Value   *externalapi.DomainHash
	MixHash *externalapi.DomainHash
}

// WorkHasher computes the value proving work or stake for a header
type WorkHasher interface {
	WorkHash(header *externalapi.DomainBlockHeader) *WorkResult
	SealWorkHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash
	VerifyWorkHash(header *externalapi.DomainBlockHeader) (*externalapi.DomainHash, bool)
}
