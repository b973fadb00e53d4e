package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// StakeKernelHasher computes the stake kernel hash of a Proof-of-Stake
// header. It stands in for the memory-hard hash in that mode.
type StakeKernelHasher interface {
	StakeKernelHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash
}
