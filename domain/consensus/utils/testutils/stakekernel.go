package testutils

import (
	"sync/atomic"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
)

// FakeStakeKernelHasher is a model.StakeKernelHasher that hashes the identity
// hash once more and counts its calls.
type FakeStakeKernelHasher struct {
	calls int64
}

// StakeKernelHash implements model.StakeKernelHasher
func (k *FakeStakeKernelHasher) StakeKernelHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	atomic.AddInt64(&k.calls, 1)
	return hashes.Keccak256(consensushashing.HeaderHash(header).ByteSlice())
}

// Calls returns the number of StakeKernelHash calls
func (k *FakeStakeKernelHasher) Calls() int {
	return int(atomic.LoadInt64(&k.calls))
}
