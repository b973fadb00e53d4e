package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// PowDataset is a preloaded memory-hard hash dataset ("DAG"). It is valid for
// the blocks of exactly one epoch.
type PowDataset interface {
	Epoch() uint64
}

// PowCache is the light-verification cache of an epoch. It is far smaller
// than a dataset and is generated from the block height on demand.
type PowCache interface {
	Epoch() uint64
}

// PowHashResult is the output of one memory-hard hash evaluation
type PowHashResult struct {
	Value   *externalapi.DomainHash
	MixHash *externalapi.DomainHash
}

// PowEngine is the external memory-hard hash engine. Full and light hashing
// must return identical results for the same input.
type PowEngine interface {
	FullHash(dataset PowDataset, headerHash *externalapi.DomainHash, nonce uint64) *PowHashResult
	LightHash(cache PowCache, headerHash *externalapi.DomainHash, nonce uint64) *PowHashResult
	CacheForHeight(height uint32) PowCache
}

// DatasetLease is a read-only, reference-counted hold on the active dataset.
// Release must be called exactly once.
type DatasetLease interface {
	Dataset() PowDataset
	Release()
}

// DatasetProvider hands out leases on the currently active dataset, if any.
type DatasetProvider interface {
	Acquire() (DatasetLease, bool)
}
