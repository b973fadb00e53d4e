package testutils

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
)

// FakeDataset is a model.PowDataset of a fixed epoch. Close counts how many
// times it was closed.
type FakeDataset struct {
	epoch  uint64
	closed int32
}

// NewFakeDataset returns a FakeDataset of the given epoch
func NewFakeDataset(epoch uint64) *FakeDataset {
	return &FakeDataset{epoch: epoch}
}

// Epoch implements model.PowDataset
func (d *FakeDataset) Epoch() uint64 {
	return d.epoch
}

// Close implements io.Closer
func (d *FakeDataset) Close() error {
	atomic.AddInt32(&d.closed, 1)
	return nil
}

// Closed returns the number of Close calls
func (d *FakeDataset) Closed() int {
	return int(atomic.LoadInt32(&d.closed))
}

type fakeCache struct {
	epoch uint64
}

func (c *fakeCache) Epoch() uint64 {
	return c.epoch
}

// FakePowEngine is a deterministic model.PowEngine built on Keccak-256. Its
// full and light paths agree, as a real engine's must, and it counts how
// often each is taken.
type FakePowEngine struct {
	epochLength uint32

	fullCalls  int64
	lightCalls int64
	cacheCalls int64
}

// NewFakePowEngine returns a FakePowEngine whose caches are keyed by
// height / epochLength
func NewFakePowEngine(epochLength uint32) *FakePowEngine {
	return &FakePowEngine{epochLength: epochLength}
}

// FullHash implements model.PowEngine
func (e *FakePowEngine) FullHash(dataset model.PowDataset, headerHash *externalapi.DomainHash, nonce uint64) *model.PowHashResult {
	atomic.AddInt64(&e.fullCalls, 1)
	return fakeHash(dataset.Epoch(), headerHash, nonce)
}

// LightHash implements model.PowEngine
func (e *FakePowEngine) LightHash(cache model.PowCache, headerHash *externalapi.DomainHash, nonce uint64) *model.PowHashResult {
	atomic.AddInt64(&e.lightCalls, 1)
	return fakeHash(cache.Epoch(), headerHash, nonce)
}

// CacheForHeight implements model.PowEngine
func (e *FakePowEngine) CacheForHeight(height uint32) model.PowCache {
	atomic.AddInt64(&e.cacheCalls, 1)
	return &fakeCache{epoch: uint64(height / e.epochLength)}
}

// FullCalls returns the number of FullHash calls
func (e *FakePowEngine) FullCalls() int {
	return int(atomic.LoadInt64(&e.fullCalls))
}

// LightCalls returns the number of LightHash calls
func (e *FakePowEngine) LightCalls() int {
	return int(atomic.LoadInt64(&e.lightCalls))
}

// CacheCalls returns the number of CacheForHeight calls
func (e *FakePowEngine) CacheCalls() int {
	return int(atomic.LoadInt64(&e.cacheCalls))
}

// TotalCalls returns the number of calls of any engine method
func (e *FakePowEngine) TotalCalls() int {
	return e.FullCalls() + e.LightCalls() + e.CacheCalls()
}

func fakeHash(epoch uint64, headerHash *externalapi.DomainHash, nonce uint64) *model.PowHashResult {
	var suffix [16]byte
	binary.LittleEndian.PutUint64(suffix[:8], epoch)
	binary.LittleEndian.PutUint64(suffix[8:], nonce)

	mixWriter := hashes.NewBlockHashWriter()
	mixWriter.InfallibleWrite(headerHash.ByteSlice())
	mixWriter.InfallibleWrite(suffix[:])
	mixHash := mixWriter.Finalize()

	valueWriter := hashes.NewBlockHashWriter()
	valueWriter.InfallibleWrite(headerHash.ByteSlice())
	valueWriter.InfallibleWrite(mixHash.ByteSlice())
	return &model.PowHashResult{
		Value:   valueWriter.Finalize(),
		MixHash: mixHash,
	}
}
