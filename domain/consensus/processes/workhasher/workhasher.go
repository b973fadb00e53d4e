package workhasher

import (
	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
	"github.com/nrgnet/nrgd/domain/consensus/utils/headerencoding"
	"github.com/nrgnet/nrgd/infrastructure/logger"
	"github.com/pkg/errors"
)

type workHasher struct {
	engine      model.PowEngine
	datasets    model.DatasetProvider
	stakeKernel model.StakeKernelHasher
	epochLength uint32
}

// New instantiates a new WorkHasher. Proof-of-Work headers are hashed by
// engine, with the dataset leased from datasets when it serves the header's
// epoch; Proof-of-Stake headers are hashed by stakeKernel.
func New(
	engine model.PowEngine,
	datasets model.DatasetProvider,
	stakeKernel model.StakeKernelHasher,
	epochLength uint32) model.WorkHasher {

	return &workHasher{
		engine:      engine,
		datasets:    datasets,
		stakeKernel: stakeKernel,
		epochLength: epochLength,
	}
}

// WorkHash returns the work hash of header and, for Proof-of-Work headers,
// the mix hash the engine produced. header is not modified.
func (wh *workHasher) WorkHash(header *externalapi.DomainBlockHeader) *model.WorkResult {
	switch mode := header.Mode(); mode {
	case externalapi.BlockModeProofOfWork:
		result := wh.powHash(header)
		return &model.WorkResult{Value: result.Value, MixHash: result.MixHash}

	case externalapi.BlockModeProofOfStake:
		return &model.WorkResult{Value: wh.stakeKernel.StakeKernelHash(header)}

	default:
		panic(errors.Errorf("unknown block mode %s", mode))
	}
}

// SealWorkHash is WorkHash for a header being mined: the engine's mix hash
// is written into header.HashMix. Proof-of-Stake headers are not modified.
func (wh *workHasher) SealWorkHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	result := wh.WorkHash(header)
	if result.MixHash != nil {
		header.HashMix = *result.MixHash
	}
	return result.Value
}

// VerifyWorkHash is WorkHash for a received header: it also reports whether
// the header's mix hash matches the one the engine produced. The header is
// never modified. Proof-of-Stake headers carry no mix hash and always match.
func (wh *workHasher) VerifyWorkHash(header *externalapi.DomainBlockHeader) (*externalapi.DomainHash, bool) {
	result := wh.WorkHash(header)
	if result.MixHash == nil {
		return result.Value, true
	}

	mixHashMatches := result.MixHash.Equal(&header.HashMix)
	if !mixHashMatches {
		log.Debugf("Header at height %d carries mix hash %s, the engine produced %s",
			header.Height, &header.HashMix, result.MixHash)
	}
	return result.Value, mixHashMatches
}

func (wh *workHasher) powHash(header *externalapi.DomainBlockHeader) *model.PowHashResult {
	onEnd := logger.LogAndMeasureExecutionTime(log, "workHasher.powHash")
	defer onEnd()

	headerHash := hashes.Keccak256(headerencoding.NewTruncatedHeader(header).Serialize())
	epoch := uint64(header.Height / wh.epochLength)

	lease, ok := wh.datasets.Acquire()
	if ok {
		defer lease.Release()
		dataset := lease.Dataset()
		if dataset.Epoch() == epoch {
			log.Tracef("Hashing height %d with the dataset of epoch %d", header.Height, epoch)
			return wh.engine.FullHash(dataset, headerHash, header.Nonce)
		}
		log.Tracef("The active dataset serves epoch %d, not %d. Hashing height %d with a light cache",
			dataset.Epoch(), epoch, header.Height)
	} else {
		log.Tracef("No dataset is loaded. Hashing height %d with a light cache", header.Height)
	}

	return wh.engine.LightHash(wh.engine.CacheForHeight(header.Height), headerHash, header.Nonce)
}
