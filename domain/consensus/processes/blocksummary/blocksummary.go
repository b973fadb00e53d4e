package blocksummary

import (
	"fmt"
	"strings"

	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

type blockDescriber struct {
	workHasher model.WorkHasher
}

// New instantiates a new BlockDescriber
func New(workHasher model.WorkHasher) model.BlockDescriber {
	return &blockDescriber{workHasher: workHasher}
}

// Describe renders block as one header line followed by one indented line
// per transaction. Proof-of-Work headers also show their work hash, which is
// computed without touching the header.
func (bd *blockDescriber) Describe(block *externalapi.DomainBlock) string {
	header := block.Header
	hash := consensushashing.BlockHash(block)

	var builder strings.Builder
	switch mode := header.Mode(); mode {
	case externalapi.BlockModeProofOfWork:
		workHash, _ := bd.workHasher.VerifyWorkHash(header)
		fmt.Fprintf(&builder, "Block(hash=%s, hashPow=%s, version=0x%08x, hashPrevBlock=%s, "+
			"hashMerkleRoot=%s, time=%d, bits=%08x, height=%d, hashMix=%s, nonce=%d, txs=%d)\n",
			hash, workHash, uint32(header.Version), &header.HashPrevBlock, &header.HashMerkleRoot,
			header.Time, header.Bits, header.Height, &header.HashMix, header.Nonce, len(block.Transactions))

	case externalapi.BlockModeProofOfStake:
		fmt.Fprintf(&builder, "Block(hash=%s, version=0x%08x, hashPrevBlock=%s, hashMerkleRoot=%s, "+
			"time=%d, bits=%08x, height=%d, hashMix=%s, nonce=%d, stakeHash=%s, stakeIndex=%d, "+
			"stakePublicKey=%d, blockSignature=%d, txs=%d)\n",
			hash, uint32(header.Version), &header.HashPrevBlock, &header.HashMerkleRoot,
			header.Time, header.Bits, header.Height, &header.HashMix, header.Nonce,
			&header.StakeHash, header.StakeIndex, header.StakePublicKey.Len(), len(header.BlockSignature),
			len(block.Transactions))

	default:
		panic(errors.Errorf("unknown block mode %s", mode))
	}

	for _, tx := range block.Transactions {
		fmt.Fprintf(&builder, "  %s %s\n", consensushashing.TransactionID(tx), tx)
	}
	return builder.String()
}
