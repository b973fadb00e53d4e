package consensushashing

import (
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
	"github.com/nrgnet/nrgd/domain/consensus/utils/headerencoding"
	"github.com/nrgnet/nrgd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// BlockHash returns the given block's identity hash
func BlockHash(block *externalapi.DomainBlock) *externalapi.DomainHash {
	return HeaderHash(block.Header)
}

// HeaderHash returns the given header's identity hash.
//
// A Proof-of-Work header is identified by the Keccak-256 of its full fixed
// layout encoding, so the nonce and mix hash are part of its identity. A
// Proof-of-Stake header is identified by the Keccak-256 of its hash
// serialization, which covers the stake claim but not the signature.
func HeaderHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	switch mode := header.Mode(); mode {
	case externalapi.BlockModeProofOfWork:
		return hashes.Keccak256(headerencoding.NewFullHeader(header).Serialize())

	case externalapi.BlockModeProofOfStake:
		writer := hashes.NewBlockHashWriter()
		err := serialization.SerializeHeaderForHash(writer, header)
		if err != nil {
			// The writer never fails and every field has an encoding, so this
			// can only be a programming error.
			panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
		}
		return writer.Finalize()

	default:
		panic(errors.Errorf("unknown block mode %s", mode))
	}
}
