package serialization

import (
	"io"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// MaxBlockSignatureLength caps the signature field of a stored header.
const MaxBlockSignatureLength = 80

// SerializeHeaderForHash writes the Proof-of-Stake identity hash input of
// header: every consensus field and the claimed stake outpoint. The
// signature is left out, since it signs this very serialization, and so is
// the public key, which is recovered from the signature.
func SerializeHeaderForHash(w io.Writer, header *externalapi.DomainBlockHeader) error {
	return serializeHeader(w, header, header.Mode(), false)
}

// SerializeHeader writes header in its storage format, which is the hash
// serialization followed, for Proof-of-Stake headers, by the block signature.
func SerializeHeader(w io.Writer, header *externalapi.DomainBlockHeader) error {
	return serializeHeader(w, header, header.Mode(), true)
}

func serializeHeader(w io.Writer, header *externalapi.DomainBlockHeader, mode externalapi.BlockMode,
	includeSignature bool) error {

	err := WriteElements(w, header.Version, &header.HashPrevBlock, &header.HashMerkleRoot,
		header.Time, header.Bits, header.Height, &header.HashMix, header.Nonce)
	if err != nil {
		return err
	}

	switch mode {
	case externalapi.BlockModeProofOfWork:
		return nil
	case externalapi.BlockModeProofOfStake:
		err := WriteElements(w, &header.StakeHash, header.StakeIndex)
		if err != nil {
			return err
		}
		if !includeSignature {
			return nil
		}
		return WriteVarBytes(w, header.BlockSignature)
	default:
		return errors.Errorf("unknown block mode %d", mode)
	}
}

// DeserializeHeader reads a header written by SerializeHeader. The stake
// public key is left empty; it is recovered from the signature on demand.
func DeserializeHeader(r io.Reader) (*externalapi.DomainBlockHeader, error) {
	header := &externalapi.DomainBlockHeader{}
	err := ReadElements(r, &header.Version, &header.HashPrevBlock, &header.HashMerkleRoot,
		&header.Time, &header.Bits, &header.Height, &header.HashMix, &header.Nonce)
	if err != nil {
		return nil, err
	}

	if header.Mode() == externalapi.BlockModeProofOfWork {
		return header, nil
	}

	err = ReadElements(r, &header.StakeHash, &header.StakeIndex)
	if err != nil {
		return nil, err
	}
	signature, err := ReadVarBytes(r, "block signature")
	if err != nil {
		return nil, err
	}
	if len(signature) > MaxBlockSignatureLength {
		return nil, errors.Wrapf(errMalformed, "block signature of %d bytes exceeds %d",
			len(signature), MaxBlockSignatureLength)
	}
	header.BlockSignature = signature
	return header, nil
}
