// Package headerencoding builds the fixed-layout encodings of a block header
// that feed the Proof-of-Work hashes. They are hash inputs only and are never
// stored or transmitted.
//
// Integers are little endian. Hashes are written as their display string
// (see externalapi.DomainHash.String) into a zero-filled 65 byte field, so a
// well formed hash leaves a terminating zero byte. Longer strings are
// truncated to the field size; any change to this layout changes every block
// hash.
package headerencoding

import (
	"encoding/binary"
	"fmt"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
)

// HashStringFieldSize is the size of a hash string field, room for the 64
// hex characters and a terminating zero.
const HashStringFieldSize = externalapi.DomainHashStringSize + 1

// Field offsets of the truncated encoding.
const (
	VersionOffset        = 0
	HashPrevBlockOffset  = VersionOffset + 4
	HashMerkleRootOffset = HashPrevBlockOffset + HashStringFieldSize
	TimeOffset           = HashMerkleRootOffset + HashStringFieldSize
	BitsOffset           = TimeOffset + 4
	HeightOffset         = BitsOffset + 4

	// TruncatedHeaderSize is the size of the truncated encoding
	TruncatedHeaderSize = HeightOffset + 4
)

// Field offsets the full encoding appends to the truncated one.
const (
	NonceOffset   = TruncatedHeaderSize
	HashMixOffset = NonceOffset + 8

	// FullHeaderSize is the size of the full encoding
	FullHeaderSize = HashMixOffset + HashStringFieldSize
)

func init() {
	if TruncatedHeaderSize != 146 || FullHeaderSize != 219 {
		panic(fmt.Sprintf("header encoding layout drifted: truncated %d, full %d",
			TruncatedHeaderSize, FullHeaderSize))
	}
}

// TruncatedHeader holds the identity fields of a header as they are encoded.
// It excludes the nonce and mix hash, which makes it the message the
// memory-hard engine hashes together with a nonce.
type TruncatedHeader struct {
	Version        int32
	HashPrevBlock  string
	HashMerkleRoot string
	Time           uint32
	Bits           uint32
	Height         uint32
}

// FullHeader is TruncatedHeader plus the Proof-of-Work attestation fields.
type FullHeader struct {
	TruncatedHeader
	Nonce   uint64
	HashMix string
}

// NewTruncatedHeader captures the truncated encoding fields of header
func NewTruncatedHeader(header *externalapi.DomainBlockHeader) *TruncatedHeader {
	return &TruncatedHeader{
		Version:        header.Version,
		HashPrevBlock:  header.HashPrevBlock.String(),
		HashMerkleRoot: header.HashMerkleRoot.String(),
		Time:           header.Time,
		Bits:           header.Bits,
		Height:         header.Height,
	}
}

// NewFullHeader captures the full encoding fields of header
func NewFullHeader(header *externalapi.DomainBlockHeader) *FullHeader {
	return &FullHeader{
		TruncatedHeader: *NewTruncatedHeader(header),
		Nonce:           header.Nonce,
		HashMix:         header.HashMix.String(),
	}
}

// Serialize returns the TruncatedHeaderSize byte encoding
func (h *TruncatedHeader) Serialize() []byte {
	buf := make([]byte, TruncatedHeaderSize)
	h.putFields(buf)
	return buf
}

// Serialize returns the FullHeaderSize byte encoding
func (h *FullHeader) Serialize() []byte {
	buf := make([]byte, FullHeaderSize)
	h.putFields(buf)
	binary.LittleEndian.PutUint64(buf[NonceOffset:], h.Nonce)
	putHashString(buf[HashMixOffset:HashMixOffset+HashStringFieldSize], h.HashMix)
	return buf
}

func (h *TruncatedHeader) putFields(buf []byte) {
	binary.LittleEndian.PutUint32(buf[VersionOffset:], uint32(h.Version))
	putHashString(buf[HashPrevBlockOffset:HashPrevBlockOffset+HashStringFieldSize], h.HashPrevBlock)
	putHashString(buf[HashMerkleRootOffset:HashMerkleRootOffset+HashStringFieldSize], h.HashMerkleRoot)
	binary.LittleEndian.PutUint32(buf[TimeOffset:], h.Time)
	binary.LittleEndian.PutUint32(buf[BitsOffset:], h.Bits)
	binary.LittleEndian.PutUint32(buf[HeightOffset:], h.Height)
}

// putHashString copies as much of s as fits into the zeroed field.
func putHashString(field []byte, s string) {
	copy(field, s)
}
