package externalapi

import "bytes"

// DomainBlock represents an NRG block. Transaction order is significant:
// index 0 is the coinbase and, in Proof-of-Stake blocks, index 1 is the
// stake transaction.
type DomainBlock struct {
	Header       *DomainBlockHeader
	Transactions []*DomainTransaction
}

// Clone returns a clone of DomainBlock
func (block *DomainBlock) Clone() *DomainBlock {
	transactionClone := make([]*DomainTransaction, len(block.Transactions))
	for i, tx := range block.Transactions {
		transactionClone[i] = tx.Clone()
	}

	return &DomainBlock{
		Header:       block.Header.Clone(),
		Transactions: transactionClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = DomainBlock{&DomainBlockHeader{}, []*DomainTransaction{}}

// Equal returns whether block equals to other
func (block *DomainBlock) Equal(other *DomainBlock) bool {
	if block == nil || other == nil {
		return block == other
	}

	if len(block.Transactions) != len(other.Transactions) {
		return false
	}

	if !block.Header.Equal(other.Header) {
		return false
	}

	for i, tx := range block.Transactions {
		if !tx.Equal(other.Transactions[i]) {
			return false
		}
	}

	return true
}

// CoinBase returns the coinbase transaction, or nil if the block has no
// transactions.
func (block *DomainBlock) CoinBase() *DomainTransaction {
	if len(block.Transactions) == 0 {
		return nil
	}
	return block.Transactions[0]
}

// HasCoinBase returns whether the first transaction is a coinbase.
func (block *DomainBlock) HasCoinBase() bool {
	coinbase := block.CoinBase()
	return coinbase != nil && coinbase.IsCoinBase()
}

// Stake returns the stake transaction, or nil if the block has fewer than two
// transactions. It is only meaningful for Proof-of-Stake blocks.
func (block *DomainBlock) Stake() *DomainTransaction {
	if len(block.Transactions) < 2 {
		return nil
	}
	return block.Transactions[1]
}

// DomainBlockHeader represents the header part of an NRG block.
//
// Nonce and HashMix are only meaningful for Proof-of-Work blocks. StakeHash,
// StakeIndex, StakePublicKey and BlockSignature form the stake claim of
// Proof-of-Stake blocks; StakePublicKey may be empty until it is recovered
// from BlockSignature.
type DomainBlockHeader struct {
	Version        int32
	HashPrevBlock  DomainHash
	HashMerkleRoot DomainHash
	Time           uint32
	Bits           uint32
	Height         uint32
	Nonce          uint64
	HashMix        DomainHash
	StakeHash      DomainHash
	StakeIndex     uint32
	StakePublicKey DomainPublicKey
	BlockSignature []byte
}

// Mode returns the consensus mode encoded in the header version.
func (header *DomainBlockHeader) Mode() BlockMode {
	return BlockModeFromVersion(header.Version)
}

// StakeOutpoint returns the outpoint claimed as stake input.
func (header *DomainBlockHeader) StakeOutpoint() *DomainOutpoint {
	return NewDomainOutpoint(&header.StakeHash, header.StakeIndex)
}

// Clone returns a clone of DomainBlockHeader
func (header *DomainBlockHeader) Clone() *DomainBlockHeader {
	signatureClone := make([]byte, len(header.BlockSignature))
	copy(signatureClone, header.BlockSignature)

	return &DomainBlockHeader{
		Version:        header.Version,
		HashPrevBlock:  header.HashPrevBlock,
		HashMerkleRoot: header.HashMerkleRoot,
		Time:           header.Time,
		Bits:           header.Bits,
		Height:         header.Height,
		Nonce:          header.Nonce,
		HashMix:        header.HashMix,
		StakeHash:      header.StakeHash,
		StakeIndex:     header.StakeIndex,
		StakePublicKey: NewDomainPublicKey(header.StakePublicKey.serialized),
		BlockSignature: signatureClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &DomainBlockHeader{0, DomainHash{}, DomainHash{}, 0, 0, 0, 0,
	DomainHash{}, DomainHash{}, 0, DomainPublicKey{}, []byte{}}

// Equal returns whether header equals to other
func (header *DomainBlockHeader) Equal(other *DomainBlockHeader) bool {
	if header == nil || other == nil {
		return header == other
	}

	if header.Version != other.Version {
		return false
	}

	if !header.HashPrevBlock.Equal(&other.HashPrevBlock) {
		return false
	}

	if !header.HashMerkleRoot.Equal(&other.HashMerkleRoot) {
		return false
	}

	if header.Time != other.Time || header.Bits != other.Bits || header.Height != other.Height {
		return false
	}

	if header.Nonce != other.Nonce || !header.HashMix.Equal(&other.HashMix) {
		return false
	}

	if !header.StakeHash.Equal(&other.StakeHash) || header.StakeIndex != other.StakeIndex {
		return false
	}

	if !header.StakePublicKey.Equal(other.StakePublicKey) {
		return false
	}

	return bytes.Equal(header.BlockSignature, other.BlockSignature)
}
