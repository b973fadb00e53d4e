package consensushashing

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/constants"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
	"github.com/nrgnet/nrgd/domain/consensus/utils/headerencoding"
	"github.com/nrgnet/nrgd/domain/consensus/utils/serialization"
)

func hashFromByte(b byte) externalapi.DomainHash {
	var array [externalapi.DomainHashSize]byte
	for i := range array {
		array[i] = b
	}
	return *externalapi.NewDomainHashFromByteArray(&array)
}

func powHeader() *externalapi.DomainBlockHeader {
	return &externalapi.DomainBlockHeader{
		Version:        constants.BlockVersion,
		HashPrevBlock:  hashFromByte(1),
		HashMerkleRoot: hashFromByte(2),
		Time:           1554000000,
		Bits:           0x207fffff,
		Height:         42,
		Nonce:          0xdeadbeef,
		HashMix:        hashFromByte(3),
	}
}

func posHeader() *externalapi.DomainBlockHeader {
	header := powHeader()
	header.Version |= constants.BlockVersionProofOfStakeBit
	header.StakeHash = hashFromByte(4)
	header.StakeIndex = 1
	header.BlockSignature = bytes.Repeat([]byte{7}, 65)
	return header
}

func TestProofOfWorkHeaderHash(t *testing.T) {
	header := powHeader()
	expected := hashes.Keccak256(headerencoding.NewFullHeader(header).Serialize())
	if hash := HeaderHash(header); !hash.Equal(expected) {
		t.Fatalf("HeaderHash: got %s, want %s", hash, expected)
	}

	nonceChanged := header.Clone()
	nonceChanged.Nonce++
	if HeaderHash(nonceChanged).Equal(HeaderHash(header)) {
		t.Errorf("the nonce does not affect a Proof-of-Work identity")
	}

	mixChanged := header.Clone()
	mixChanged.HashMix = hashFromByte(9)
	if HeaderHash(mixChanged).Equal(HeaderHash(header)) {
		t.Errorf("the mix hash does not affect a Proof-of-Work identity")
	}

	stakeChanged := header.Clone()
	stakeChanged.StakeHash = hashFromByte(9)
	stakeChanged.BlockSignature = []byte{1}
	if !HeaderHash(stakeChanged).Equal(HeaderHash(header)) {
		t.Errorf("stake fields affect a Proof-of-Work identity")
	}
}

func TestProofOfStakeHeaderHash(t *testing.T) {
	header := posHeader()

	var buf bytes.Buffer
	err := serialization.SerializeHeaderForHash(&buf, header)
	if err != nil {
		t.Fatalf("SerializeHeaderForHash: %+v", err)
	}
	expected := hashes.Keccak256(buf.Bytes())
	if hash := HeaderHash(header); !hash.Equal(expected) {
		t.Fatalf("HeaderHash: got %s, want %s", hash, expected)
	}

	resigned := header.Clone()
	resigned.BlockSignature = bytes.Repeat([]byte{8}, 65)
	resigned.StakePublicKey = externalapi.NewDomainPublicKey([]byte{2, 1})
	if !HeaderHash(resigned).Equal(HeaderHash(header)) {
		t.Errorf("the signature affects a Proof-of-Stake identity")
	}

	mutations := []func(h *externalapi.DomainBlockHeader){
		func(h *externalapi.DomainBlockHeader) { h.StakeHash = hashFromByte(5) },
		func(h *externalapi.DomainBlockHeader) { h.StakeIndex++ },
		func(h *externalapi.DomainBlockHeader) { h.Time++ },
		func(h *externalapi.DomainBlockHeader) { h.Height++ },
		func(h *externalapi.DomainBlockHeader) { h.HashMerkleRoot = hashFromByte(6) },
	}
	for i, mutate := range mutations {
		mutated := header.Clone()
		mutate(mutated)
		if HeaderHash(mutated).Equal(HeaderHash(header)) {
			t.Errorf("mutation %d does not affect the Proof-of-Stake identity", i)
		}
	}
}

func TestModesHashDifferently(t *testing.T) {
	pow := powHeader()
	pos := pow.Clone()
	pos.Version |= constants.BlockVersionProofOfStakeBit

	if HeaderHash(pow).Equal(HeaderHash(pos)) {
		t.Fatalf("a Proof-of-Stake header shares its identity with the Proof-of-Work header")
	}

	block := &externalapi.DomainBlock{Header: pos}
	if !BlockHash(block).Equal(HeaderHash(pos)) {
		t.Fatalf("BlockHash differs from HeaderHash")
	}
}

func TestTransactionID(t *testing.T) {
	tx := &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: hashFromByte(1), Index: 2},
			SignatureScript:  []byte{1, 2},
			Sequence:         constants.MaxTxInSequenceNum,
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:           1564,
			ScriptPublicKey: []byte{1, 2, 3, 4, 5},
		}},
		LockTime: 54,
	}

	var buf bytes.Buffer
	err := serialization.SerializeTransaction(&buf, tx)
	if err != nil {
		t.Fatalf("SerializeTransaction: %+v", err)
	}
	id := TransactionID(tx)
	if !bytes.Equal(id.ByteSlice(), chainhash.DoubleHashB(buf.Bytes())) {
		t.Fatalf("TransactionID is not the double SHA-256 of the serialization")
	}

	changed := tx.Clone()
	changed.LockTime++
	ids := TransactionIDs([]*externalapi.DomainTransaction{tx, changed})
	if !ids[0].Equal(id) || ids[1].Equal(id) {
		t.Fatalf("unexpected TransactionIDs result %v", ids)
	}
}
