package testutils

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/constants"
	"github.com/nrgnet/nrgd/domain/consensus/utils/merkle"
	"github.com/nrgnet/nrgd/domain/consensus/utils/txscript"
)

// StakeKey returns a deterministic private key derived from seed.
func StakeKey(t *testing.T, seed byte) *btcec.PrivateKey {
	scalar := make([]byte, btcec.PrivKeyBytesLen)
	scalar[0] = 0x5a
	scalar[btcec.PrivKeyBytesLen-1] = seed
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), scalar)
	if key == nil {
		t.Fatalf("StakeKey: failed to derive a key from seed %d", seed)
	}
	return key
}

// HashFromByte returns a hash whose every byte is b
func HashFromByte(b byte) externalapi.DomainHash {
	var array [externalapi.DomainHashSize]byte
	for i := range array {
		array[i] = b
	}
	return *externalapi.NewDomainHashFromByteArray(&array)
}

// CoinbaseTransaction returns a coinbase paying value to script
func CoinbaseTransaction(script []byte, value uint64) *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{Index: constants.CoinbaseOutpointIndex},
			SignatureScript:  []byte{0x01, 0x68},
			Sequence:         constants.MaxTxInSequenceNum,
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Value:           value,
			ScriptPublicKey: script,
		}},
	}
}

// StakeTransaction returns a transaction spending stakeInput and paying each
// of values back to script.
func StakeTransaction(stakeInput *externalapi.DomainOutpoint, script []byte, values ...uint64) *externalapi.DomainTransaction {
	outputs := make([]*externalapi.DomainTransactionOutput, len(values))
	for i, value := range values {
		outputs[i] = &externalapi.DomainTransactionOutput{
			Value:           value,
			ScriptPublicKey: script,
		}
	}
	return &externalapi.DomainTransaction{
		Version: constants.TransactionVersion,
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: *stakeInput,
			SignatureScript:  []byte{0x47, 0x30},
			Sequence:         constants.MaxTxInSequenceNum,
		}},
		Outputs: outputs,
	}
}

// ProofOfWorkBlock returns a Proof-of-Work block at height with a single
// coinbase.
func ProofOfWorkBlock(height uint32) *externalapi.DomainBlock {
	transactions := []*externalapi.DomainTransaction{
		CoinbaseTransaction(txscript.PayToKeyIDScript(externalapi.DomainKeyID{1}), 5*constants.SatoshiPerNRG),
	}
	return &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			Version:        constants.BlockVersion,
			HashPrevBlock:  HashFromByte(0x11),
			HashMerkleRoot: *merkle.CalculateHashMerkleRoot(transactions),
			Time:           1554000000,
			Bits:           0x207fffff,
			Height:         height,
			Nonce:          0x1234,
		},
		Transactions: transactions,
	}
}

// StakingBlock returns an unsigned Proof-of-Stake block whose stake claim is
// structurally valid for key: the coinbase and a single stake output of
// stakeValue pay to the key's pay-to-key-id script, and the stake input
// (stakeHash, 0) matches the header's claim.
func StakingBlock(key *btcec.PrivateKey, compressed bool, stakeValue uint64) *externalapi.DomainBlock {
	publicKey := externalapi.NewDomainPublicKeyFromBtcec(key.PubKey(), compressed)
	script := txscript.PayToKeyIDScript(publicKey.KeyID())

	stakeHash := HashFromByte(0x42)
	stakeInput := externalapi.NewDomainOutpoint(&stakeHash, 0)
	transactions := []*externalapi.DomainTransaction{
		CoinbaseTransaction(script, 0),
		StakeTransaction(stakeInput, script, stakeValue),
	}

	return &externalapi.DomainBlock{
		Header: &externalapi.DomainBlockHeader{
			Version:        constants.BlockVersion | constants.BlockVersionProofOfStakeBit,
			HashPrevBlock:  HashFromByte(0x11),
			HashMerkleRoot: *merkle.CalculateHashMerkleRoot(transactions),
			Time:           1554000000,
			Bits:           0x207fffff,
			Height:         104,
			StakeHash:      stakeHash,
			StakeIndex:     0,
			StakePublicKey: publicKey,
		},
		Transactions: transactions,
	}
}
