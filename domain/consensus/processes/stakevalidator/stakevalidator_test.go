package stakevalidator_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/davecgh/go-spew/spew"
	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/processes/stakesigner"
	"github.com/nrgnet/nrgd/domain/consensus/processes/stakevalidator"
	"github.com/nrgnet/nrgd/domain/consensus/utils/constants"
	"github.com/nrgnet/nrgd/domain/consensus/utils/merkle"
	"github.com/nrgnet/nrgd/domain/consensus/utils/testutils"
	"github.com/nrgnet/nrgd/domain/consensus/utils/txscript"
	"github.com/nrgnet/nrgd/domain/keystore"
)

type fixture struct {
	signer    model.StakeSigner
	validator model.StakeValidator
	key       *btcec.PrivateKey
	keyStore  *keystore.MemoryKeyStore
	keyID     externalapi.DomainKeyID
}

func newFixture(t *testing.T) *fixture {
	signer, err := stakesigner.New(0)
	if err != nil {
		t.Fatalf("stakesigner.New: %+v", err)
	}
	key := testutils.StakeKey(t, 7)
	keyStore := keystore.NewMemoryKeyStore()
	keyID := keyStore.AddKey(key, true)

	return &fixture{
		signer:    signer,
		validator: stakevalidator.New(signer, constants.MinStakeAmount),
		key:       key,
		keyStore:  keyStore,
		keyID:     keyID,
	}
}

// signedStakingBlock returns a signed, structurally valid staking block with
// an empty public key, as if it was read from storage.
func (f *fixture) signedStakingBlock(t *testing.T) *externalapi.DomainBlock {
	block := testutils.StakingBlock(f.key, true, constants.MinStakeAmount)
	err := f.signer.SignHeader(block.Header, f.keyStore)
	if err != nil {
		t.Fatalf("SignHeader: %+v", err)
	}
	block.Header.StakePublicKey = externalapi.DomainPublicKey{}
	return block
}

func TestStakingBlockScenario(t *testing.T) {
	f := newFixture(t)
	block := f.signedStakingBlock(t)

	if !f.validator.HasValidStake(block) {
		t.Fatalf("HasValidStake rejected a valid staking block: %s", spew.Sdump(block))
	}
	if !f.signer.VerifySignature(block.Header, f.keyID) {
		t.Fatalf("VerifySignature rejected a valid staking block")
	}
	if block.Header.StakePublicKey.KeyID() != f.keyID {
		t.Fatalf("HasValidStake did not leave the recovered signer key on the header")
	}

	block.Transactions = block.Transactions[:1]
	if f.validator.HasValidStake(block) {
		t.Fatalf("HasValidStake accepted a block without a stake transaction")
	}
	if !f.signer.VerifySignature(block.Header, f.keyID) {
		t.Fatalf("removing the stake transaction invalidated the signature")
	}
}

func TestHasValidStakeRejectsTampering(t *testing.T) {
	f := newFixture(t)
	otherScript := txscript.PayToKeyIDScript(keystore.KeyIDForPrivateKey(testutils.StakeKey(t, 8), true))

	tests := []struct {
		name   string
		tamper func(block *externalapi.DomainBlock)
	}{
		{
			name:   "stake transaction removed",
			tamper: func(block *externalapi.DomainBlock) { block.Transactions = block.Transactions[:1] },
		},
		{
			name: "coinbase pays another script",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[0].Outputs[0].ScriptPublicKey = otherScript
			},
		},
		{
			name: "coinbase without outputs",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[0].Outputs = nil
			},
		},
		{
			name: "stake output pays another script",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Outputs[0].ScriptPublicKey = otherScript
			},
		},
		{
			name: "second stake output pays another script",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Outputs = append(block.Transactions[1].Outputs,
					&externalapi.DomainTransactionOutput{Value: 1, ScriptPublicKey: otherScript})
			},
		},
		{
			name: "stake below the minimum",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Outputs[0].Value = constants.MinStakeAmount - 1
			},
		},
		{
			name: "stake transaction without inputs",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Inputs = nil
			},
		},
		{
			name: "stake transaction without outputs",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Outputs = nil
			},
		},
		{
			name: "stake input spends another transaction",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Inputs[0].PreviousOutpoint.TransactionID = testutils.HashFromByte(0x43)
			},
		},
		{
			name: "stake input spends another index",
			tamper: func(block *externalapi.DomainBlock) {
				block.Transactions[1].Inputs[0].PreviousOutpoint.Index = 1
			},
		},
		{
			name: "signature removed",
			tamper: func(block *externalapi.DomainBlock) {
				block.Header.BlockSignature = nil
			},
		},
		{
			name: "signature malformed",
			tamper: func(block *externalapi.DomainBlock) {
				block.Header.BlockSignature = []byte{1, 2, 3}
			},
		},
		{
			name: "proof-of-work version",
			tamper: func(block *externalapi.DomainBlock) {
				block.Header.Version &^= constants.BlockVersionProofOfStakeBit
			},
		},
	}

	for _, test := range tests {
		block := f.signedStakingBlock(t)
		test.tamper(block)
		if f.validator.HasValidStake(block) {
			t.Errorf("%s: HasValidStake accepted the block: %s", test.name, spew.Sdump(block))
		}
	}
}

func TestClaimedOutpointMismatch(t *testing.T) {
	f := newFixture(t)

	// The header claims a different outpoint than the stake transaction
	// spends. The block is signed after the change, so the signature is valid.
	block := testutils.StakingBlock(f.key, true, constants.MinStakeAmount)
	block.Header.StakeIndex = 1
	err := f.signer.SignHeader(block.Header, f.keyStore)
	if err != nil {
		t.Fatalf("SignHeader: %+v", err)
	}
	if !f.signer.VerifySignature(block.Header, f.keyID) {
		t.Fatalf("VerifySignature rejected the block")
	}
	if f.validator.HasValidStake(block) {
		t.Fatalf("HasValidStake accepted a stake claim the stake transaction does not spend")
	}
}

func TestStakeSplitAcrossOutputs(t *testing.T) {
	f := newFixture(t)
	script := txscript.PayToKeyIDScript(f.keyID)

	tests := []struct {
		values   []uint64
		expected bool
	}{
		{[]uint64{constants.MinStakeAmount / 2, constants.MinStakeAmount / 2}, true},
		{[]uint64{constants.MinStakeAmount / 2, constants.MinStakeAmount/2 - 1}, false},
		{[]uint64{1, 2, constants.MinStakeAmount}, true},
		{[]uint64{^uint64(0), 2}, false},
	}

	for _, test := range tests {
		block := testutils.StakingBlock(f.key, true, 0)
		stakeInput := block.Header.StakeOutpoint()
		block.Transactions[1] = testutils.StakeTransaction(stakeInput, script, test.values...)
		block.Header.HashMerkleRoot = *merkle.CalculateHashMerkleRoot(block.Transactions)
		err := f.signer.SignHeader(block.Header, f.keyStore)
		if err != nil {
			t.Fatalf("SignHeader: %+v", err)
		}

		if result := f.validator.HasValidStake(block); result != test.expected {
			t.Errorf("stake outputs %v: got %t, want %t", test.values, result, test.expected)
		}
	}
}

func TestUncompressedStaker(t *testing.T) {
	f := newFixture(t)
	f.keyStore.AddKey(f.key, false)

	block := testutils.StakingBlock(f.key, false, constants.MinStakeAmount)
	err := f.signer.SignHeader(block.Header, f.keyStore)
	if err != nil {
		t.Fatalf("SignHeader: %+v", err)
	}
	block.Header.StakePublicKey = externalapi.DomainPublicKey{}
	if !f.validator.HasValidStake(block) {
		t.Fatalf("HasValidStake rejected a block staked with an uncompressed key")
	}
}
