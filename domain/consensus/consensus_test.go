package consensus_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/nrgnet/nrgd/domain/chainconfig"
	"github.com/nrgnet/nrgd/domain/consensus"
	"github.com/nrgnet/nrgd/domain/consensus/utils/dataset"
	"github.com/nrgnet/nrgd/domain/consensus/utils/testutils"
	"github.com/nrgnet/nrgd/domain/keystore"
)

type fixture struct {
	consensus consensus.Consensus
	engine    *testutils.FakePowEngine
	datasets  *dataset.Holder
	kernel    *testutils.FakeStakeKernelHasher
}

func newFixture(t *testing.T, config *consensus.Config) *fixture {
	f := &fixture{
		engine:   testutils.NewFakePowEngine(config.EpochLength),
		datasets: dataset.NewHolder(),
		kernel:   &testutils.FakeStakeKernelHasher{},
	}
	c, err := consensus.NewFactory().NewConsensus(config, &consensus.Collaborators{
		PowEngine:   f.engine,
		Datasets:    f.datasets,
		StakeKernel: f.kernel,
	})
	if err != nil {
		t.Fatalf("NewConsensus: %+v", err)
	}
	f.consensus = c
	return f
}

func TestNewConsensusRequiresCollaborators(t *testing.T) {
	config := &consensus.Config{Params: chainconfig.RegtestParams}
	_, err := consensus.NewFactory().NewConsensus(config, &consensus.Collaborators{})
	if err == nil {
		t.Fatalf("NewConsensus succeeded without collaborators")
	}
}

func TestStakingScenario(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, config *consensus.Config) {
		f := newFixture(t, config)
		key := testutils.StakeKey(t, 9)
		keyStore := keystore.NewMemoryKeyStore()
		keyID := keyStore.AddKey(key, true)

		block := testutils.StakingBlock(key, true, config.MinStakeAmount)
		err := f.consensus.SignHeader(block.Header, keyStore)
		if err != nil {
			t.Fatalf("SignHeader: %+v", err)
		}
		if !f.consensus.HasValidStake(block) {
			t.Fatalf("HasValidStake rejected the staking block: %s", spew.Sdump(block))
		}
		if !f.consensus.VerifySignature(block.Header, keyID) {
			t.Fatalf("VerifySignature rejected the staking block")
		}
		if f.consensus.CheckProofOfWork(block.Header) {
			t.Fatalf("CheckProofOfWork accepted a Proof-of-Stake header")
		}
		if f.engine.TotalCalls() != 0 {
			t.Fatalf("the memory-hard engine ran for a Proof-of-Stake block")
		}

		identity := f.consensus.IdentityHash(block.Header)
		withoutStake := block.Clone()
		withoutStake.Transactions = withoutStake.Transactions[:1]
		if f.consensus.HasValidStake(withoutStake) {
			t.Fatalf("HasValidStake accepted a block without a stake transaction")
		}
		if !f.consensus.VerifySignature(withoutStake.Header, keyID) {
			t.Fatalf("removing the stake transaction invalidated the signature")
		}
		if !f.consensus.IdentityHash(withoutStake.Header).Equal(identity) {
			t.Fatalf("the identity hash depends on the transactions")
		}
	})
}

func TestMiningAndVerification(t *testing.T) {
	config := &consensus.Config{Params: chainconfig.RegtestParams}
	f := newFixture(t, config)
	f.datasets.Replace(testutils.NewFakeDataset(0))

	header := testutils.ProofOfWorkBlock(10).Header
	identityBeforeSeal := f.consensus.IdentityHash(header)

	// Regtest bits accept every hash below 2^255, so half of all nonces do.
	for !f.consensus.CheckProofOfWork(header) {
		header.Nonce++
		f.consensus.SealWorkHash(header)
	}
	if f.engine.FullCalls() == 0 {
		t.Fatalf("mining with a loaded dataset did not use it")
	}
	if f.consensus.IdentityHash(header).Equal(identityBeforeSeal) {
		t.Fatalf("sealing did not change the Proof-of-Work identity")
	}

	// A verifying node without a dataset reaches the same verdict.
	verifier := newFixture(t, config)
	if !verifier.consensus.CheckProofOfWork(header.Clone()) {
		t.Fatalf("the light path rejected a mined header")
	}
	if verifier.engine.LightCalls() == 0 || verifier.engine.FullCalls() != 0 {
		t.Fatalf("verification without a dataset did not take the light path")
	}

	tampered := header.Clone()
	tampered.HashMix = testutils.HashFromByte(0xaa)
	if verifier.consensus.CheckProofOfWork(tampered) {
		t.Fatalf("CheckProofOfWork accepted a foreign mix hash")
	}

	tooEasy := header.Clone()
	tooEasy.Bits = 0x2100ffff
	if verifier.consensus.CheckProofOfWork(tooEasy) {
		t.Fatalf("CheckProofOfWork accepted a target above the network limit")
	}

	summary := verifier.consensus.DescribeBlock(testutils.ProofOfWorkBlock(10))
	if summary == "" {
		t.Fatalf("DescribeBlock returned an empty summary")
	}
}
