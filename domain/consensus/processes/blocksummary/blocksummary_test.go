package blocksummary_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nrgnet/nrgd/domain/consensus/processes/blocksummary"
	"github.com/nrgnet/nrgd/domain/consensus/processes/workhasher"
	"github.com/nrgnet/nrgd/domain/consensus/utils/constants"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
	"github.com/nrgnet/nrgd/domain/consensus/utils/dataset"
	"github.com/nrgnet/nrgd/domain/consensus/utils/testutils"
)

func TestDescribe(t *testing.T) {
	engine := testutils.NewFakePowEngine(constants.EpochLength)
	kernel := &testutils.FakeStakeKernelHasher{}
	workHasher := workhasher.New(engine, dataset.NewHolder(), kernel, constants.EpochLength)
	describer := blocksummary.New(workHasher)

	powBlock := testutils.ProofOfWorkBlock(12)
	original := powBlock.Clone()
	summary := describer.Describe(powBlock)
	workHash := workHasher.WorkHash(powBlock.Header).Value

	expectedFragments := []string{
		fmt.Sprintf("hash=%s", consensushashing.BlockHash(powBlock)),
		fmt.Sprintf("hashPow=%s", workHash),
		"height=12",
		"txs=1",
		fmt.Sprintf("  %s ", consensushashing.TransactionID(powBlock.Transactions[0])),
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(summary, fragment) {
			t.Errorf("the Proof-of-Work summary is missing %q:\n%s", fragment, summary)
		}
	}
	if strings.Contains(summary, "stakeHash") {
		t.Errorf("the Proof-of-Work summary shows stake fields:\n%s", summary)
	}
	if !powBlock.Equal(original) {
		t.Fatalf("Describe modified the block")
	}
	if lines := strings.Count(summary, "\n"); lines != 2 {
		t.Fatalf("the Proof-of-Work summary has %d lines, want 2", lines)
	}

	engineCalls := engine.TotalCalls()
	stakeBlock := testutils.StakingBlock(testutils.StakeKey(t, 1), true, constants.MinStakeAmount)
	summary = describer.Describe(stakeBlock)
	expectedFragments = []string{
		fmt.Sprintf("hash=%s", consensushashing.BlockHash(stakeBlock)),
		fmt.Sprintf("stakeHash=%s", &stakeBlock.Header.StakeHash),
		"stakeIndex=0",
		"stakePublicKey=33",
		"blockSignature=0",
		"txs=2",
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(summary, fragment) {
			t.Errorf("the Proof-of-Stake summary is missing %q:\n%s", fragment, summary)
		}
	}
	if strings.Contains(summary, "hashPow") {
		t.Errorf("the Proof-of-Stake summary shows a work hash:\n%s", summary)
	}
	if lines := strings.Count(summary, "\n"); lines != 3 {
		t.Fatalf("the Proof-of-Stake summary has %d lines, want 3", lines)
	}
	if engine.TotalCalls() != engineCalls || kernel.Calls() != 0 {
		t.Fatalf("describing a Proof-of-Stake block ran a work hash")
	}
}
