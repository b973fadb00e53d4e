package testutils

import (
	"testing"

	"github.com/nrgnet/nrgd/domain/chainconfig"
	"github.com/nrgnet/nrgd/domain/consensus"
)

// ForAllNets runs the passed testFunc with all available networks
func ForAllNets(t *testing.T, testFunc func(*testing.T, *consensus.Config)) {
	allParams := []chainconfig.Params{
		chainconfig.MainnetParams,
		chainconfig.TestnetParams,
		chainconfig.RegtestParams,
	}

	for _, params := range allParams {
		consensusConfig := consensus.Config{Params: params}
		t.Run(consensusConfig.Name, func(t *testing.T) {
			t.Parallel()
			t.Logf("Running test for %s", consensusConfig.Name)
			testFunc(t, &consensusConfig)
		})
	}
}
