package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nrgnet/nrgd/domain/chainconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the test network"`
	Regtest            bool   `long:"regtest" description:"Use the regression test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides network params (allowed only on regtest)"`

	ActiveNetParams *chainconfig.Params
}

type overrideParamsConfig struct {
	PowLimitBits   *uint32 `json:"powLimitBits"`
	EpochLength    *uint32 `json:"epochLength"`
	MinStakeAmount *uint64 `json:"minStakeAmount"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	//NetParams holds the selected network parameters. Default value is main-net.
	networkFlags.ActiveNetParams = &chainconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &chainconfig.TestnetParams
	}
	if networkFlags.Regtest {
		numNets++
		networkFlags.ActiveNetParams = &chainconfig.RegtestParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	return networkFlags.overrideParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chainconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	if !networkFlags.Regtest {
		return errors.Errorf("override-params-file is allowed only when using regtest")
	}

	overrideParamsFile, err := os.Open(networkFlags.OverrideParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideParamsFile.Close()

	decoder := json.NewDecoder(overrideParamsFile)
	config := &overrideParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", networkFlags.OverrideParamsFile)
	}

	// Work on a copy so the registered regtest parameters stay pristine.
	params := *networkFlags.ActiveNetParams

	if config.PowLimitBits != nil {
		params.PowLimitBits = *config.PowLimitBits
		if params.PowLimit().Sign() <= 0 {
			return errors.Errorf("powLimitBits %08x encodes a non-positive target", *config.PowLimitBits)
		}
	}

	if config.EpochLength != nil {
		if *config.EpochLength == 0 {
			return errors.Errorf("epochLength must be positive")
		}
		params.EpochLength = *config.EpochLength
	}

	if config.MinStakeAmount != nil {
		params.MinStakeAmount = *config.MinStakeAmount
	}

	networkFlags.ActiveNetParams = &params
	return nil
}
