// Package chainconfig defines the parameters of the networks the consensus
// core can run on.
package chainconfig

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// NRGNet identifies a network by its message start magic.
type NRGNet uint32

// The message start magics of the default networks.
const (
	Mainnet NRGNet = 0x4d47524e
	Testnet NRGNet = 0x5447524e
	Regtest NRGNet = 0x5247524e
)

// Params defines an NRG network by its parameters.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Net is the message start magic of the network.
	Net NRGNet

	// PubKeyHashAddrID is the version byte of pay-to-key-id addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the version byte of pay-to-script-hash addresses.
	ScriptHashAddrID byte

	// PrivateKeyID is the version byte of WIF encoded private keys.
	PrivateKeyID byte

	// PowLimitBits is the compact form of the easiest allowed Proof-of-Work
	// target.
	PowLimitBits uint32

	// EpochLength is the number of blocks the memory-hard hash dataset
	// of one epoch serves.
	EpochLength uint32

	// MinStakeAmount is the smallest total a stake transaction must pay
	// back to the staker.
	MinStakeAmount uint64

	// BtcParams carries the address encoding magics in the form btcutil
	// expects.
	BtcParams *chaincfg.Params
}

// PowLimit returns the easiest allowed Proof-of-Work target.
func (p *Params) PowLimit() *big.Int {
	return blockchain.CompactToBig(p.PowLimitBits)
}

// Epoch returns the dataset epoch serving height.
func (p *Params) Epoch(height uint32) uint64 {
	return uint64(height / p.EpochLength)
}

// EncodeAddress returns the pay-to-key-id address of keyID on this network.
func (p *Params) EncodeAddress(keyID externalapi.DomainKeyID) (*btcutil.AddressPubKeyHash, error) {
	address, err := btcutil.NewAddressPubKeyHash(keyID[:], p.BtcParams)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return address, nil
}

func newBtcParams(name string, net NRGNet, pubKeyHashAddrID, scriptHashAddrID, privateKeyID byte) *chaincfg.Params {
	return &chaincfg.Params{
		Name:             name,
		Net:              wire.BitcoinNet(net),
		PubKeyHashAddrID: pubKeyHashAddrID,
		ScriptHashAddrID: scriptHashAddrID,
		PrivateKeyID:     privateKeyID,
	}
}

// MainnetParams defines the network parameters for the main NRG network.
var MainnetParams = Params{
	Name:             "mainnet",
	Net:              Mainnet,
	PubKeyHashAddrID: 33, // starts with E
	ScriptHashAddrID: 53, // starts with N
	PrivateKeyID:     106,
	PowLimitBits:     0x1e0fffff,
	EpochLength:      constants.EpochLength,
	MinStakeAmount:   constants.MinStakeAmount,
	BtcParams:        newBtcParams("mainnet", Mainnet, 33, 53, 106),
}

// TestnetParams defines the network parameters for the test NRG network.
var TestnetParams = Params{
	Name:             "testnet",
	Net:              Testnet,
	PubKeyHashAddrID: 127, // starts with t
	ScriptHashAddrID: 19,  // starts with 8 or 9
	PrivateKeyID:     239,
	PowLimitBits:     0x1e0fffff,
	EpochLength:      constants.EpochLength,
	MinStakeAmount:   constants.MinStakeAmount,
	BtcParams:        newBtcParams("testnet", Testnet, 127, 19, 239),
}

// RegtestParams defines the network parameters for the regression test
// network, whose difficulty lets any work hash below 2^255 through.
var RegtestParams = Params{
	Name:             "regtest",
	Net:              Regtest,
	PubKeyHashAddrID: 127,
	ScriptHashAddrID: 19,
	PrivateKeyID:     239,
	PowLimitBits:     0x207fffff,
	EpochLength:      constants.EpochLength,
	MinStakeAmount:   constants.MinStakeAmount,
	BtcParams:        newBtcParams("regtest", Regtest, 127, 19, 239),
}

var (
	// ErrDuplicateNet describes an error where the parameters for an NRG
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate NRG network")

	// ErrUnknownNet describes an error where no parameters are registered
	// under the requested name.
	ErrUnknownNet = errors.New("unknown NRG network")
)

var registeredNets = make(map[NRGNet]*Params)

// Register registers the network parameters for an NRG network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsByName returns the registered parameters with the given name.
func ParamsByName(name string) (*Params, error) {
	for _, params := range registeredNets {
		if params.Name == name {
			return params, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNet, "no parameters named %q", name)
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&RegtestParams)
}
