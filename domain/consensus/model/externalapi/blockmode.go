package externalapi

import "github.com/nrgnet/nrgd/domain/consensus/utils/constants"

// BlockMode distinguishes the two consensus mechanisms a header can belong
// to. It is a pure function of the header version.
type BlockMode uint8

const (
	// BlockModeProofOfWork is a block sealed by the memory-hard hash engine.
	BlockModeProofOfWork BlockMode = iota

	// BlockModeProofOfStake is a block carrying a signed stake claim.
	BlockModeProofOfStake
)

// BlockModeFromVersion returns the mode encoded in a block version.
func BlockModeFromVersion(version int32) BlockMode {
	if version&constants.BlockVersionProofOfStakeBit != 0 {
		return BlockModeProofOfStake
	}
	return BlockModeProofOfWork
}

func (mode BlockMode) String() string {
	switch mode {
	case BlockModeProofOfWork:
		return "ProofOfWork"
	case BlockModeProofOfStake:
		return "ProofOfStake"
	default:
		return "Unknown"
	}
}
