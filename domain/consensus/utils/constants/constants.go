package constants

const (
	// BlockVersion represents the current version of blocks mined.
	BlockVersion = 2

	// BlockVersionProofOfStakeBit marks a block version as Proof-of-Stake.
	// Any version without it is Proof-of-Work.
	BlockVersionProofOfStakeBit int32 = 0x10000000

	// TransactionVersion is the current latest supported transaction version.
	TransactionVersion = 2

	// SatoshiPerNRG is the number of base units in one NRG.
	SatoshiPerNRG = 100_000_000

	// MinStakeAmount is the minimum total value of the stake transaction
	// outputs for a stake claim to be considered.
	MinStakeAmount uint64 = 1 * SatoshiPerNRG

	// EpochLength is the number of blocks covered by one memory-hard hash
	// dataset. A block's epoch is its height divided by EpochLength.
	EpochLength = 30000

	// CoinbaseOutpointIndex is the previous outpoint index of the single
	// input of a coinbase transaction.
	CoinbaseOutpointIndex uint32 = 0xffffffff

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff
)
