// Package pow compares work hashes against compact difficulty targets.
package pow

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
)

// CheckProofOfWorkByBits reports whether workHash, read as a little endian
// 256-bit number, does not exceed the target encoded by the compact bits.
// A zero or negative target never validates.
func CheckProofOfWorkByBits(workHash *externalapi.DomainHash, bits uint32) bool {
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		return false
	}
	return HashToBig(workHash).Cmp(target) <= 0
}

// HashToBig converts a hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *externalapi.DomainHash) *big.Int {
	// A hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := hash.ByteArray()
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}
