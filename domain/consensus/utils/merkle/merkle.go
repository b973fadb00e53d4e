// Package merkle computes the transaction merkle root committed to by
// HashMerkleRoot.
package merkle

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
)

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the double SHA-256 of their concatenation.
func hashMerkleBranches(left, right *externalapi.DomainHash) *externalapi.DomainHash {
	var buf [externalapi.DomainHashSize * 2]byte
	copy(buf[:externalapi.DomainHashSize], left.ByteSlice())
	copy(buf[externalapi.DomainHashSize:], right.ByteSlice())

	newHash := chainhash.DoubleHashH(buf[:])
	return externalapi.NewDomainHashFromByteArray((*[externalapi.DomainHashSize]byte)(&newHash))
}

// CalculateHashMerkleRoot calculates the merkle root of a tree consisting of
// the given transaction ids. A level with an odd number of nodes pairs its
// last node with itself. The root of an empty list is the zero hash.
func CalculateHashMerkleRoot(transactions []*externalapi.DomainTransaction) *externalapi.DomainHash {
	if len(transactions) == 0 {
		return &externalapi.DomainHash{}
	}

	level := consensushashing.TransactionIDs(transactions)
	for len(level) > 1 {
		next := make([]*externalapi.DomainHash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, hashMerkleBranches(level[i], right))
		}
		level = next
	}
	return level[0]
}
