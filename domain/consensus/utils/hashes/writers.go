package hashes

import (
	"crypto/sha256"
	"hash"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// This can only be created via one of the domain separated constructors
type HashWriter struct {
	hash.Hash
}

// NewBlockHashWriter returns a writer whose digest is the Keccak-256 (the
// pre-standard SHA-3 padding) of everything written. Block identity hashes and
// the input of the memory-hard hash engine are computed with it.
func NewBlockHashWriter() HashWriter {
	return HashWriter{sha3.NewLegacyKeccak256()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromByteSlice(h.Sum(nil))
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. Keccak-256 digests are 32 bytes"))
	}
	return hash
}

// TransactionHashWriter computes double SHA-256 transaction ids
type TransactionHashWriter struct {
	hash.Hash
}

// NewTransactionHashWriter returns a new TransactionHashWriter
func NewTransactionHashWriter() TransactionHashWriter {
	return TransactionHashWriter{sha256.New()}
}

// InfallibleWrite is just like write but doesn't return anything
func (h TransactionHashWriter) InfallibleWrite(p []byte) {
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the double SHA-256 of everything written
func (h TransactionHashWriter) Finalize() *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromByteSlice(chainhash.HashB(h.Sum(nil)))
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. SHA-256 digests are 32 bytes"))
	}
	return hash
}

// Keccak256 returns the Keccak-256 hash of data
func Keccak256(data []byte) *externalapi.DomainHash {
	writer := NewBlockHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}
