package externalapi

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil"
)

// DomainKeyIDSize is the size of a DomainKeyID
const DomainKeyIDSize = 20

// DomainKeyID identifies a public key by the Hash160 of its serialization.
type DomainKeyID [DomainKeyIDSize]byte

// String returns the hex encoding of the key id
func (id DomainKeyID) String() string {
	return hex.EncodeToString(id[:])
}

// DomainPublicKey is a serialized secp256k1 public key, compressed (33 bytes)
// or uncompressed (65 bytes). The zero value is an empty, invalid key.
type DomainPublicKey struct {
	serialized []byte
}

// NewDomainPublicKey wraps a serialized public key. The key is not validated;
// use IsValid.
func NewDomainPublicKey(serialized []byte) DomainPublicKey {
	clone := make([]byte, len(serialized))
	copy(clone, serialized)
	return DomainPublicKey{serialized: clone}
}

// NewDomainPublicKeyFromBtcec serializes key in the requested form.
func NewDomainPublicKeyFromBtcec(key *btcec.PublicKey, compressed bool) DomainPublicKey {
	if compressed {
		return DomainPublicKey{serialized: key.SerializeCompressed()}
	}
	return DomainPublicKey{serialized: key.SerializeUncompressed()}
}

// IsValid returns whether the key parses as a point on secp256k1.
func (key DomainPublicKey) IsValid() bool {
	_, err := key.Parse()
	return err == nil
}

// IsEmpty returns whether no key is held.
func (key DomainPublicKey) IsEmpty() bool {
	return len(key.serialized) == 0
}

// IsCompressed returns whether the serialization is the 33 byte form.
func (key DomainPublicKey) IsCompressed() bool {
	return len(key.serialized) == btcec.PubKeyBytesLenCompressed
}

// Parse returns the btcec representation of the key.
func (key DomainPublicKey) Parse() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(key.serialized, btcec.S256())
}

// KeyID returns the Hash160 identity of the key's serialization.
func (key DomainPublicKey) KeyID() DomainKeyID {
	var id DomainKeyID
	copy(id[:], btcutil.Hash160(key.serialized))
	return id
}

// Bytes returns a copy of the serialized key.
func (key DomainPublicKey) Bytes() []byte {
	clone := make([]byte, len(key.serialized))
	copy(clone, key.serialized)
	return clone
}

// Len returns the length of the serialized key.
func (key DomainPublicKey) Len() int {
	return len(key.serialized)
}

// Equal returns whether both keys hold the same serialization.
func (key DomainPublicKey) Equal(other DomainPublicKey) bool {
	return bytes.Equal(key.serialized, other.serialized)
}

func (key DomainPublicKey) String() string {
	return hex.EncodeToString(key.serialized)
}
