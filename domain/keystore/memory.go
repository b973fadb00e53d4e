// Package keystore provides the private key stores stake signing draws from.
// Keys are indexed by the key id of their public key in the serialization
// form chosen when the key was added, so the compressed and uncompressed
// forms of one key are distinct entries.
package keystore

import (
	"sync"

	"github.com/btcsuite/btcd/btcec"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
)

// KeyIDForPrivateKey returns the key id of key's public key in the requested
// serialization form.
func KeyIDForPrivateKey(key *btcec.PrivateKey, compressed bool) externalapi.DomainKeyID {
	return externalapi.NewDomainPublicKeyFromBtcec(key.PubKey(), compressed).KeyID()
}

// MemoryKeyStore is a model.KeyStore kept in memory. It is safe for
// concurrent use.
type MemoryKeyStore struct {
	mtx  sync.RWMutex
	keys map[externalapi.DomainKeyID]*btcec.PrivateKey
}

// NewMemoryKeyStore returns an empty MemoryKeyStore
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{
		keys: make(map[externalapi.DomainKeyID]*btcec.PrivateKey),
	}
}

// AddKey stores key under the key id of its public key in the given form and
// returns that id.
func (ks *MemoryKeyStore) AddKey(key *btcec.PrivateKey, compressed bool) externalapi.DomainKeyID {
	keyID := KeyIDForPrivateKey(key, compressed)

	ks.mtx.Lock()
	defer ks.mtx.Unlock()
	ks.keys[keyID] = key
	return keyID
}

// PrivateKey returns the private key stored under keyID
func (ks *MemoryKeyStore) PrivateKey(keyID externalapi.DomainKeyID) (*btcec.PrivateKey, bool) {
	ks.mtx.RLock()
	defer ks.mtx.RUnlock()

	key, ok := ks.keys[keyID]
	return key, ok
}

// Len returns the number of stored keys
func (ks *MemoryKeyStore) Len() int {
	ks.mtx.RLock()
	defer ks.mtx.RUnlock()
	return len(ks.keys)
}
