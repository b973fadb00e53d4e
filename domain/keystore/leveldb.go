package keystore

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var stakeKeyPrefix = []byte("stake-key-")

const (
	storedKeyCompressed   = 0x01
	storedKeyUncompressed = 0x00
	storedKeyLength       = 1 + btcec.PrivKeyBytesLen
)

var options = &opt.Options{
	Compression: opt.NoCompression,
}

// LevelDBKeyStore is a model.KeyStore persisted in a leveldb database. Each
// entry holds the serialization form flag followed by the 32 byte private
// scalar.
type LevelDBKeyStore struct {
	ldb *leveldb.DB
}

// OpenLevelDBKeyStore opens the key store at path, creating it if it does not
// exist.
func OpenLevelDBKeyStore(path string) (*LevelDBKeyStore, error) {
	ldb, err := leveldb.OpenFile(path, options)

	// If the database is corrupted, attempt to recover.
	if _, corrupted := err.(*ldbErrors.ErrCorrupted); corrupted {
		log.Warnf("Key store corruption detected for path %s: %s", path, err)
		ldb, err = leveldb.RecoverFile(path, options)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to recover the key store at %s", path)
		}
		log.Warnf("Key store recovered from corruption for path %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open the key store at %s", path)
	}

	return &LevelDBKeyStore{ldb: ldb}, nil
}

// Close closes the underlying database
func (ks *LevelDBKeyStore) Close() error {
	return errors.WithStack(ks.ldb.Close())
}

func stakeKeyKey(keyID externalapi.DomainKeyID) []byte {
	key := make([]byte, 0, len(stakeKeyPrefix)+externalapi.DomainKeyIDSize)
	key = append(key, stakeKeyPrefix...)
	return append(key, keyID[:]...)
}

// AddKey persists key under the key id of its public key in the given form
// and returns that id.
func (ks *LevelDBKeyStore) AddKey(key *btcec.PrivateKey, compressed bool) (externalapi.DomainKeyID, error) {
	keyID := KeyIDForPrivateKey(key, compressed)

	value := make([]byte, 0, storedKeyLength)
	if compressed {
		value = append(value, storedKeyCompressed)
	} else {
		value = append(value, storedKeyUncompressed)
	}
	value = append(value, key.Serialize()...)

	err := ks.ldb.Put(stakeKeyKey(keyID), value, nil)
	if err != nil {
		return externalapi.DomainKeyID{}, errors.Wrapf(err, "failed to store stake key %s", keyID)
	}
	log.Debugf("Stored stake key %s", keyID)
	return keyID, nil
}

// PrivateKey returns the private key stored under keyID. Read failures and
// corrupt entries are logged and reported as a missing key.
func (ks *LevelDBKeyStore) PrivateKey(keyID externalapi.DomainKeyID) (*btcec.PrivateKey, bool) {
	value, err := ks.ldb.Get(stakeKeyKey(keyID), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			log.Errorf("Failed to read stake key %s: %s", keyID, err)
		}
		return nil, false
	}

	key, err := parseStoredKey(keyID, value)
	if err != nil {
		log.Errorf("%s", err)
		return nil, false
	}
	return key, true
}

// KeyIDs returns the ids of all stored keys in key order.
func (ks *LevelDBKeyStore) KeyIDs() ([]externalapi.DomainKeyID, error) {
	iterator := ks.ldb.NewIterator(util.BytesPrefix(stakeKeyPrefix), nil)
	defer iterator.Release()

	var keyIDs []externalapi.DomainKeyID
	for iterator.Next() {
		var keyID externalapi.DomainKeyID
		copy(keyID[:], iterator.Key()[len(stakeKeyPrefix):])
		keyIDs = append(keyIDs, keyID)
	}
	if err := iterator.Error(); err != nil {
		return nil, errors.WithStack(err)
	}
	return keyIDs, nil
}

func parseStoredKey(keyID externalapi.DomainKeyID, value []byte) (*btcec.PrivateKey, error) {
	if len(value) != storedKeyLength {
		return nil, errors.Errorf("stake key %s has a stored length of %d, want %d",
			keyID, len(value), storedKeyLength)
	}
	compressed := value[0] == storedKeyCompressed
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), value[1:])
	if KeyIDForPrivateKey(key, compressed) != keyID {
		return nil, errors.Errorf("stake key %s does not match its stored scalar", keyID)
	}
	return key, nil
}
