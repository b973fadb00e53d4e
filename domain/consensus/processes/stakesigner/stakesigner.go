// Package stakesigner signs Proof-of-Stake headers and recovers the signer's
// public key from their compact signatures.
//
// The signature is the 65 byte compact recoverable form over the header's
// identity hash, which leaves the signature and the public key out, so a
// header can be signed in place and its signer recovered from the signature
// alone.
package stakesigner

import (
	"github.com/btcsuite/btcd/btcec"
	lru "github.com/hashicorp/golang-lru"
	"github.com/nrgnet/nrgd/domain/consensus/model"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/consensushashing"
	"github.com/pkg/errors"
)

// DefaultRecoveryCacheSize is the number of recovered signers kept when no
// size is configured.
const DefaultRecoveryCacheSize = 4096

type stakeSigner struct {
	recoveries *lru.ARCCache
}

// New instantiates a new StakeSigner. recoveryCacheSize bounds the number of
// recovered signer keys remembered across headers.
func New(recoveryCacheSize int) (model.StakeSigner, error) {
	if recoveryCacheSize <= 0 {
		recoveryCacheSize = DefaultRecoveryCacheSize
	}
	recoveries, err := lru.NewARC(recoveryCacheSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a recovery cache of size %d", recoveryCacheSize)
	}
	return &stakeSigner{recoveries: recoveries}, nil
}

// SignHeader signs a Proof-of-Stake header with the private key of its stake
// public key, replacing header.BlockSignature. header is left untouched when
// signing fails. Proof-of-Work headers need no signature and are accepted as
// they are.
func (ss *stakeSigner) SignHeader(header *externalapi.DomainBlockHeader, keyStore model.KeyStore) error {
	switch mode := header.Mode(); mode {
	case externalapi.BlockModeProofOfWork:
		return nil

	case externalapi.BlockModeProofOfStake:
		return ss.signStakeHeader(header, keyStore)

	default:
		panic(errors.Errorf("unknown block mode %s", mode))
	}
}

func (ss *stakeSigner) signStakeHeader(header *externalapi.DomainBlockHeader, keyStore model.KeyStore) error {
	if !header.StakePublicKey.IsValid() {
		return errors.Wrapf(ErrInvalidStakePublicKey, "cannot sign the header at height %d with key %s",
			header.Height, header.StakePublicKey)
	}

	keyID := header.StakePublicKey.KeyID()
	privateKey, ok := keyStore.PrivateKey(keyID)
	if !ok {
		return errors.Wrapf(ErrStakeKeyNotFound, "no private key for key id %s", keyID)
	}

	hash := consensushashing.HeaderHash(header)
	signature, err := btcec.SignCompact(btcec.S256(), privateKey, hash.ByteSlice(),
		header.StakePublicKey.IsCompressed())
	if err != nil {
		return errors.Wrapf(err, "failed to sign header %s", hash)
	}

	header.BlockSignature = signature
	log.Debugf("Signed header %s at height %d with key id %s", hash, header.Height, keyID)
	return nil
}

// RecoverSignerKey returns the stake public key of header. When the header
// holds no valid key but carries a signature, the key is recovered from the
// signature and stored in header.StakePublicKey, so repeated calls are cheap.
// The returned key may be invalid; callers check IsValid.
func (ss *stakeSigner) RecoverSignerKey(header *externalapi.DomainBlockHeader) externalapi.DomainPublicKey {
	if header.StakePublicKey.IsValid() || len(header.BlockSignature) == 0 {
		return header.StakePublicKey
	}

	recovered, ok := ss.recover(header)
	if ok {
		header.StakePublicKey = recovered
	}
	return header.StakePublicKey
}

// VerifySignature reports whether a Proof-of-Stake header is signed by the
// key identified by expectedKeyID. The key is recovered afresh from the
// signature, so any change to the signed fields makes verification fail.
// Proof-of-Work headers carry no signature and always verify.
func (ss *stakeSigner) VerifySignature(header *externalapi.DomainBlockHeader,
	expectedKeyID externalapi.DomainKeyID) bool {

	switch mode := header.Mode(); mode {
	case externalapi.BlockModeProofOfWork:
		return true

	case externalapi.BlockModeProofOfStake:
		if len(header.BlockSignature) == 0 {
			log.Debugf("Header at height %d carries no signature", header.Height)
			return false
		}
		recovered, ok := ss.recover(header)
		if !ok {
			return false
		}
		return recovered.KeyID() == expectedKeyID

	default:
		panic(errors.Errorf("unknown block mode %s", mode))
	}
}

// recover returns the public key that produced the header's signature over
// its identity hash.
func (ss *stakeSigner) recover(header *externalapi.DomainBlockHeader) (externalapi.DomainPublicKey, bool) {
	hash := consensushashing.HeaderHash(header)
	cacheKey := recoveryCacheKey(hash, header.BlockSignature)
	if cached, ok := ss.recoveries.Get(cacheKey); ok {
		return cached.(externalapi.DomainPublicKey), true
	}

	publicKey, compressed, err := btcec.RecoverCompact(btcec.S256(), header.BlockSignature, hash.ByteSlice())
	if err != nil {
		log.Debugf("Failed to recover the signer of header %s: %s", hash, err)
		return externalapi.DomainPublicKey{}, false
	}

	recovered := externalapi.NewDomainPublicKeyFromBtcec(publicKey, compressed)
	ss.recoveries.Add(cacheKey, recovered)
	return recovered, true
}

func recoveryCacheKey(hash *externalapi.DomainHash, signature []byte) string {
	return string(hash.ByteSlice()) + string(signature)
}
