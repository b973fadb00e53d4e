package model

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
)

// KeyStore looks up private keys by the identity of their public key.
type KeyStore interface {
	PrivateKey(keyID externalapi.DomainKeyID) (*btcec.PrivateKey, bool)
}
