package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// StakeSigner signs Proof-of-Stake headers and recovers their signers
type StakeSigner interface {
	SignHeader(header *externalapi.DomainBlockHeader, keyStore KeyStore) error
	RecoverSignerKey(header *externalapi.DomainBlockHeader) externalapi.DomainPublicKey
	VerifySignature(header *externalapi.DomainBlockHeader, expectedKeyID externalapi.DomainKeyID) bool
}
