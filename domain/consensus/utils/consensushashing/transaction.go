package consensushashing

import (
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/nrgnet/nrgd/domain/consensus/utils/hashes"
	"github.com/nrgnet/nrgd/domain/consensus/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionID returns the double SHA-256 of the transaction serialization.
// Stake outpoints refer to transactions by this id.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainHash {
	writer := hashes.NewTransactionHashWriter()
	err := serialization.SerializeTransaction(writer, tx)
	if err != nil {
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	return writer.Finalize()
}

// TransactionIDs converts the provided slice of DomainTransactions
// to a corresponding slice of TransactionIDs
func TransactionIDs(txs []*externalapi.DomainTransaction) []*externalapi.DomainHash {
	txIDs := make([]*externalapi.DomainHash, len(txs))
	for i, tx := range txs {
		txIDs[i] = TransactionID(tx)
	}
	return txIDs
}
