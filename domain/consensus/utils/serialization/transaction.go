package serialization

import (
	"io"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// maxTxInOut bounds the input and output counts read from a stream.
const maxTxInOut = 1 << 16

// SerializeTransaction writes tx in its canonical format
func SerializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := WriteElement(w, tx.Version)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		err = WriteElements(w, &input.PreviousOutpoint.TransactionID, input.PreviousOutpoint.Index)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, input.SignatureScript)
		if err != nil {
			return err
		}
		err = WriteElement(w, input.Sequence)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err = WriteElement(w, output.Value)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, output.ScriptPublicKey)
		if err != nil {
			return err
		}
	}

	return WriteElement(w, tx.LockTime)
}

// DeserializeTransaction reads a transaction written by SerializeTransaction
func DeserializeTransaction(r io.Reader) (*externalapi.DomainTransaction, error) {
	tx := &externalapi.DomainTransaction{}
	err := ReadElement(r, &tx.Version)
	if err != nil {
		return nil, err
	}

	inputCount, err := readCount(r, "inputs")
	if err != nil {
		return nil, err
	}
	tx.Inputs = make([]*externalapi.DomainTransactionInput, inputCount)
	for i := range tx.Inputs {
		input := &externalapi.DomainTransactionInput{}
		err = ReadElements(r, &input.PreviousOutpoint.TransactionID, &input.PreviousOutpoint.Index)
		if err != nil {
			return nil, err
		}
		input.SignatureScript, err = ReadVarBytes(r, "signature script")
		if err != nil {
			return nil, err
		}
		err = ReadElement(r, &input.Sequence)
		if err != nil {
			return nil, err
		}
		tx.Inputs[i] = input
	}

	outputCount, err := readCount(r, "outputs")
	if err != nil {
		return nil, err
	}
	tx.Outputs = make([]*externalapi.DomainTransactionOutput, outputCount)
	for i := range tx.Outputs {
		output := &externalapi.DomainTransactionOutput{}
		err = ReadElement(r, &output.Value)
		if err != nil {
			return nil, err
		}
		output.ScriptPublicKey, err = ReadVarBytes(r, "script public key")
		if err != nil {
			return nil, err
		}
		tx.Outputs[i] = output
	}

	err = ReadElement(r, &tx.LockTime)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// SerializeBlock writes the storage format of block: its header followed by
// the transaction count and every transaction.
func SerializeBlock(w io.Writer, block *externalapi.DomainBlock) error {
	err := SerializeHeader(w, block.Header)
	if err != nil {
		return err
	}
	err = WriteVarInt(w, uint64(len(block.Transactions)))
	if err != nil {
		return err
	}
	for _, tx := range block.Transactions {
		err = SerializeTransaction(w, tx)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeserializeBlock reads a block written by SerializeBlock
func DeserializeBlock(r io.Reader) (*externalapi.DomainBlock, error) {
	header, err := DeserializeHeader(r)
	if err != nil {
		return nil, err
	}
	txCount, err := readCount(r, "transactions")
	if err != nil {
		return nil, err
	}
	transactions := make([]*externalapi.DomainTransaction, txCount)
	for i := range transactions {
		transactions[i], err = DeserializeTransaction(r)
		if err != nil {
			return nil, err
		}
	}
	return &externalapi.DomainBlock{Header: header, Transactions: transactions}, nil
}

func readCount(r io.Reader, fieldName string) (uint64, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if count > maxTxInOut {
		return 0, errors.Wrapf(errMalformed, "too many %s [count %d, max %d]", fieldName, count, maxTxInOut)
	}
	return count, nil
}
