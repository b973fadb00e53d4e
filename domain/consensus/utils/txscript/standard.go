// Package txscript builds and recognizes the standard destination scripts
// stake rewards are paid to. Script execution is out of scope; the rules here
// are byte equality on the script.
package txscript

import (
	btctxscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcutil"
	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// PayToKeyIDScriptLength is the length of a pay-to-key-id script.
const PayToKeyIDScriptLength = 25

// PayToKeyIDScript returns the standard pay-to-pubkey-hash script paying to
// keyID:
//   OP_DUP OP_HASH160 <keyID> OP_EQUALVERIFY OP_CHECKSIG
func PayToKeyIDScript(keyID externalapi.DomainKeyID) []byte {
	script, err := btctxscript.NewScriptBuilder().
		AddOp(btctxscript.OP_DUP).
		AddOp(btctxscript.OP_HASH160).
		AddData(keyID[:]).
		AddOp(btctxscript.OP_EQUALVERIFY).
		AddOp(btctxscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. a pay-to-key-id script is always well formed"))
	}
	return script
}

// ExtractKeyID returns the key id paid to by a pay-to-key-id script.
func ExtractKeyID(script []byte) (externalapi.DomainKeyID, bool) {
	var keyID externalapi.DomainKeyID
	if len(script) != PayToKeyIDScriptLength ||
		script[0] != btctxscript.OP_DUP ||
		script[1] != btctxscript.OP_HASH160 ||
		script[2] != btctxscript.OP_DATA_20 ||
		script[23] != btctxscript.OP_EQUALVERIFY ||
		script[24] != btctxscript.OP_CHECKSIG {
		return keyID, false
	}
	copy(keyID[:], script[3:23])
	return keyID, true
}

// PayToAddressScript returns the destination script of a pay-to-pubkey-hash
// address. Other address kinds are rejected.
func PayToAddressScript(address btcutil.Address) ([]byte, error) {
	if _, ok := address.(*btcutil.AddressPubKeyHash); !ok {
		return nil, errors.Errorf("unsupported address type %T", address)
	}
	return btctxscript.PayToAddrScript(address)
}
