package stakesigner

import "github.com/pkg/errors"

var (
	// ErrInvalidStakePublicKey indicates that a header could not be signed
	// because its stake public key is not a valid secp256k1 key.
	ErrInvalidStakePublicKey = errors.New("invalid stake public key")

	// ErrStakeKeyNotFound indicates that the key store holds no private key
	// for the header's stake public key.
	ErrStakeKeyNotFound = errors.New("stake key not found")
)
