package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// StakeValidator checks that the stake claim of a block is consistent with
// the block's own transactions. It is not a full consensus check.
type StakeValidator interface {
	HasValidStake(block *externalapi.DomainBlock) bool
}
