package model

import "github.com/nrgnet/nrgd/domain/consensus/model/externalapi"

// BlockDescriber renders human readable block summaries
type BlockDescriber interface {
	Describe(block *externalapi.DomainBlock) string
}
