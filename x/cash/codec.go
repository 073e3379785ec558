package cash

import (
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()
