package multisig

import (
	"github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()
