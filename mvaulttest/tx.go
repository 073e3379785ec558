package mvaulttest

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

// Tx is a mock transaction wrapping a single message.
type Tx struct {
	// Msg is the message returned by GetMsg.
	Msg mvault.Msg

	// Err, if set, is returned by every method instead of a result.
	Err error
}

var _ mvault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (mvault.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	if tx.Msg == nil {
		return nil, nil
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return errors.Wrap(errors.ErrHuman, "not implemented")
}
