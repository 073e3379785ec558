package multisig

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
)

const (
	pathCreateWalletMsg = "multisig/create"
	pathProposeMsg      = "multisig/propose"
	pathApproveMsg      = "multisig/approve"
	pathExecuteMsg      = "multisig/execute"
)

var (
	_ mvault.Msg = (*CreateWalletMsg)(nil)
	_ mvault.Msg = (*ProposeMsg)(nil)
	_ mvault.Msg = (*ApproveMsg)(nil)
	_ mvault.Msg = (*ExecuteMsg)(nil)
)

// CreateWalletMsg creates a new wallet with the given owners and
// threshold.
type CreateWalletMsg struct {
	Metadata  *mvault.Metadata
	Owners    []mvault.Address
	Threshold uint32
}

func (m *CreateWalletMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateWalletMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateWalletMsg) Path() string {
	return pathCreateWalletMsg
}

func (m *CreateWalletMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateOwnerSet(m.Owners, m.Threshold)
}

// ProposeMsg opens a new transfer proposal on a wallet. The signer must
// be one of the wallet owners and counts as the first approval.
type ProposeMsg struct {
	Metadata    *mvault.Metadata
	WalletID    []byte
	Destination mvault.Address
	Amount      coin.Coin
}

func (m *ProposeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ProposeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ProposeMsg) Path() string {
	return pathProposeMsg
}

func (m *ProposeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateWalletID(m.WalletID); err != nil {
		return errors.Wrap(err, "wallet")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount %s", m.Amount)
	}
	return nil
}

// ApproveMsg adds the signer's approval to a pending proposal.
type ApproveMsg struct {
	Metadata   *mvault.Metadata
	WalletID   []byte
	ProposalID uint64
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ApproveMsg) Path() string {
	return pathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateWalletID(m.WalletID); err != nil {
		return errors.Wrap(err, "wallet")
	}
	return nil
}

// ExecuteMsg triggers the transfer of a proposal that reached the wallet
// threshold. It needs no authorization, the collected approvals are the
// mandate.
type ExecuteMsg struct {
	Metadata   *mvault.Metadata
	WalletID   []byte
	ProposalID uint64
}

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ExecuteMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateWalletID(m.WalletID); err != nil {
		return errors.Wrap(err, "wallet")
	}
	return nil
}
