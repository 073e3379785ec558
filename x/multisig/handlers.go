package multisig

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
	"github.com/mvault/mvault/x"
	"github.com/mvault/mvault/x/cash"
)

const (
	creationCost  int64 = 300
	proposalCost  int64 = 150
	approvalCost  int64 = 100
	executionCost int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r mvault.Registry, auth x.Authenticator, ctrl cash.Controller) {
	wallets := NewWalletBucket()
	proposals := NewProposalBucket()

	r.Handle(&CreateWalletMsg{}, CreateWalletHandler{auth: auth, wallets: wallets})
	r.Handle(&ProposeMsg{}, ProposeHandler{auth: auth, wallets: wallets, proposals: proposals})
	r.Handle(&ApproveMsg{}, ApproveHandler{auth: auth, wallets: wallets, proposals: proposals})
	r.Handle(&ExecuteMsg{}, ExecuteHandler{wallets: wallets, proposals: proposals, ctrl: ctrl})
}

// CreateWalletHandler creates new wallets.
type CreateWalletHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ mvault.Handler = CreateWalletHandler{}

func (h CreateWalletHandler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &mvault.CheckResult{GasAllocated: creationCost}, nil
}

func (h CreateWalletHandler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	wallet := &Wallet{
		Metadata:        msg.Metadata.Copy(),
		Owners:          msg.Owners,
		Threshold:       msg.Threshold,
		ProposalCounter: 0,
		OwnerSetVersion: 0,
	}
	id, err := h.wallets.Create(db, wallet)
	if err != nil {
		return nil, err
	}
	return &mvault.DeliverResult{Data: id}, nil
}

func (h CreateWalletHandler) validate(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*CreateWalletMsg, error) {
	var msg CreateWalletMsg
	if err := mvault.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, nil
}

// ProposeHandler opens transfer proposals on existing wallets.
type ProposeHandler struct {
	auth      x.Authenticator
	wallets   WalletBucket
	proposals ProposalBucket
}

var _ mvault.Handler = ProposeHandler{}

func (h ProposeHandler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &mvault.CheckResult{GasAllocated: proposalCost}, nil
}

func (h ProposeHandler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	msg, wallet, proposer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// the proposer approves implicitly
	approvals := make([]bool, len(wallet.Owners))
	approvals[proposer] = true

	proposal := &Proposal{
		Metadata:        msg.Metadata.Copy(),
		Wallet:          msg.WalletID,
		ProposalID:      wallet.ProposalCounter,
		Destination:     msg.Destination,
		Amount:          msg.Amount,
		Approvals:       approvals,
		OwnerSetVersion: wallet.OwnerSetVersion,
		Executed:        false,
	}
	if err := h.proposals.Save(db, proposal); err != nil {
		return nil, err
	}

	// the id is spent, even if the proposal never executes
	wallet.ProposalCounter++
	if err := h.wallets.Put(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}

	return &mvault.DeliverResult{Data: proposalKey(msg.WalletID, proposal.ProposalID)}, nil
}

func (h ProposeHandler) validate(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*ProposeMsg, *Wallet, int, error) {
	var msg ProposeMsg
	if err := mvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, 0, err
	}
	wallet, err := h.wallets.GetWallet(db, msg.WalletID)
	if err != nil {
		return nil, nil, 0, err
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	idx := wallet.OwnerIndex(signer.Address())
	if idx < 0 {
		return nil, nil, 0, errors.Wrap(errors.ErrUnauthorized, "signer is not an owner")
	}
	return &msg, wallet, idx, nil
}

// ApproveHandler records owner approvals on pending proposals.
type ApproveHandler struct {
	auth      x.Authenticator
	wallets   WalletBucket
	proposals ProposalBucket
}

var _ mvault.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &mvault.CheckResult{GasAllocated: approvalCost}, nil
}

func (h ApproveHandler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	proposal, idx, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// approving twice is a no-op, not an error
	if !proposal.Approvals[idx] {
		proposal.Approvals[idx] = true
		if err := h.proposals.Save(db, proposal); err != nil {
			return nil, err
		}
	}
	return &mvault.DeliverResult{}, nil
}

func (h ApproveHandler) validate(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*Proposal, int, error) {
	var msg ApproveMsg
	if err := mvault.LoadMsg(tx, &msg); err != nil {
		return nil, 0, err
	}
	wallet, err := h.wallets.GetWallet(db, msg.WalletID)
	if err != nil {
		return nil, 0, err
	}
	proposal, err := h.proposals.GetProposal(db, msg.WalletID, msg.ProposalID)
	if err != nil {
		return nil, 0, err
	}
	if err := checkMembership(msg.WalletID, proposal); err != nil {
		return nil, 0, err
	}
	if proposal.Executed {
		return nil, 0, errors.Wrapf(ErrAlreadyExecuted, "proposal %d", msg.ProposalID)
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	idx := wallet.OwnerIndex(signer.Address())
	if idx < 0 {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "signer is not an owner")
	}
	if idx >= len(proposal.Approvals) {
		return nil, 0, errors.Wrapf(ErrStaleMandate, "owner %d of a %d slot bitmap", idx, len(proposal.Approvals))
	}
	return proposal, idx, nil
}

// ExecuteHandler performs the transfer of proposals that reached the
// wallet threshold. Execution requires no signer, the approvals already
// collected are the authorization.
type ExecuteHandler struct {
	wallets   WalletBucket
	proposals ProposalBucket
	ctrl      cash.Controller
}

var _ mvault.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &mvault.CheckResult{GasAllocated: executionCost}, nil
}

func (h ExecuteHandler) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*mvault.DeliverResult, error) {
	msg, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	source := WalletCondition(msg.WalletID).Address()
	if err := h.ctrl.MoveCoins(db, source, proposal.Destination, proposal.Amount); err != nil {
		return nil, err
	}

	proposal.Executed = true
	if err := h.proposals.Save(db, proposal); err != nil {
		return nil, err
	}
	return &mvault.DeliverResult{}, nil
}

func (h ExecuteHandler) validate(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx) (*ExecuteMsg, *Proposal, error) {
	var msg ExecuteMsg
	if err := mvault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	wallet, err := h.wallets.GetWallet(db, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	proposal, err := h.proposals.GetProposal(db, msg.WalletID, msg.ProposalID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkMembership(msg.WalletID, proposal); err != nil {
		return nil, nil, err
	}
	if proposal.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "proposal %d", msg.ProposalID)
	}
	if proposal.OwnerSetVersion != wallet.OwnerSetVersion {
		return nil, nil, errors.Wrapf(ErrStaleMandate,
			"proposal at version %d, wallet at %d", proposal.OwnerSetVersion, wallet.OwnerSetVersion)
	}
	if got := proposal.ApprovalCount(); got < int(wallet.Threshold) {
		return nil, nil, errors.Wrapf(ErrInsufficientApprovals, "%d of %d", got, wallet.Threshold)
	}
	return &msg, proposal, nil
}

// checkMembership verifies that the stored proposal belongs to the wallet
// it was addressed through.
func checkMembership(walletID []byte, p *Proposal) error {
	if !mvault.Address(p.Wallet).Equals(walletID) {
		return errors.Wrapf(ErrWalletMismatch, "proposal belongs to wallet %X", p.Wallet)
	}
	return nil
}
