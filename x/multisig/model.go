package multisig

import (
	"encoding/binary"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
	"github.com/mvault/mvault/orm"
)

// maxOwners bounds the owner set. Owner checks are quadratic and the
// approvals bitmap is stored inline, so the set must stay small.
const maxOwners = 64

// Wallet is a shared account governed by a set of owners and a threshold.
type Wallet struct {
	Metadata *mvault.Metadata

	// Owners are the addresses allowed to propose and approve. The
	// position of an owner in this list is its index in every proposal's
	// approvals bitmap.
	Owners []mvault.Address

	// Threshold is the number of distinct owner approvals required to
	// execute a proposal.
	Threshold uint32

	// ProposalCounter is the id given to the next proposal.
	ProposalCounter uint64

	// OwnerSetVersion increases whenever the owner set changes. Proposals
	// snapshot it so that approvals given under an old owner set cannot
	// carry over.
	OwnerSetVersion uint32
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateOwnerSet(w.Owners, w.Threshold)
}

// OwnerIndex returns the position of the given address in the owner set,
// or -1 if it is not an owner.
func (w *Wallet) OwnerIndex(addr mvault.Address) int {
	for i, owner := range w.Owners {
		if owner.Equals(addr) {
			return i
		}
	}
	return -1
}

// validateOwnerSet enforces the rules shared by every owner set: not
// empty, not above the cap, valid and pairwise distinct addresses, and a
// threshold between one and the owner count.
func validateOwnerSet(owners []mvault.Address, threshold uint32) error {
	if len(owners) == 0 {
		return ErrEmptyOwnerSet
	}
	if len(owners) > maxOwners {
		return errors.Wrapf(errors.ErrInput, "at most %d owners", maxOwners)
	}
	for i, owner := range owners {
		if err := owner.Validate(); err != nil {
			return errors.Wrapf(err, "owner %d", i)
		}
		for _, prev := range owners[:i] {
			if prev.Equals(owner) {
				return errors.Wrapf(ErrDuplicateOwner, "%s", owner)
			}
		}
	}
	if threshold < 1 || int(threshold) > len(owners) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d owners", threshold, len(owners))
	}
	return nil
}

// Proposal is a pending transfer from a wallet. It collects owner
// approvals until the wallet threshold is reached.
type Proposal struct {
	Metadata *mvault.Metadata

	// Wallet is the id of the wallet this proposal spends from.
	Wallet []byte

	// ProposalID is the wallet-scoped id of this proposal.
	ProposalID uint64

	// Destination receives the amount on execution.
	Destination mvault.Address

	// Amount is the value to transfer.
	Amount coin.Coin

	// Approvals holds one flag per wallet owner, by owner index.
	Approvals []bool

	// OwnerSetVersion is the wallet's owner set version at creation time.
	OwnerSetVersion uint32

	// Executed flips to true on execution and never back.
	Executed bool
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

func (p *Proposal) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, p)
}

func (p *Proposal) Validate() error {
	if err := p.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateWalletID(p.Wallet); err != nil {
		return errors.Wrap(err, "wallet")
	}
	if err := p.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := p.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !p.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount %s", p.Amount)
	}
	if n := len(p.Approvals); n == 0 || n > maxOwners {
		return errors.Wrapf(errors.ErrModel, "%d approval slots", n)
	}
	return nil
}

// ApprovalCount returns the number of approvals given so far.
func (p *Proposal) ApprovalCount() int {
	cnt := 0
	for _, ok := range p.Approvals {
		if ok {
			cnt++
		}
	}
	return cnt
}

// WalletCondition returns the condition controlling the funds of the
// given wallet. Its address holds the wallet's balance.
func WalletCondition(id []byte) mvault.Condition {
	return mvault.NewCondition("multisig", "usage", id)
}

func validateWalletID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "wallet id must be 8 bytes, got %d", len(id))
	}
	return nil
}

// WalletBucket stores the wallets and hands out their ids.
type WalletBucket struct {
	orm.ModelBucket
	idSeq orm.Sequence
}

// NewWalletBucket initializes a wallet bucket.
func NewWalletBucket() WalletBucket {
	b := orm.NewModelBucket("wallets")
	return WalletBucket{
		ModelBucket: b,
		idSeq:       b.Sequence("id"),
	}
}

// Create assigns a fresh id to the wallet and persists it. The id is
// returned and is never reused, so an existing wallet cannot be
// overwritten.
func (b WalletBucket) Create(db mvault.KVStore, w *Wallet) ([]byte, error) {
	id, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "wallet id")
	}
	if err := b.Put(db, id, w); err != nil {
		return nil, err
	}
	return id, nil
}

// GetWallet loads the wallet with the given id, or ErrNotFound.
func (b WalletBucket) GetWallet(db mvault.ReadOnlyKVStore, id []byte) (*Wallet, error) {
	var w Wallet
	if err := b.One(db, id, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ProposalBucket stores the proposals of all wallets. Keys combine the
// wallet id with the proposal id, so ids only need to be unique per
// wallet and iteration per wallet is a prefix scan.
type ProposalBucket struct {
	orm.ModelBucket
}

// NewProposalBucket initializes a proposal bucket.
func NewProposalBucket() ProposalBucket {
	return ProposalBucket{
		ModelBucket: orm.NewModelBucket("proposals"),
	}
}

// proposalKey builds the database key of a proposal.
func proposalKey(walletID []byte, proposalID uint64) []byte {
	key := make([]byte, len(walletID)+8)
	copy(key, walletID)
	binary.BigEndian.PutUint64(key[len(walletID):], proposalID)
	return key
}

// GetProposal loads the given proposal of the given wallet, or
// ErrNotFound.
func (b ProposalBucket) GetProposal(db mvault.ReadOnlyKVStore, walletID []byte, proposalID uint64) (*Proposal, error) {
	var p Proposal
	if err := b.One(db, proposalKey(walletID, proposalID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persists the proposal under its derived key.
func (b ProposalBucket) Save(db mvault.KVStore, p *Proposal) error {
	return b.Put(db, proposalKey(p.Wallet, p.ProposalID), p)
}
