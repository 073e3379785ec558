package cash

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
	"github.com/mvault/mvault/orm"
)

// Set is the state of an account, the full set of coins one address holds.
type Set struct {
	Metadata *mvault.Metadata
	Coins    coin.Coins
}

var _ orm.Model = (*Set)(nil)

func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Validate requires a valid coin set. Unlike a transfer amount, a stored
// balance may be empty.
func (s *Set) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return s.Coins.Validate()
}

// Copy returns a deep copy of the set.
func (s *Set) Copy() *Set {
	return &Set{
		Metadata: s.Metadata.Copy(),
		Coins:    s.Coins.Clone(),
	}
}

// Bucket stores the balance for each address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash bucket.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket("cash"),
	}
}

// Balance loads the account for the given address. A missing account is
// returned as an empty set, not an error.
func (b Bucket) Balance(db mvault.ReadOnlyKVStore, addr mvault.Address) (*Set, error) {
	var set Set
	switch err := b.One(db, addr, &set); {
	case err == nil:
		return &set, nil
	case errors.ErrNotFound.Is(err):
		return &Set{Metadata: &mvault.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "cannot load account")
	}
}

// Save persists the account under the given address. Accounts left with no
// coins are removed from the database.
func (b Bucket) Save(db mvault.KVStore, addr mvault.Address, set *Set) error {
	if len(set.Coins) == 0 {
		has, err := b.Has(db, addr)
		if err != nil {
			return err
		}
		if !has {
			return nil
		}
		return b.Delete(db, addr)
	}
	return b.Put(db, addr, set)
}
