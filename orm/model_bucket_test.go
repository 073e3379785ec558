package orm

import (
	"testing"

	"github.com/mvault/mvault/errors"
	"github.com/mvault/mvault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/go-amino"
)

var testCdc = amino.NewCodec()

// counterModel is a minimal record to exercise the bucket.
type counterModel struct {
	Count int64
}

var _ Model = (*counterModel)(nil)

func (c *counterModel) Marshal() ([]byte, error) {
	return testCdc.MarshalBinaryBare(c)
}

func (c *counterModel) Unmarshal(raw []byte) error {
	return testCdc.UnmarshalBinaryBare(raw, c)
}

func (c *counterModel) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative counter")
	}
	return nil
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	require.NoError(t, b.Put(db, []byte("one"), &counterModel{Count: 5}))

	var loaded counterModel
	require.NoError(t, b.One(db, []byte("one"), &loaded))
	assert.Equal(t, int64(5), loaded.Count)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	var dest counterModel
	err := b.One(db, []byte("unknown"), &dest)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	err := b.Put(db, []byte("one"), &counterModel{Count: -1})
	assert.True(t, errors.ErrModel.Is(err))

	// nothing was written
	has, hErr := b.Has(db, []byte("one"))
	require.NoError(t, hErr)
	assert.False(t, has)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	err := b.Delete(db, []byte("missing"))
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, b.Put(db, []byte("one"), &counterModel{Count: 1}))
	require.NoError(t, b.Delete(db, []byte("one")))

	var dest counterModel
	err = b.One(db, []byte("one"), &dest)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPrefixesDoNotCollide(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("aaa")
	b := NewModelBucket("bbb")

	require.NoError(t, a.Put(db, []byte("k"), &counterModel{Count: 1}))
	require.NoError(t, b.Put(db, []byte("k"), &counterModel{Count: 2}))

	var loaded counterModel
	require.NoError(t, a.One(db, []byte("k"), &loaded))
	assert.Equal(t, int64(1), loaded.Count)
	require.NoError(t, b.One(db, []byte("k"), &loaded))
	assert.Equal(t, int64(2), loaded.Count)
}

func TestNewModelBucketRejectsBadName(t *testing.T) {
	assert.Panics(t, func() {
		NewModelBucket("Bad Name")
	})
}
