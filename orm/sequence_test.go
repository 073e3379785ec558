package orm

import (
	"bytes"
	"testing"

	"github.com/mvault/mvault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMonotonic(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("wallets", "id")

	for i := int64(1); i <= 5; i++ {
		val, err := seq.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	var prev []byte
	for i := 0; i < 5; i++ {
		bz, err := seq.NextVal(db)
		require.NoError(t, err)
		if prev != nil {
			assert.True(t, bytes.Compare(prev, bz) < 0, "keys must be strictly increasing")
		}
		prev = bz
	}
}

func TestSequenceLatestDoesNotIncrement(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("wallets", "id")

	_, err := seq.NextInt(db)
	require.NoError(t, err)

	val, _, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	val, _, err = seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("wallets", "id")
	b := NewSequence("proposals", "id")

	_, err := a.NextInt(db)
	require.NoError(t, err)

	val, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestEncodeDecodeSequence(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
	assert.Equal(t, int64(12345), DecodeSequence(EncodeSequence(12345)))
	assert.Len(t, EncodeSequence(1), 8)
}
