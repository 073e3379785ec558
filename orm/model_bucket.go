package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using a
// ModelBucket.
type Model interface {
	mvault.Persistent
	Validate() error
}

// ModelBucket is a prefixed subspace of the database holding validated
// records of a single type.
//
// This is a generic building block that should generally be embedded in a
// type-safe wrapper to ensure all data is the same type.
type ModelBucket struct {
	name   string
	prefix []byte
}

// NewModelBucket creates a bucket to store records under the given name.
// The name is part of every database key and must never change for the
// lifetime of the data.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// DBKey is the full key we store in the db, including the bucket prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	// Long story: annoying bug... we cannot just append because it modifies
	// shared data when two keys are created from the same bucket.
	offset := len(b.prefix)
	out := make([]byte, offset+len(key))
	copy(out, b.prefix)
	copy(out[offset:], key)
	return out
}

// One queries the database for a single record. Lookup is done by the
// primary key. The result is loaded into the destination model.
//
// This method returns ErrNotFound if the entity does not exist in the
// database.
func (b ModelBucket) One(db mvault.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := assertPointer(dest); err != nil {
		return err
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "bucket lookup")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T with key %X", dest, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot parse %T", dest)
	}
	return nil
}

// Has returns true if a record with the given primary key exists.
func (b ModelBucket) Has(db mvault.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Put saves the given model in the database under the given key. The model
// is validated before it is written.
func (b ModelBucket) Put(db mvault.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot serialize %T", m)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with the given primary key from the database.
// It returns ErrNotFound if an entity with the given key does not exist.
func (b ModelBucket) Delete(db mvault.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	has, err := db.Has(dbkey)
	if err != nil {
		return err
	}
	if !has {
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	return db.Delete(dbkey)
}

// Sequence returns a sequence counter scoped to this bucket.
func (b ModelBucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// assertPointer produces a readable error when a caller passes a
// non-pointer destination that Unmarshal could never fill.
func assertPointer(dest Model) error {
	if v := reflect.ValueOf(dest); v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", dest)
	}
	return nil
}
