package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeIter walks over a snapshot of the items the cache layer holds
// within a range, including deletion markers. The snapshot is collected
// up-front so iteration needs no goroutines and the tree may be modified
// once the iterator was created.
type btreeIter struct {
	items []btree.Item
	idx   int
}

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	var items []btree.Item
	collect := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return &btreeIter{items: items}
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	var items []btree.Item
	collect := func(item btree.Item) bool {
		items = append(items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Descend(collect)
	case start == nil:
		bt.DescendLessOrEqual(bkeyLess{end}, collect)
	case end == nil:
		bt.DescendGreaterThan(bkeyLess{start}, collect)
	default:
		bt.DescendRange(bkeyLess{end}, bkeyLess{start}, collect)
	}
	return &btreeIter{items: items}
}

func (b *btreeIter) wrap(parent Iterator, reverse bool) (*itemIter, error) {
	iter := &itemIter{
		cache:   b,
		parent:  parent,
		reverse: reverse,
	}
	if err := iter.skipAllDeleted(); err != nil {
		return nil, err
	}
	return iter, nil
}

func (b *btreeIter) valid() bool {
	return b.idx < len(b.items)
}

func (b *btreeIter) next() {
	b.idx++
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.items[b.idx].(keyer)
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// itemIter combines the cache-layer items with those of the parent store,
// taking into consideration overwrites and deletes.
type itemIter struct {
	cache *btreeIter
	// if we are iterating in a cache-wrap (and who isn't), we need to
	// combine this iterator with the parent
	parent  Iterator
	reverse bool
}

var _ Iterator = (*itemIter)(nil)

// Valid implements Iterator and returns true iff it can be read.
func (i *itemIter) Valid() bool {
	return i.cache.valid() || i.parentValid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *itemIter) Next() error {
	// advance either us, parent, or both
	switch i.firstKey() {
	case us:
		i.cache.next()
	case both:
		i.cache.next()
		fallthrough
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("advanced past the end")
	}

	// keep advancing over all deleted entries
	return i.skipAllDeleted()
}

// Key returns the key of the cursor.
func (i *itemIter) Key() (key []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache.get().Key()
	case parent:
		return i.parent.Key()
	default: // none
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *itemIter) Value() (value []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache.get().(setItem).value
	case parent:
		return i.parent.Value()
	default: // none
		panic("advanced past the end")
	}
}

// Release the iterator and any resources it holds.
func (i *itemIter) Release() {
	if i.parent != nil {
		i.parent.Release()
	}
	i.cache.items = nil
}

// skipAllDeleted loops and skips any number of deleted items.
func (i *itemIter) skipAllDeleted() error {
	for {
		skipped, err := i.skipDeleted()
		if err != nil {
			return err
		}
		if !skipped {
			return nil
		}
	}
}

// skipDeleted jumps over all elements we can safely fast forward; returns
// true if it skipped, so we can skip again.
func (i *itemIter) skipDeleted() (bool, error) {
	src := i.firstKey()
	if src == us || src == both {
		// if our next is deleted, advance...
		if _, ok := i.cache.get().(deletedItem); ok {
			i.cache.next()
			// if parent had the same key, advance parent as well
			if src == both {
				if err := i.parent.Next(); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// firstKey selects the iterator whose current key comes first in the order
// of iteration, if any.
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if !i.parentValid() {
		if !i.cache.valid() {
			return none
		}
		return us
	} else if !i.cache.valid() {
		return parent
	}

	// both are valid... compare keys...
	cmp := bytes.Compare(i.parent.Key(), i.cache.get().Key())
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

// parentValid makes sure the parent is non-nil before checking if it is
// valid.
func (i *itemIter) parentValid() bool {
	return (i.parent != nil) && i.parent.Valid()
}
