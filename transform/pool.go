package transform

import (
	"fmt"

	"github.com/hnimtadd/planar"
)

// ID is a handle to a pooled transform. ID 0 is reserved and never
// handed out.
type ID uint64

// Metadata for an entry in the pool.
type metadata struct {
	bucketID uint64 // The bucket of the probe table this entry hangs off.

	// The length of the probe sequence for this entry.
	psl uint64

	// ref is the reference count of the entry.
	ref int64
}

type entry[T planar.Scalar] struct {
	matrix planar.Matrix[T]
	meta   metadata
}

// Pool interns transform matrices and hands out dense integer IDs, so
// callers stamping the same transform across many objects can share one
// copy by handle instead of carrying the matrix in every object.
//
// Entries are reference counted. The probe table uses robin-hood hashing
// with tracked probe sequence lengths; dead entries are resurrected for
// new values so IDs stay small.
type Pool[T planar.Scalar] struct {
	// The backing store of entries.
	items []*entry[T]
	// A hash table of entry indexes.
	table map[uint64]ID

	// Maximum probe sequence length.
	maxPSL uint64

	// pslStats counts entries per probe sequence length. We keep this to
	// shrink maxPSL when entries are deleted.
	pslStats []int64

	// The next index to store an entry at.
	// ID 0 is reserved for unused entries.
	nextID ID

	// The number of living entries currently in the pool.
	living int
}

type PoolOptions struct {
	// Cap is the maximum number of entries in the pool.
	// If not set, it defaults to 1000.
	Cap *uint64
}

func NewPool[T planar.Scalar](opts PoolOptions) *Pool[T] {
	var cap uint64
	if opts.Cap == nil {
		cap = 1000 // Default capacity.
	} else {
		cap = *opts.Cap
	}
	return &Pool[T]{
		items:    make([]*entry[T], cap),
		table:    make(map[uint64]ID, cap),
		pslStats: make([]int64, 32),
		maxPSL:   0,
		nextID:   1, // Start from 1, since 0 is reserved for unused entries.
	}
}

// Add interns a transform if not present and increments its ref count.
//
// Returns the transform's ID. Adding a transform that is already pooled
// returns the existing ID.
func (p *Pool[T]) Add(m planar.Matrix[T]) ID {
	items := p.items

	// Trim dead entries from the end of the store.
trimLoop:
	for p.nextID > 1 {
		prev := items[p.nextID-1]
		switch {
		case prev != nil && prev.meta.ref == 0:
			p.nextID--
			p.Delete(p.nextID)
		default:
			break trimLoop
		}
	}

	// If the transform is already pooled, share it.
	if id, found := p.Lookup(m); found {
		items[id].meta.ref++
		return id
	}

	id := p.insert(uint64(p.nextID), m)
	items[id].meta.ref++
	assert(
		items[id].meta.ref == 1,
		fmt.Sprintf("entry ref count should be 1 instead of %d",
			items[id].meta.ref),
	)
	p.living++

	// id differs from nextID if we resurrected an entry on the way.
	if id == p.nextID {
		p.nextID++
	}
	return id
}

// insert places the transform into the probe table under the given entry
// ID. The transform must not already be present.
func (p *Pool[T]) insert(newID uint64, m planar.Matrix[T]) ID {
	_, found := p.Lookup(m)
	assert(!found, "transform already exists in the pool")

	table := p.table
	items := p.items

	// The new entry that we're inserting.
	newEntry := &entry[T]{
		matrix: m,
		meta: metadata{
			psl: 0,
			ref: 0,
		},
	}

	// The entry we currently hold; robin-hood swaps exchange it for a
	// poorer one while probing.
	heldID := newID
	heldEntry := newEntry

	// The final ID the new entry will be inserted at.
	chosenID := newID

	hash := m.Hash()

	for i := 0; i <= cap(items); i++ {
		bucket := (hash + uint64(i)) % uint64(len(items))
		id := table[bucket]

		// Empty bucket, place the held entry here.
		if id == 0 {
			table[bucket] = ID(heldID)
			heldEntry.meta.bucketID = bucket
			heldEntry.meta.psl = uint64(i)
			p.pslStats[heldEntry.meta.psl]++
			p.maxPSL = max(p.maxPSL, heldEntry.meta.psl)
			break
		}

		item := items[id]

		// A dead entry gets resurrected for our value so its ID can be
		// re-used, unless its ID is greater than the one we were given
		// (i.e. prefer smaller IDs).
		if item.meta.ref == 0 {
			// Reap the dead entry.
			p.pslStats[item.meta.psl]--
			*item = entry[T]{}

			// Only take this entry's ID if it is smaller than the one we
			// were given.
			if id < ID(newID) {
				chosenID = uint64(id)
			}
			// Put the currently held entry into the bucket of the entry
			// we just reaped.
			table[bucket] = ID(heldID)
			heldEntry.meta.bucketID = bucket
			p.pslStats[heldEntry.meta.psl]++
			p.maxPSL = max(p.maxPSL, heldEntry.meta.psl)

			break
		}

		// If this entry has a lower PSL, or equal PSL and lower ref
		// count, swap it with the held entry. Entries with higher ref
		// counts end up earlier in their probe sequence, on the
		// assumption that they are looked up more often.
		if item.meta.psl < heldEntry.meta.psl ||
			(item.meta.psl == heldEntry.meta.psl &&
				item.meta.ref < heldEntry.meta.ref) {
			// Put our held entry in the bucket.
			table[bucket] = ID(heldID)
			p.pslStats[heldEntry.meta.psl]++
			p.maxPSL = max(p.maxPSL, heldEntry.meta.psl)

			// Pick up the entry that had the lower PSL.
			heldID = uint64(id)
			heldEntry = item
			p.pslStats[item.meta.psl]--
		}

		// Advance to the next probe position for the held entry.
		heldEntry.meta.psl++
	}

	// Our chosen ID may have changed if we re-used a dead entry's ID, so
	// make sure the chosen bucket holds the correct ID.
	table[newEntry.meta.bucketID] = ID(chosenID)

	// Finally place the new entry into the store.
	items[chosenID] = newEntry

	return ID(chosenID)
}

// Delete an entry, removing any references from the table, and freeing
// its ID to be re-used.
func (p *Pool[T]) Delete(id ID) {
	table := p.table
	items := p.items
	item := items[id]

	assert(table[item.meta.bucketID] == id, "entry not found in table")

	p.pslStats[item.meta.psl]--
	table[item.meta.bucketID] = 0
	items[id] = nil

	prev := item.meta.bucketID
	next := (prev + 1) % uint64(len(items))

	// Back-shift subsequent entries of the same probe sequence.
	for table[next] != 0 && items[table[next]].meta.psl > 0 {
		items[table[next]].meta.bucketID = prev
		items[table[next]].meta.psl--

		table[prev] = table[next]

		prev = next
		next = (next + 1) % uint64(len(items))
	}

	// Shrink the maxPSL.
	for p.maxPSL > 0 && p.pslStats[p.maxPSL] == 0 {
		p.maxPSL--
	}

	// Mark the last shifted bucket as unused.
	table[prev] = 0

	// If the ref is not 0, the entry was deleted without being released,
	// so the living count has to be adjusted by hand.
	if item.meta.ref > 0 {
		p.living--
	}
}

// Release a reference to a pooled transform by its ID.
//
// Asserts that the entry's reference count is greater than 0.
func (p *Pool[T]) Release(id ID) {
	assert(id > 0, "cannot release entry with ID 0")
	items := p.items
	item := items[id]

	assert(item.meta.ref > 0, "entry ref count underflow")
	item.meta.ref--
	if item.meta.ref == 0 {
		p.living--
	}
}

// Lookup finds a pooled transform and returns its ID.
// If the transform is not pooled, returns 0 and false.
func (p *Pool[T]) Lookup(m planar.Matrix[T]) (ID, bool) {
	table := p.table
	items := p.items

	hash := m.Hash()

	for i := uint64(0); i <= p.maxPSL; i++ {
		bucket := (hash + i) % uint64(len(items))
		id := table[bucket]

		// Empty bucket, our transform cannot have probed past this point,
		// meaning it is not present.
		if id == 0 {
			return 0, false
		}

		item := items[id]

		// An entry with a shorter probe sequence length cannot have
		// probed to this point, it would have been swapped out earlier.
		if item.meta.psl < i {
			return 0, false
		}

		// Skip dead entries.
		if item.meta.ref == 0 {
			continue
		}

		// Part of the same probe sequence, check whether it matches the
		// transform we are looking for.
		if item.meta.psl == i && item.matrix == m {
			return id, true
		}
	}
	return 0, false
}

// Get returns the transform for a live ID.
func (p *Pool[T]) Get(id ID) planar.Matrix[T] {
	assert(id > 0, "cannot get entry with ID 0")
	item := p.items[id]
	assert(item != nil && item.meta.ref > 0, "entry is not alive")
	return item.matrix
}

// Use takes an additional reference to an already-live entry.
func (p *Pool[T]) Use(id ID) {
	assert(id > 0, "cannot use entry with ID 0")
	items := p.items
	item := items[id]

	// If Use is called on an entry with 0 references, then either
	// someone forgot to Add it, released too early, or lied about
	// releasing. Either way something is wrong.
	assert(item.meta.ref > 0, "entry is not alive")

	item.meta.ref++
}

// Count returns the number of living entries in the pool.
func (p *Pool[T]) Count() int {
	return p.living
}

func assert(condition bool, message string) {
	if !condition {
		panic(message)
	}
}
