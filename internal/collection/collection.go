// Package collection is the generic list engine behind every admin page:
// an immutable ordered sequence of records with copy-on-write replacement,
// query matching and derived counts.
package collection

// Collection is an ordered, immutable sequence of records. Operations never
// mutate the receiver; Replace returns a new Collection that shares every
// unchanged element with the old one.
type Collection[T any] struct {
	items []*T
	id    func(*T) string
}

// New copies records into a Collection keyed by id.
func New[T any](records []T, id func(*T) string) Collection[T] {
	items := make([]*T, len(records))
	for i := range records {
		rec := records[i]
		items[i] = &rec
	}
	return Collection[T]{items: items, id: id}
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

// Items returns the records in order. The slice is a copy; the records are shared.
func (c Collection[T]) Items() []*T {
	out := make([]*T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with id, or nil.
func (c Collection[T]) Get(id string) *T {
	if i := c.index(id); i >= 0 {
		return c.items[i]
	}
	return nil
}

func (c Collection[T]) index(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

// Filter returns the records satisfying pred, in collection order.
func (c Collection[T]) Filter(pred func(*T) bool) []*T {
	out := make([]*T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count is the number of records satisfying pred.
func (c Collection[T]) Count(pred func(*T) bool) int {
	n := 0
	for _, item := range c.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Replace applies update to a copy of the record with id. When the id is
// unknown or update reports no change, the receiver is returned as is and
// the second result is false.
func (c Collection[T]) Replace(id string, update func(T) (T, bool)) (Collection[T], bool) {
	i := c.index(id)
	if i < 0 {
		return c, false
	}
	next, changed := update(*c.items[i])
	if !changed {
		return c, false
	}
	items := make([]*T, len(c.items))
	copy(items, c.items)
	items[i] = &next
	return Collection[T]{items: items, id: c.id}, true
}
