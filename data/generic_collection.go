package data

import (
	"sync"

	"github.com/ch1ch0gz/NFTMortgage/interfaces"
)

// Collection is a typed keyed store. The host execution model serializes all
// mutating calls, sync.Map only guards concurrent readers (API projections).
type Collection[K comparable, T any] struct {
	items sync.Map
}

func NewCollection[K comparable, T any]() *Collection[K, T] {
	return &Collection[K, T]{}
}

func (c *Collection[K, T]) Load(key K) (item T, ok bool) {
	if val, ok := c.items.Load(key); ok {
		return val.(T), true
	}
	var zero T
	return zero, false
}

func (c *Collection[K, T]) Store(key K, item T) {
	c.items.Store(key, item)
}

func (c *Collection[K, T]) Delete(key K) {
	c.items.Delete(key)
}

func (c *Collection[K, T]) Range(f func(key K, item T) bool) {
	c.items.Range(func(key, value any) bool {
		return f(key.(K), value.(T))
	})
}

func (c *Collection[K, T]) Len() int {
	count := 0
	c.items.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

var _ interfaces.ICollection[uint64, any] = new(Collection[uint64, any])
