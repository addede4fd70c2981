package dynp

import "sync"

// SyncCollection is a thread-safe property collection. It guards a
// Collection with a read-write mutex: reads (Get, Contains, Len, Keys,
// SubscriberCount) take the shared lock, while mutations take the exclusive
// lock. An assignment holds the exclusive lock for the whole store-and-notify
// sequence, so to other goroutines a value and its notifications appear as
// one atomic step.
//
// Because callbacks run while the lock is held, they must not call back
// into the same collection (the goroutine would deadlock) and should return
// quickly. Use Watch to hand updates to another goroutine, or a plain
// Collection when reentrancy is needed.
type SyncCollection struct {
	mu    sync.RWMutex
	inner *Collection
}

// NewSync creates an empty SyncCollection.
func NewSync(opts ...Option) *SyncCollection {
	return &SyncCollection{inner: New(opts...)}
}

func (c *SyncCollection) assign(key TypeKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.assign(key, value)
}

func (c *SyncCollection) lookup(key TypeKey) (propertyValue, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.lookup(key)
}

func (c *SyncCollection) contains(key TypeKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.contains(key)
}

func (c *SyncCollection) remove(key TypeKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.remove(key)
}

func (c *SyncCollection) subscribe(key TypeKey, fn func(any)) Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.subscribe(key, fn)
}

func (c *SyncCollection) subscriberCount(key TypeKey) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.subscriberCount(key)
}

// Unsubscribe removes the callback identified by sub. Like the Collection
// variant it ignores unknown, foreign and zero handles. It blocks until any
// in-flight assignment has finished notifying, so once it returns the
// callback is guaranteed not to be invoked again.
func (c *SyncCollection) Unsubscribe(sub Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Unsubscribe(sub)
}

// Len returns the number of stored properties.
func (c *SyncCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Len()
}

// Keys returns the TypeKeys of all stored properties, sorted by their
// canonical names.
func (c *SyncCollection) Keys() []TypeKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Keys()
}
