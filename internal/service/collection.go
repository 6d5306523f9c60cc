package service

import (
	"context"
	"strings"
	"sync"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
)

// Collection is the state shared by every list screen: the fetched items, the
// search text, the loading flag and the last error. Network calls run outside
// the lock; their results are applied under it, so two mutations of the same
// collection never interleave.
type Collection[T any] struct {
	mu           sync.Mutex
	items        []T
	searchText   string
	isLoading    bool
	errorMessage *string
	notice       *dto.Notice

	fetch func(ctx context.Context) ([]T, error)
	match func(item T, query string) bool
}

func NewCollection[T any](fetch func(ctx context.Context) ([]T, error), match func(item T, query string) bool) *Collection[T] {
	return &Collection[T]{fetch: fetch, match: match}
}

// Fetch replaces the items on success and clears the error. On failure the
// items are left untouched and the error message is recorded. The loading
// flag is cleared on both paths.
func (c *Collection[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.isLoading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isLoading = false
	if err != nil {
		c.setErrorLocked(err)
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.errorMessage = nil
	return nil
}

func (c *Collection[T]) SetSearchText(q string) {
	c.mu.Lock()
	c.searchText = q
	c.mu.Unlock()
}

func (c *Collection[T]) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchText
}

// Items returns a copy of every fetched item.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Filtered applies the current search text. It is recomputed on every call.
func (c *Collection[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterLocked(c.searchText)
}

// FilterBy applies query without touching the stored search text.
func (c *Collection[T]) FilterBy(query string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filterLocked(query)
}

func (c *Collection[T]) filterLocked(query string) []T {
	if query == "" {
		return append([]T(nil), c.items...)
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.match(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the first item satisfying pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Remove drops the first item satisfying pred and reports whether one was found.
func (c *Collection[T]) Remove(pred func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if pred(item) {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the first item satisfying pred for next.
func (c *Collection[T]) Replace(pred func(T) bool, next T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if pred(item) {
			c.items[i] = next
			return true
		}
	}
	return false
}

func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
}

// Begin marks an action in flight.
func (c *Collection[T]) Begin() {
	c.mu.Lock()
	c.isLoading = true
	c.mu.Unlock()
}

// Succeed ends an action with a notice and clears the error.
func (c *Collection[T]) Succeed(n *dto.Notice) {
	c.mu.Lock()
	c.isLoading = false
	c.errorMessage = nil
	c.notice = n
	c.mu.Unlock()
}

// Fail ends an action with err as the visible error.
func (c *Collection[T]) Fail(err error) {
	c.mu.Lock()
	c.isLoading = false
	c.setErrorLocked(err)
	c.mu.Unlock()
}

func (c *Collection[T]) setErrorLocked(err error) {
	msg := err.Error()
	c.errorMessage = &msg
}

func (c *Collection[T]) ErrorMessage() *string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMessage
}

func (c *Collection[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isLoading
}

func (c *Collection[T]) Notice() *dto.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// Snapshot renders the collection filtered by its search text.
func (c *Collection[T]) Snapshot() dto.Screen[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.filterLocked(c.searchText)
	return dto.Screen[T]{
		Items:        items,
		Total:        len(c.items),
		SearchText:   c.searchText,
		IsLoading:    c.isLoading,
		ErrorMessage: c.errorMessage,
		Notice:       c.notice,
	}
}

// containsFold reports whether any field contains query, ignoring case.
func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
