package aggregate

import (
	"encoding/json"
)

// Counts is a string to count mapping which keeps keys in insertion order.
// Chart labels are taken from the key order, so a plain map is not enough.
type Counts struct {
	keys   []string
	values []int
	index  map[string]int
}

type countEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// NewCounts returns an empty Counts
func NewCounts() *Counts {
	return &Counts{
		keys:   []string{},
		values: []int{},
		index:  map[string]int{},
	}
}

// Seed adds key with a zero count. An existing key keeps its count and position.
func (c *Counts) Seed(key string) {
	if c.index == nil {
		c.index = map[string]int{}
	}

	if _, ok := c.index[key]; ok {
		return
	}

	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, 0)
}

// Inc increments the count of a seeded key. It returns false for unknown keys.
func (c *Counts) Inc(key string) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}

	c.values[i]++
	return true
}

// Get returns the count of key
func (c *Counts) Get(key string) (int, bool) {
	i, ok := c.index[key]
	if !ok {
		return 0, false
	}
	return c.values[i], true
}

// Has reports whether key has been seeded
func (c *Counts) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Len returns the number of keys
func (c *Counts) Len() int {
	return len(c.keys)
}

// Keys returns a copy of the keys in insertion order
func (c *Counts) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Values returns a copy of the counts in key order
func (c *Counts) Values() []int {
	values := make([]int, len(c.values))
	copy(values, c.values)
	return values
}

// Sum returns the total of all counts
func (c *Counts) Sum() int {
	total := 0
	for _, v := range c.values {
		total += v
	}
	return total
}

// Each calls fn for every key in insertion order
func (c *Counts) Each(fn func(key string, count int)) {
	for i, k := range c.keys {
		fn(k, c.values[i])
	}
}

// Clone returns an independent copy
func (c *Counts) Clone() *Counts {
	clone := NewCounts()
	for i, k := range c.keys {
		clone.Seed(k)
		clone.values[i] = c.values[i]
	}
	return clone
}

// MarshalJSON encodes counts as an ordered list of key/count pairs
func (c *Counts) MarshalJSON() ([]byte, error) {
	entries := make([]countEntry, 0, len(c.keys))
	c.Each(func(key string, count int) {
		entries = append(entries, countEntry{Key: key, Count: count})
	})
	return json.Marshal(entries)
}

// UnmarshalJSON decodes the list produced by MarshalJSON
func (c *Counts) UnmarshalJSON(data []byte) error {
	var entries []countEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	*c = *NewCounts()
	for _, e := range entries {
		c.Seed(e.Key)
		c.values[c.index[e.Key]] = e.Count
	}
	return nil
}
