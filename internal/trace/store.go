package trace

import (
	"fmt"
)

// Store is the in-memory node value store for one computation run.
//
// A Store is append-only: ids are inserted at most once and never
// overwritten. It is built from scratch on every recompute and is not
// safe for concurrent use.
type Store struct {
	// values stores all traced values by node id.
	values map[string]*Value

	// order preserves insertion order for deterministic traversal.
	order []string
}

// NewStore creates a new empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]*Value),
		order:  make([]string, 0),
	}
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return len(s.values)
}

// Get retrieves a value by node id, or nil if absent.
func (s *Store) Get(nodeID string) *Value {
	return s.values[nodeID]
}

// Exists checks if a node id is present in the store.
func (s *Store) Exists(nodeID string) bool {
	_, ok := s.values[nodeID]
	return ok
}

// Add inserts a value into the store. Inserting an empty or duplicate
// node id is an error; a duplicate always indicates a rule module
// producing the same line twice.
func (s *Store) Add(v *Value) error {
	if v.NodeID == "" {
		return fmt.Errorf("node id cannot be empty")
	}
	if s.Exists(v.NodeID) {
		return fmt.Errorf("node %q already exists", v.NodeID)
	}
	s.values[v.NodeID] = v
	s.order = append(s.order, v.NodeID)
	return nil
}

// All returns all values in insertion order.
func (s *Store) All() []*Value {
	values := make([]*Value, 0, len(s.order))
	for _, id := range s.order {
		if v := s.values[id]; v != nil {
			values = append(values, v)
		}
	}
	return values
}

// IDs returns all node ids in insertion order.
func (s *Store) IDs() []string {
	return append([]string{}, s.order...)
}

// Amount returns the stored amount for a node id, or 0 if absent.
// Rule modules use it to read upstream lines they know exist.
func (s *Store) Amount(nodeID string) int64 {
	if v := s.values[nodeID]; v != nil {
		return v.Amount
	}
	return 0
}
