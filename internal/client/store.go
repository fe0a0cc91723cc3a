package client

import (
	"fmt"
	"iter"

	"shelf/internal/apperr"
	"shelf/internal/index"
)

// Store owns every registered client, keyed by id.
type Store struct {
	clients *index.Hash[int, *Client]
}

// NewStore creates an empty store with the given bucket count; zero selects
// index.DefaultBuckets.
func NewStore(buckets int) *Store {
	return &Store{clients: index.NewHash[int, *Client](buckets)}
}

// Insert adds c. It fails with apperr.ErrDuplicate when the id is taken.
func (s *Store) Insert(c *Client) error {
	if c == nil {
		return fmt.Errorf("%w: nil client", apperr.ErrInvalidInput)
	}
	if !s.clients.Insert(c.ID, c) {
		return fmt.Errorf("%w: client with ID %d already exists", apperr.ErrDuplicate, c.ID)
	}
	return nil
}

// Find returns the client with the given id.
func (s *Store) Find(id int) (*Client, bool) {
	return s.clients.Find(id)
}

// Remove drops the client with the given id and reports whether it existed.
func (s *Store) Remove(id int) bool {
	return s.clients.Remove(id)
}

func (s *Store) Clear() {
	s.clients.Clear()
}

func (s *Store) Len() int {
	return s.clients.Len()
}

func (s *Store) Stats() index.Stats {
	return s.clients.Stats()
}

// All yields clients in bucket order, which is not id order.
func (s *Store) All() iter.Seq[*Client] {
	return func(yield func(*Client) bool) {
		for _, c := range s.clients.All() {
			if !yield(c) {
				return
			}
		}
	}
}
