// Package catalog keeps one ordered index per publication category and
// routes every call to the index of the record's category.
package catalog

import (
	"fmt"
	"iter"

	"shelf/internal/apperr"
	"shelf/internal/index"
	"shelf/internal/publication"
)

// Store owns every catalog record. The three category indexes are disjoint.
type Store struct {
	fiction    *index.Ordered[*publication.Record]
	children   *index.Ordered[*publication.Record]
	periodical *index.Ordered[*publication.Record]
}

func NewStore() *Store {
	return &Store{
		fiction:    index.NewOrdered(publication.CompareFiction),
		children:   index.NewOrdered(publication.CompareChildren),
		periodical: index.NewOrdered(publication.ComparePeriodical),
	}
}

func (s *Store) tree(c publication.Category) *index.Ordered[*publication.Record] {
	switch c {
	case publication.Fiction:
		return s.fiction
	case publication.Children:
		return s.children
	case publication.Periodical:
		return s.periodical
	}
	return nil
}

// Insert stores r in the index of r.Kind. A record whose key is already
// present is rejected with apperr.ErrDuplicate and not kept.
func (s *Store) Insert(r *publication.Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil publication", apperr.ErrInvalidInput)
	}
	t := s.tree(r.Kind)
	if t == nil {
		return fmt.Errorf("%w: unknown publication type '%s'", apperr.ErrInvalidInput, r.Kind)
	}
	if !t.Insert(r) {
		return fmt.Errorf("%w: %s is already in the catalog", apperr.ErrDuplicate, r)
	}
	return nil
}

// Find returns the stored record of category c whose key equals key.
func (s *Store) Find(c publication.Category, key *publication.Record) (*publication.Record, bool) {
	t := s.tree(c)
	if t == nil || key == nil {
		return nil, false
	}
	return t.Find(key)
}

// Each yields the records of category c in ascending order. An unknown
// category yields nothing.
func (s *Store) Each(c publication.Category) iter.Seq[*publication.Record] {
	t := s.tree(c)
	if t == nil {
		return func(func(*publication.Record) bool) {}
	}
	return t.All()
}

// Categories returns the categories in display order.
func (s *Store) Categories() []publication.Category {
	return publication.Categories
}

// Len returns the number of records in category c.
func (s *Store) Len(c publication.Category) int {
	if t := s.tree(c); t != nil {
		return t.Len()
	}
	return 0
}

// Depth returns the height of the index of category c.
func (s *Store) Depth(c publication.Category) int {
	if t := s.tree(c); t != nil {
		return t.Depth()
	}
	return 0
}

// Total returns the number of records across all categories.
func (s *Store) Total() int {
	return s.fiction.Len() + s.children.Len() + s.periodical.Len()
}

// Clear drops every record in every category.
func (s *Store) Clear() {
	s.fiction.Clear()
	s.children.Clear()
	s.periodical.Clear()
}
