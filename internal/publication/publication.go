// Package publication defines the catalog record and its three variants.
//
// A Record is a tagged sum: Kind selects the variant, and with it the
// fields that are meaningful, the initial copy count and the sort order.
package publication

import (
	"cmp"
	"fmt"
)

// Category is the one-letter code of a publication variant.
type Category byte

const (
	Fiction    Category = 'F'
	Children   Category = 'C'
	Periodical Category = 'P'
)

// Categories lists every variant in display order.
var Categories = []Category{Fiction, Children, Periodical}

// Initial copy counts per variant.
const (
	FictionCopies    = 5
	ChildrenCopies   = 5
	PeriodicalCopies = 1
)

// Valid reports whether c is one of the known variants.
func (c Category) Valid() bool {
	switch c {
	case Fiction, Children, Periodical:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(rune(c))
}

// ParseCategory converts a one-letter code into a Category.
func ParseCategory(code string) (Category, bool) {
	if len(code) != 1 {
		return 0, false
	}
	c := Category(code[0])
	return c, c.Valid()
}

// Record is one catalog entry. Periodicals have no Author; Month is only
// meaningful for periodicals.
type Record struct {
	Kind   Category
	Author string
	Title  string
	Month  int
	Year   int
	copies int
}

// NewFiction returns a fiction record holding FictionCopies copies.
func NewFiction(author, title string, year int) *Record {
	return &Record{Kind: Fiction, Author: author, Title: title, Year: year, copies: FictionCopies}
}

// NewChildren returns a children's record holding ChildrenCopies copies.
func NewChildren(author, title string, year int) *Record {
	return &Record{Kind: Children, Author: author, Title: title, Year: year, copies: ChildrenCopies}
}

// NewPeriodical returns a periodical record holding PeriodicalCopies copies.
func NewPeriodical(title string, month, year int) *Record {
	return &Record{Kind: Periodical, Title: title, Month: month, Year: year, copies: PeriodicalCopies}
}

// Copies returns the number of copies currently on the shelf.
func (r *Record) Copies() int {
	return r.copies
}

// TakeCopy removes one copy from the shelf. It reports false and leaves the
// count at zero when nothing is left.
func (r *Record) TakeCopy() bool {
	if r.copies <= 0 {
		return false
	}
	r.copies--
	return true
}

// ReturnCopy puts one copy back on the shelf.
func (r *Record) ReturnCopy() {
	r.copies++
}

func (r *Record) String() string {
	switch r.Kind {
	case Periodical:
		return fmt.Sprintf("%s %s, %d %d", r.Kind, r.Title, r.Month, r.Year)
	default:
		return fmt.Sprintf("%s %s, %s, %d", r.Kind, r.Author, r.Title, r.Year)
	}
}

// CompareFiction orders by author, then title.
func CompareFiction(a, b *Record) int {
	if c := cmp.Compare(a.Author, b.Author); c != 0 {
		return c
	}
	return cmp.Compare(a.Title, b.Title)
}

// CompareChildren orders by title, then author.
func CompareChildren(a, b *Record) int {
	if c := cmp.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return cmp.Compare(a.Author, b.Author)
}

// ComparePeriodical orders by year, then month, then title.
func ComparePeriodical(a, b *Record) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Title, b.Title)
}

// Comparator returns the ordering of category c, or nil for an unknown one.
func Comparator(c Category) func(a, b *Record) int {
	switch c {
	case Fiction:
		return CompareFiction
	case Children:
		return CompareChildren
	case Periodical:
		return ComparePeriodical
	}
	return nil
}
