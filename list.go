// Package intlist provides ordered integer lists.
//
// Lists are not safe for concurrent use. Callers that share a list
// between goroutines must serialize access themselves.
package intlist

import "fmt"

// List is an integer list kept in ascending order.
type List interface {
	fmt.Stringer

	// Insert adds v at its sorted position. It always returns true.
	Insert(v int) bool

	// InsertAll inserts every value in order.
	InsertAll(values []int) bool

	// Get returns the element at index i, or an *IndexError.
	Get(i int) (int, error)

	// RemoveFirst removes the first element equal to v.
	RemoveFirst(v int) bool

	// RemoveAll removes one occurrence per listed value.
	RemoveAll(values []int) bool

	Len() int

	// Values returns a copy of the elements in order.
	Values() []int
}

var (
	_ List = (*SortedList)(nil)
	_ List = (*CountingList)(nil)
)
