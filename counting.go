package intlist

import "github.com/xgzlucario/intlist/option"

// CountingList is a SortedList that also counts every value ever passed
// to Insert or InsertAll. Removals do not lower the count.
type CountingList struct {
	list       *SortedList
	totalAdded int
}

// NewCountingList
func NewCountingList() *CountingList {
	return NewCountingListWithOption(option.DefaultOption)
}

// NewCountingListWithOption
func NewCountingListWithOption(opt *option.Option) *CountingList {
	return &CountingList{list: NewSortedListWithOption(opt)}
}

// TotalAdded
func (c *CountingList) TotalAdded() int {
	return c.totalAdded
}

func (c *CountingList) Insert(v int) bool {
	c.totalAdded++
	return c.list.Insert(v)
}

// InsertAll counts len(values) even when values is empty.
func (c *CountingList) InsertAll(values []int) bool {
	c.totalAdded += len(values)
	return c.list.InsertAll(values)
}

func (c *CountingList) Get(i int) (int, error) {
	return c.list.Get(i)
}

func (c *CountingList) RemoveFirst(v int) bool {
	return c.list.RemoveFirst(v)
}

func (c *CountingList) RemoveAll(values []int) bool {
	return c.list.RemoveAll(values)
}

func (c *CountingList) Len() int {
	return c.list.Len()
}

func (c *CountingList) Values() []int {
	return c.list.Values()
}

func (c *CountingList) String() string {
	return c.list.String()
}
