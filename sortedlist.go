package intlist

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xgzlucario/intlist/option"
)

// SortedList keeps its elements in a growable buffer in ascending order.
type SortedList struct {
	// data[:n] holds the elements, len(data) is the capacity.
	data []int
	n    int

	logger *slog.Logger
}

// NewSortedList
func NewSortedList() *SortedList {
	return NewSortedListWithOption(option.DefaultOption)
}

// NewSortedListWithOption
func NewSortedListWithOption(opt *option.Option) *SortedList {
	if opt == nil {
		opt = option.DefaultOption
	}
	return &SortedList{
		data:   make([]int, opt.Capacity()),
		logger: opt.GetLogger(),
	}
}

// Insert places v after every element less than or equal to it.
func (l *SortedList) Insert(v int) bool {
	if l.n == len(l.data) {
		l.grow()
	}

	i := 0
	for i < l.n && l.data[i] <= v {
		i++
	}
	copy(l.data[i+1:l.n+1], l.data[i:l.n])
	l.data[i] = v
	l.n++

	return true
}

// InsertAll returns true if at least one value was inserted.
func (l *SortedList) InsertAll(values []int) bool {
	modified := false
	for _, v := range values {
		if l.Insert(v) {
			modified = true
		}
	}
	return modified
}

// Get
func (l *SortedList) Get(i int) (int, error) {
	if i < 0 || i >= l.n {
		return 0, &IndexError{Index: i, Size: l.n}
	}
	return l.data[i], nil
}

// RemoveFirst returns false if v is not present.
func (l *SortedList) RemoveFirst(v int) bool {
	for i := 0; i < l.n; i++ {
		if l.data[i] == v {
			copy(l.data[i:l.n-1], l.data[i+1:l.n])
			l.n--
			l.data[l.n] = 0
			return true
		}
	}
	return false
}

// RemoveAll removes the first occurrence of each listed value, so a value
// listed twice removes two occurrences.
func (l *SortedList) RemoveAll(values []int) bool {
	modified := false
	for _, v := range values {
		if l.RemoveFirst(v) {
			modified = true
		}
	}
	return modified
}

func (l *SortedList) Len() int {
	return l.n
}

// Cap returns the capacity of the backing buffer.
func (l *SortedList) Cap() int {
	return len(l.data)
}

// Values
func (l *SortedList) Values() []int {
	values := make([]int, l.n)
	copy(values, l.data[:l.n])
	return values
}

// String
func (l *SortedList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(l.data[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// grow doubles the capacity.
func (l *SortedList) grow() {
	data := make([]int, len(l.data)*2)
	copy(data, l.data[:l.n])

	l.logger.Debug(fmt.Sprintf("[Grow] capacity %d -> %d", len(l.data), len(data)))

	l.data = data
}
